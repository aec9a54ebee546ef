package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/PavaniTiago/questionario/internal/infrastructure/database/migrations"
	"gorm.io/gorm"
)

var _ repositories.SurveyRepository = (*GormStore)(nil)

// GormStore acessa respostas_questionario através de uma sessão GORM
type GormStore struct {
	db *gorm.DB
}

// NewGormStore cria o repositório sobre uma conexão GORM já aberta
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) EnsureSchema(ctx context.Context) error {
	return migrations.Migrate(ctx, s.db)
}

func (s *GormStore) SaveResponse(ctx context.Context, name, email string, answers entities.Answers) (*entities.SurveyResponse, error) {
	row := entities.NewSurveyResponse(name, email, answers)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("erro ao salvar respostas: %w", err)
	}
	return &row, nil
}

func (s *GormStore) LoadResponses(ctx context.Context) ([]entities.SurveyResponse, error) {
	var rows []entities.SurveyResponse
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("erro ao carregar respostas: %w", err)
	}
	return rows, nil
}

func (s *GormStore) FindResponse(ctx context.Context, name, email string) (*entities.SurveyResponse, error) {
	var row entities.SurveyResponse
	err := s.db.WithContext(ctx).
		Where("nome = ? AND email = ?", name, email).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrResponseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}
	return &row, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
