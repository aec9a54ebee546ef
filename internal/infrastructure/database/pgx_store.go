package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/PavaniTiago/questionario/internal/infrastructure/database/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repositories.SurveyRepository = (*PgxStore)(nil)

// Colunas em ordem de declaração de entities.SurveyResponse; COALESCE cobre
// linhas antigas com respostas nulas
const selectColumns = `id, COALESCE(nome, ''), COALESCE(email, ''),
	COALESCE(resposta1, ''), COALESCE(resposta2, ''), COALESCE(resposta3, '')`

// PgxStore usa o driver pgx diretamente, sem database/sql
type PgxStore struct {
	pool *pgxpool.Pool
}

// NewPgxStore abre o pool e verifica a conexão
func NewPgxStore(ctx context.Context, dbURL string) (*PgxStore, error) {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PgxStore{pool: pool}, nil
}

func (s *PgxStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range migrations.Statements(migrations.Postgres) {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *PgxStore) SaveResponse(ctx context.Context, name, email string, answers entities.Answers) (*entities.SurveyResponse, error) {
	row := entities.NewSurveyResponse(name, email, answers)
	err := s.pool.QueryRow(ctx,
		`INSERT INTO respostas_questionario (nome, email, resposta1, resposta2, resposta3)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		row.Name, row.Email, row.Resposta1, row.Resposta2, row.Resposta3,
	).Scan(&row.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar respostas: %w", err)
	}
	return &row, nil
}

func (s *PgxStore) LoadResponses(ctx context.Context) ([]entities.SurveyResponse, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+selectColumns+` FROM respostas_questionario ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar respostas: %w", err)
	}

	responses, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entities.SurveyResponse])
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar respostas: %w", err)
	}
	return responses, nil
}

func (s *PgxStore) FindResponse(ctx context.Context, name, email string) (*entities.SurveyResponse, error) {
	var row entities.SurveyResponse
	err := s.pool.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM respostas_questionario
		WHERE nome = $1 AND email = $2 ORDER BY id LIMIT 1`,
		name, email,
	).Scan(&row.ID, &row.Name, &row.Email, &row.Resposta1, &row.Resposta2, &row.Resposta3)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repositories.ErrResponseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}
	return &row, nil
}

func (s *PgxStore) Close() error {
	s.pool.Close()
	return nil
}
