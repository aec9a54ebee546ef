package repositories

import (
	"context"
	"errors"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
)

// ErrResponseNotFound indica que nenhuma resposta foi salva para o nome/email informado
var ErrResponseNotFound = errors.New("resposta não encontrada")

// SurveyRepository define o acesso à tabela respostas_questionario.
// Cada backend (GORM, pgx, database/sql) implementa esta interface.
type SurveyRepository interface {
	// EnsureSchema cria a tabela e o índice se ainda não existirem
	EnsureSchema(ctx context.Context) error
	// SaveResponse insere uma nova linha; chaves ausentes viram ""
	SaveResponse(ctx context.Context, name, email string, answers entities.Answers) (*entities.SurveyResponse, error)
	// LoadResponses retorna todas as linhas em ordem de inserção
	LoadResponses(ctx context.Context) ([]entities.SurveyResponse, error)
	// FindResponse retorna a primeira linha com nome e email exatamente iguais
	FindResponse(ctx context.Context, name, email string) (*entities.SurveyResponse, error)
	Close() error
}
