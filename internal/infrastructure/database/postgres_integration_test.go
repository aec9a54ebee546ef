package database

import (
	"context"
	"os"
	"testing"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// postgresStores abre os três backends Postgres sobre TEST_DATABASE_URL
func postgresStores(t *testing.T) map[string]repositories.SurveyRepository {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL não definido")
	}
	ctx := context.Background()

	gormDB, err := openGorm(dbURL, zap.NewNop())
	require.NoError(t, err)
	pgxStore, err := NewPgxStore(ctx, dbURL)
	require.NoError(t, err)
	sqlStore, err := NewPostgresStore(ctx, dbURL)
	require.NoError(t, err)

	stores := map[string]repositories.SurveyRepository{
		"gorm":     NewGormStore(gormDB),
		"pgx":      pgxStore,
		"postgres": sqlStore,
	}
	for _, store := range stores {
		t.Cleanup(func() { store.Close() })
		require.NoError(t, store.EnsureSchema(ctx))
	}
	return stores
}

func TestPostgresStores(t *testing.T) {
	for name, store := range postgresStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			// Email único por execução, o banco é compartilhado entre os backends
			email := uuid.NewString() + "@x.com"

			require.NoError(t, store.EnsureSchema(ctx))

			_, err := store.FindResponse(ctx, "Ana", email)
			require.ErrorIs(t, err, repositories.ErrResponseNotFound)

			first, err := store.SaveResponse(ctx, "Ana", email, entities.Answers{
				entities.AnswerKey1: "VSCode", entities.AnswerKey2: "Scope creep", entities.AnswerKey3: "Good",
			})
			require.NoError(t, err)
			assert.Positive(t, first.ID)

			second, err := store.SaveResponse(ctx, "Ana", email, entities.Answers{entities.AnswerKey1: "Vim"})
			require.NoError(t, err)
			assert.Greater(t, second.ID, first.ID)

			found, err := store.FindResponse(ctx, "Ana", email)
			require.NoError(t, err)
			assert.Equal(t, *first, *found)

			rows, err := store.LoadResponses(ctx)
			require.NoError(t, err)
			var mine []entities.SurveyResponse
			for _, row := range rows {
				if row.Email == email {
					mine = append(mine, row)
				}
			}
			require.Len(t, mine, 2)
			assert.Equal(t, *first, mine[0])
			assert.Equal(t, "Vim", mine[1].Resposta1)
			assert.Empty(t, mine[1].Resposta2)
		})
	}
}
