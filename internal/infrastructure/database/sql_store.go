package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/PavaniTiago/questionario/internal/infrastructure/database/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // registra o driver "pgx" no database/sql
	_ "modernc.org/sqlite"             // registra o driver "sqlite" no database/sql
)

var _ repositories.SurveyRepository = (*SQLStore)(nil)

// SQLStore acessa a tabela através de database/sql, em Postgres (pgx) ou SQLite
type SQLStore struct {
	db      *sql.DB
	dialect migrations.Dialect
}

// NewPostgresStore abre um pool database/sql com o driver pgx
func NewPostgresStore(ctx context.Context, dbURL string) (*SQLStore, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &SQLStore{db: db, dialect: migrations.Postgres}, nil
}

// NewSQLiteStore abre o arquivo SQLite informado em path
func NewSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "questionario.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	return &SQLStore{db: db, dialect: migrations.SQLite}, nil
}

func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	return migrations.Apply(ctx, s.db, s.dialect)
}

// SaveResponse insere a linha dentro de uma transação explícita
func (s *SQLStore) SaveResponse(ctx context.Context, name, email string, answers entities.Answers) (*entities.SurveyResponse, error) {
	row := entities.NewSurveyResponse(name, email, answers)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, s.rebind(
		`INSERT INTO respostas_questionario (nome, email, resposta1, resposta2, resposta3)
		VALUES (?, ?, ?, ?, ?) RETURNING id`),
		row.Name, row.Email, row.Resposta1, row.Resposta2, row.Resposta3,
	).Scan(&row.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar respostas: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	committed = true
	return &row, nil
}

func (s *SQLStore) LoadResponses(ctx context.Context) ([]entities.SurveyResponse, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM respostas_questionario ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar respostas: %w", err)
	}
	defer rows.Close()

	responses := []entities.SurveyResponse{}
	for rows.Next() {
		var row entities.SurveyResponse
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Resposta1, &row.Resposta2, &row.Resposta3); err != nil {
			return nil, fmt.Errorf("erro ao ler resposta: %w", err)
		}
		responses = append(responses, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao carregar respostas: %w", err)
	}
	return responses, nil
}

func (s *SQLStore) FindResponse(ctx context.Context, name, email string) (*entities.SurveyResponse, error) {
	var row entities.SurveyResponse
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+selectColumns+` FROM respostas_questionario
		WHERE nome = ? AND email = ? ORDER BY id LIMIT 1`),
		name, email,
	).Scan(&row.ID, &row.Name, &row.Email, &row.Resposta1, &row.Resposta2, &row.Resposta3)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrResponseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}
	return &row, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind troca os placeholders "?" por "$n" no Postgres
func (s *SQLStore) rebind(query string) string {
	if s.dialect != migrations.Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
