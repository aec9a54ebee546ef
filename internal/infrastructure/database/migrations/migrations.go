package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// Dialect seleciona a variação de DDL usada na criação da tabela
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Execer é satisfeito por *sql.DB e *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateTable retorna o CREATE TABLE da tabela respostas_questionario no dialeto informado
func CreateTable(d Dialect) string {
	idColumn := "id SERIAL PRIMARY KEY"
	if d == SQLite {
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	return `CREATE TABLE IF NOT EXISTS respostas_questionario (
		` + idColumn + `,
		nome TEXT,
		email TEXT,
		resposta1 TEXT,
		resposta2 TEXT,
		resposta3 TEXT
	)`
}

// Statements lista, em ordem, todos os comandos idempotentes do esquema
func Statements(d Dialect) []string {
	return append([]string{CreateTable(d)}, indexStatements...)
}

// Apply executa o esquema completo através de database/sql
func Apply(ctx context.Context, db Execer, d Dialect) error {
	for _, stmt := range Statements(d) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Migrate cria a tabela e os índices usando a sessão GORM (Postgres)
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.Exec(CreateTable(Postgres)).Error; err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return AddIndexes(tx)
}
