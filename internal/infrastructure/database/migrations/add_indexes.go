package migrations

import (
	"gorm.io/gorm"
)

// Índice da busca por identidade (nome + email)
var indexStatements = []string{
	"CREATE INDEX IF NOT EXISTS idx_respostas_questionario_nome_email ON respostas_questionario (nome, email)",
}

// AddIndexes adiciona os índices usados pela busca de respostas anteriores
func AddIndexes(db *gorm.DB) error {
	for _, idx := range indexStatements {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
