package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newGormLogger envia os logs do GORM para o zap, apenas avisos e consultas lentas
func newGormLogger(log *zap.Logger) logger.Interface {
	return logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
		LogLevel:                  logger.Warn,
	})
}

// openGorm abre a sessão GORM sobre Postgres e ajusta o pool de conexões
func openGorm(dbURL string, log *zap.Logger) (*gorm.DB, error) {
	config := &gorm.Config{
		// Cada INSERT é uma única instrução, dispensa a transação padrão
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 newGormLogger(log),
	}

	db, err := gorm.Open(postgres.Open(dbURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
