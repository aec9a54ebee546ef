package database

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/questionario/internal/config"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"go.uber.org/zap"
)

// Open abre o backend escolhido em cfg.Driver, sem tocar no esquema
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (repositories.SurveyRepository, error) {
	if cfg.DatabaseURL == "" {
		return nil, config.ErrMissingDatabaseURL
	}

	var (
		repo repositories.SurveyRepository
		err  error
	)

	switch cfg.Driver {
	case config.DriverGorm:
		db, openErr := openGorm(cfg.DatabaseURL, log)
		if openErr != nil {
			return nil, openErr
		}
		repo = NewGormStore(db)
	case config.DriverPgx:
		repo, err = NewPgxStore(ctx, cfg.DatabaseURL)
	case config.DriverPostgres:
		repo, err = NewPostgresStore(ctx, cfg.DatabaseURL)
	case config.DriverSQLite:
		repo, err = NewSQLiteStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// SetupDatabase abre o backend e garante que a tabela exista
func SetupDatabase(ctx context.Context, cfg config.Config, log *zap.Logger) (repositories.SurveyRepository, error) {
	repo, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database ready", zap.String("driver", cfg.Driver))
	return repo, nil
}
