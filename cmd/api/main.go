package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PavaniTiago/questionario/internal/application/export"
	"github.com/PavaniTiago/questionario/internal/config"
	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/infrastructure/database"
	"github.com/PavaniTiago/questionario/internal/interfaces/http/routes"
	"github.com/PavaniTiago/questionario/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose      bool
	exportFormat string
	exportOutput string

	cfg    config.Config
	logger *zap.Logger
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "questionario",
	Short: "Questionário web de três perguntas",
	Long: `Servidor do questionário: identificação por nome e email, três perguntas
fixas e gravação na tabela respostas_questionario.

Sem subcomando, inicia o servidor HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !config.LoadDotEnv() {
			fmt.Fprintln(os.Stderr, "⚠️ No .env file found, using system environment variables")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP (padrão)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria a tabela respostas_questionario e os índices, se não existirem",
	RunE:  runMigrate,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta todas as respostas em CSV ou JSON",
	RunE:  runExport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatCSV, "Formato da exportação (csv|json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Arquivo de saída (padrão: stdout)")

	rootCmd.AddCommand(serveCmd, migrateCmd, exportCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := database.SetupDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("error setting up database: %w", err)
	}
	defer repo.Close()

	app := routes.NewApp(cfg, repo, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", cfg.Addr()))
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	repo, err := database.SetupDatabase(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	return repo.Close()
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != export.FormatCSV && exportFormat != export.FormatJSON {
		return fmt.Errorf("formato inválido %q: use csv ou json", exportFormat)
	}

	repo, err := database.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	rows, err := repo.LoadResponses(cmd.Context())
	if err != nil {
		return fmt.Errorf("erro ao carregar respostas: %w", err)
	}

	if exportOutput == "" {
		if err := export.Write(cmd.OutOrStdout(), exportFormat, rows); err != nil {
			return err
		}
	} else if err := writeExportFile(exportOutput, exportFormat, rows); err != nil {
		return err
	}
	logger.Info("export finished", zap.Int("rows", len(rows)), zap.String("format", exportFormat))
	return nil
}

// writeExportFile grava a exportação em path; o erro do Close também conta
func writeExportFile(path, format string, rows []entities.SurveyResponse) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Write(f, format, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("erro ao fechar %s: %w", path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
