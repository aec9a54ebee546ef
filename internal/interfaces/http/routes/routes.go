package routes

import (
	"errors"
	"strings"
	"time"

	"github.com/PavaniTiago/questionario/internal/application/usecases"
	"github.com/PavaniTiago/questionario/internal/config"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/PavaniTiago/questionario/internal/infrastructure/cache"
	"github.com/PavaniTiago/questionario/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/questionario/internal/interfaces/http/middleware"
	"github.com/PavaniTiago/questionario/internal/interfaces/http/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Intervalo de limpeza das sessões expiradas
const sessionCleanupInterval = 10 * time.Minute

// msgGenericError é o que o usuário vê quando o banco ou a sessão falham
const msgGenericError = "Não foi possível processar sua solicitação. Tente novamente."

// NewApp monta o servidor fiber com views, middlewares e rotas
func NewApp(cfg config.Config, repo repositories.SurveyRepository, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(),
		ErrorHandler: errorHandler(log),
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, log)
	SetupRoutes(app, cfg, repo, log)

	return app
}

// NewSessionStore cria o armazenamento de sessões em memória com ids UUID
func NewSessionStore(ttl time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		Storage:        cache.New(ttl, sessionCleanupInterval),
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

func SetupRoutes(app *fiber.App, cfg config.Config, repo repositories.SurveyRepository, log *zap.Logger) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(etag.New())

	// Use Cases
	surveyUseCase := usecases.NewSurveyUseCase(repo, cfg.RestartClearsIdentity, log)

	// Handlers
	h := handlers.NewHandlers(surveyUseCase, NewSessionStore(cfg.SessionTTL), log)

	app.Get("/health", h.Health)

	groups := middleware.SetupRouteGroups(app, cfg.CORSOrigins)

	// Páginas do questionário
	groups.Public.Get("/", h.Survey.Show)
	groups.Public.Post("/identificacao", h.Survey.Identify)
	groups.Public.Post("/questionario", h.Survey.Submit)
	groups.Public.Post("/reiniciar", h.Survey.Restart)

	// Exportação
	RegisterExportRoutes(groups.API, h.Export)
}

// errorHandler responde JSON na API e a página de erro no formulário
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := msgGenericError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(code).JSON(fiber.Map{"error": message})
		}

		if renderErr := c.Status(code).Render("erro", fiber.Map{
			"Title":   "Erro",
			"Message": message,
		}, views.Layout); renderErr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
