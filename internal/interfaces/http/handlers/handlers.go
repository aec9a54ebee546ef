package handlers

import (
	"github.com/PavaniTiago/questionario/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// Version é informada no /health
const Version = "1.0.0"

type Handlers struct {
	Survey *SurveyHandler
	Export *ExportHandler
}

func NewHandlers(useCase *usecases.SurveyUseCase, sessions *session.Store, log *zap.Logger) *Handlers {
	return &Handlers{
		Survey: NewSurveyHandler(useCase, sessions, log),
		Export: NewExportHandler(useCase),
	}
}

// Health responde se o processo está de pé
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": Version,
	})
}
