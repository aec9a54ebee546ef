package routes

import (
	"github.com/PavaniTiago/questionario/internal/interfaces/http/handlers"
	"github.com/gofiber/fiber/v2"
)

// RegisterExportRoutes registra a exportação de respostas no grupo da API
func RegisterExportRoutes(router fiber.Router, exportHandler *handlers.ExportHandler) {
	respostas := router.Group("/respostas")
	respostas.Get("/", exportHandler.GetResponses)

	router.Get("/respostas.csv", exportHandler.GetResponsesCSV)
}
