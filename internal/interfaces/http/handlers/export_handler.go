package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/PavaniTiago/questionario/internal/application/export"
	"github.com/PavaniTiago/questionario/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ExportHandler expõe todas as respostas salvas
type ExportHandler struct {
	surveyUseCase *usecases.SurveyUseCase
	now           func() time.Time
}

// NewExportHandler cria uma nova instância de ExportHandler
func NewExportHandler(surveyUseCase *usecases.SurveyUseCase) *ExportHandler {
	return &ExportHandler{surveyUseCase: surveyUseCase, now: time.Now}
}

var validFormats = map[string]string{
	export.FormatJSON: fiber.MIMEApplicationJSON,
	export.FormatCSV:  "text/csv; charset=utf-8",
}

// GetResponses retorna as respostas em JSON ou, com ?format=csv, como arquivo CSV
func (h *ExportHandler) GetResponses(c *fiber.Ctx) error {
	format := c.Query("format", export.FormatJSON)
	if _, ok := validFormats[format]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         "Parâmetro 'format' inválido",
			"valid_formats": getKeys(validFormats),
		})
	}
	return h.write(c, format)
}

// GetResponsesCSV é o atalho /respostas.csv
func (h *ExportHandler) GetResponsesCSV(c *fiber.Ctx) error {
	return h.write(c, export.FormatCSV)
}

func (h *ExportHandler) write(c *fiber.Ctx, format string) error {
	rows, err := h.surveyUseCase.ListResponses(c.UserContext())
	if err != nil {
		return fmt.Errorf("erro ao carregar respostas: %w", err)
	}

	if format == export.FormatJSON {
		return c.JSON(export.NewPayload(rows))
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, rows); err != nil {
		return err
	}
	c.Attachment(export.Filename(h.now(), export.FormatCSV))
	c.Set(fiber.HeaderContentType, validFormats[export.FormatCSV])
	return c.Send(buf.Bytes())
}
