package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/utils"
)

// Formatos aceitos pela exportação
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// CSVHeader segue a ordem das colunas da tabela
var CSVHeader = []string{"id", "nome", "email", "resposta1", "resposta2", "resposta3"}

// Payload é o corpo JSON da exportação
type Payload struct {
	Data  []entities.SurveyResponse `json:"data"`
	Total int                       `json:"total"`
}

// NewPayload garante "data": [] mesmo sem linhas
func NewPayload(rows []entities.SurveyResponse) Payload {
	if rows == nil {
		rows = []entities.SurveyResponse{}
	}
	return Payload{Data: rows, Total: len(rows)}
}

// WriteCSV escreve o cabeçalho e uma linha por resposta
func WriteCSV(w io.Writer, rows []entities.SurveyResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{strconv.FormatInt(r.ID, 10), r.Name, r.Email, r.Resposta1, r.Resposta2, r.Resposta3}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON escreve o Payload indentado
func WriteJSON(w io.Writer, rows []entities.SurveyResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPayload(rows))
}

// Write escolhe o formato pelo nome
func Write(w io.Writer, format string, rows []entities.SurveyResponse) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, rows)
	case FormatJSON:
		return WriteJSON(w, rows)
	default:
		return fmt.Errorf("formato de exportação inválido: %q", format)
	}
}

// Filename monta o nome do arquivo com a data no horário de Brasília
func Filename(now time.Time, format string) string {
	return fmt.Sprintf("respostas_questionario_%s.%s", now.In(utils.GetBrasilLocation()).Format("20060102_150405"), format)
}
