package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []entities.SurveyResponse{
	{ID: 1, Name: "Ana", Email: "ana@x.com", Resposta1: "VSCode", Resposta2: "Scope creep", Resposta3: "Good"},
	{ID: 2, Name: "Bia, a segunda", Email: "bia@x.com", Resposta1: "Vim", Resposta2: "\"aspas\"", Resposta3: ""},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample))

	want := "id,nome,email,resposta1,resposta2,resposta3\n" +
		"1,Ana,ana@x.com,VSCode,Scope creep,Good\n" +
		"2,\"Bia, a segunda\",bia@x.com,Vim,\"\"\"aspas\"\"\",\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample))

	var got Payload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, sample, got.Data)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.JSONEq(t, `{"data": [], "total": 0}`, buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", sample))
}

func TestFilenameUsesBrasiliaTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "respostas_questionario_20261018_233000.csv", Filename(now, FormatCSV))
}
