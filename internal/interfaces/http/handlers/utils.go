package handlers

import (
	"sort"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// answersFromForm lê os campos resposta1..resposta3 do formulário
func answersFromForm(c *fiber.Ctx) entities.Answers {
	answers := make(entities.Answers, len(entities.Questions))
	for _, q := range entities.Questions {
		answers[q.Key] = c.FormValue(q.Field)
	}
	return answers
}

// getKeys retorna as chaves do mapa em ordem alfabética
func getKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
