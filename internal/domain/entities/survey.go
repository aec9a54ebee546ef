package entities

import "strings"

// Chaves das respostas, na ordem em que as perguntas aparecem
const (
	AnswerKey1 = "Resposta 1"
	AnswerKey2 = "Resposta 2"
	AnswerKey3 = "Resposta 3"
)

// Question representa uma pergunta fixa do questionário
type Question struct {
	Key   string `json:"key"`
	Field string `json:"field"`
	Text  string `json:"text"`
}

// Questions lista as três perguntas do questionário
var Questions = []Question{
	{Key: AnswerKey1, Field: "resposta1", Text: "1. Qual é a sua ferramenta favorita para trabalho?"},
	{Key: AnswerKey2, Field: "resposta2", Text: "2. Qual é o principal desafio que enfrenta no seu trabalho?"},
	{Key: AnswerKey3, Field: "resposta3", Text: "3. Como você avalia a eficiência das suas ferramentas atuais?"},
}

// Answers mapeia a chave da pergunta para o texto respondido
type Answers map[string]string

// Get retorna a resposta da chave ou "" quando ausente
func (a Answers) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// Complete indica se todas as perguntas têm resposta não vazia
func (a Answers) Complete() bool {
	for _, q := range Questions {
		if strings.TrimSpace(a.Get(q.Key)) == "" {
			return false
		}
	}
	return true
}

// SurveyResponse representa uma linha da tabela respostas_questionario
type SurveyResponse struct {
	ID        int64  `json:"id" gorm:"primaryKey;column:id"`
	Name      string `json:"nome" gorm:"column:nome;type:text"`
	Email     string `json:"email" gorm:"column:email;type:text"`
	Resposta1 string `json:"resposta1" gorm:"column:resposta1;type:text"`
	Resposta2 string `json:"resposta2" gorm:"column:resposta2;type:text"`
	Resposta3 string `json:"resposta3" gorm:"column:resposta3;type:text"`
}

// TableName fixa o nome da tabela usado pelo GORM
func (SurveyResponse) TableName() string {
	return "respostas_questionario"
}

// NewSurveyResponse monta a linha a partir das respostas, usando "" para as ausentes
func NewSurveyResponse(name, email string, answers Answers) SurveyResponse {
	return SurveyResponse{
		Name:      name,
		Email:     email,
		Resposta1: answers.Get(AnswerKey1),
		Resposta2: answers.Get(AnswerKey2),
		Resposta3: answers.Get(AnswerKey3),
	}
}

// Answers devolve as respostas salvas no formato usado pelo formulário
func (r SurveyResponse) Answers() Answers {
	return Answers{
		AnswerKey1: r.Resposta1,
		AnswerKey2: r.Resposta2,
		AnswerKey3: r.Resposta3,
	}
}
