package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"go.uber.org/zap"
)

// Mensagens exibidas quando a validação do formulário falha
const (
	MsgMissingIdentity = "Preencha todos os campos!"
	MsgMissingAnswers  = "Responda todas as perguntas!"
)

// ErrInvalidTransition indica uma ação que não pertence à página atual
var ErrInvalidTransition = errors.New("transição inválida para a página atual")

// ValidationError é um erro recuperável exibido junto ao formulário
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SurveyUseCase implementa as transições entre as páginas do questionário
type SurveyUseCase struct {
	surveyRepo            repositories.SurveyRepository
	restartClearsIdentity bool
	log                   *zap.Logger
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase.
// restartClearsIdentity define se "Reiniciar" também apaga nome e email.
func NewSurveyUseCase(surveyRepo repositories.SurveyRepository, restartClearsIdentity bool, log *zap.Logger) *SurveyUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &SurveyUseCase{
		surveyRepo:            surveyRepo,
		restartClearsIdentity: restartClearsIdentity,
		log:                   log,
	}
}

// Identify valida nome e email, busca respostas anteriores e avança para o questionário
func (u *SurveyUseCase) Identify(ctx context.Context, state *entities.SessionState, name, email string) error {
	if state.Page != entities.PageIdentification {
		return ErrInvalidTransition
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return &ValidationError{Message: MsgMissingIdentity}
	}

	answers := entities.Answers{}
	previous, err := u.surveyRepo.FindResponse(ctx, name, email)
	switch {
	case errors.Is(err, repositories.ErrResponseNotFound):
	case err != nil:
		return fmt.Errorf("erro ao buscar respostas anteriores: %w", err)
	default:
		answers = previous.Answers()
		u.log.Debug("respostas anteriores encontradas", zap.Int64("id", previous.ID))
	}

	state.Name = name
	state.Email = email
	state.Answers = answers
	state.Page = entities.PageQuestionnaire
	return nil
}

// Submit vincula as respostas ao estado, valida e grava a linha.
// Com alguma resposta vazia nada é gravado e a página continua no questionário.
func (u *SurveyUseCase) Submit(ctx context.Context, state *entities.SessionState, answers entities.Answers) (*entities.SurveyResponse, error) {
	if state.Page != entities.PageQuestionnaire {
		return nil, ErrInvalidTransition
	}

	bound := entities.Answers{}
	for _, q := range entities.Questions {
		bound[q.Key] = answers.Get(q.Key)
	}
	state.Answers = bound

	if !bound.Complete() {
		return nil, &ValidationError{Message: MsgMissingAnswers}
	}

	saved, err := u.surveyRepo.SaveResponse(ctx, state.Name, state.Email, bound)
	if err != nil {
		return nil, err
	}

	u.log.Info("respostas salvas", zap.Int64("id", saved.ID))
	state.Page = entities.PageThankYou
	return saved, nil
}

// Restart volta para a identificação e limpa as respostas
func (u *SurveyUseCase) Restart(state *entities.SessionState) error {
	if state.Page != entities.PageThankYou {
		return ErrInvalidTransition
	}

	state.Page = entities.PageIdentification
	state.Answers = entities.Answers{}
	if u.restartClearsIdentity {
		state.Name = ""
		state.Email = ""
	}
	return nil
}

// ListResponses retorna todas as respostas salvas, usado na exportação
func (u *SurveyUseCase) ListResponses(ctx context.Context) ([]entities.SurveyResponse, error) {
	return u.surveyRepo.LoadResponses(ctx)
}
