package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PavaniTiago/questionario/internal/application/usecases"
	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/interfaces/http/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
)

// Chaves usadas dentro da sessão do fiber
const (
	stateKey = "questionario"
	flashKey = "flash"
)

// MsgSaved aparece na página de agradecimento logo após o envio
const MsgSaved = "Respostas salvas!"

// SurveyHandler renderiza as três páginas e aplica as transições do questionário
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
	sessions      *session.Store
	log           *zap.Logger
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase, sessions *session.Store, log *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
		sessions:      sessions,
		log:           log,
	}
}

// questionView é uma pergunta com o valor atual do campo
type questionView struct {
	Field string
	Text  string
	Value string
}

// loadState lê o estado da sessão, criando o estado inicial no primeiro acesso
func (h *SurveyHandler) loadState(c *fiber.Ctx) (*session.Session, *entities.SessionState, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao carregar sessão: %w", err)
	}

	raw, _ := sess.Get(stateKey).(string)
	if raw == "" {
		return sess, entities.NewSessionState(), nil
	}

	var state entities.SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || !state.Page.Valid() {
		h.log.Warn("estado de sessão inválido, reiniciando", zap.String("session", sess.ID()))
		return sess, entities.NewSessionState(), nil
	}
	if state.Answers == nil {
		state.Answers = entities.Answers{}
	}
	return sess, &state, nil
}

// saveState grava o estado e libera a sessão; sess não pode ser usada depois
func (h *SurveyHandler) saveState(sess *session.Session, state *entities.SessionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	sess.Set(stateKey, string(raw))
	if err := sess.Save(); err != nil {
		return fmt.Errorf("erro ao salvar sessão: %w", err)
	}
	return nil
}

// Show renderiza a página correspondente ao estado atual
func (h *SurveyHandler) Show(c *fiber.Ctx) error {
	sess, state, err := h.loadState(c)
	if err != nil {
		return err
	}

	// Só a leitura da mensagem altera a sessão; visitas sem ação não criam entrada
	flash, _ := sess.Get(flashKey).(string)
	if flash != "" {
		sess.Delete(flashKey)
		if err := h.saveState(sess, state); err != nil {
			return err
		}
	}

	switch state.Page {
	case entities.PageQuestionnaire:
		return h.renderQuestionnaire(c, fiber.StatusOK, state.Answers, "")
	case entities.PageThankYou:
		return c.Render(entities.PageThankYou.String(), fiber.Map{
			"Title":   "Obrigado!",
			"Success": flash,
		}, views.Layout)
	default:
		return h.renderIdentification(c, fiber.StatusOK, state.Name, state.Email, "")
	}
}

// Identify trata o envio da página de identificação
func (h *SurveyHandler) Identify(c *fiber.Ctx) error {
	sess, state, err := h.loadState(c)
	if err != nil {
		return err
	}

	name := c.FormValue("nome")
	email := c.FormValue("email")

	err = h.surveyUseCase.Identify(c.UserContext(), state, name, email)
	var vErr *usecases.ValidationError
	switch {
	case errors.Is(err, usecases.ErrInvalidTransition):
		return c.Redirect("/", fiber.StatusSeeOther)
	case errors.As(err, &vErr):
		return h.renderIdentification(c, fiber.StatusUnprocessableEntity, name, email, vErr.Message)
	case err != nil:
		return err
	}

	if err := h.saveState(sess, state); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Submit trata o envio do questionário
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	sess, state, err := h.loadState(c)
	if err != nil {
		return err
	}

	_, err = h.surveyUseCase.Submit(c.UserContext(), state, answersFromForm(c))
	var vErr *usecases.ValidationError
	switch {
	case errors.Is(err, usecases.ErrInvalidTransition):
		return c.Redirect("/", fiber.StatusSeeOther)
	case errors.As(err, &vErr):
		// As respostas digitadas ficam na sessão mesmo sem validar
		if err := h.saveState(sess, state); err != nil {
			return err
		}
		return h.renderQuestionnaire(c, fiber.StatusUnprocessableEntity, state.Answers, vErr.Message)
	case err != nil:
		return err
	}

	sess.Set(flashKey, MsgSaved)
	if err := h.saveState(sess, state); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Restart trata o botão "Reiniciar" da página final
func (h *SurveyHandler) Restart(c *fiber.Ctx) error {
	sess, state, err := h.loadState(c)
	if err != nil {
		return err
	}

	if err := h.surveyUseCase.Restart(state); err != nil {
		if errors.Is(err, usecases.ErrInvalidTransition) {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return err
	}

	if err := h.saveState(sess, state); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *SurveyHandler) renderIdentification(c *fiber.Ctx, status int, name, email, message string) error {
	return c.Status(status).Render(entities.PageIdentification.String(), fiber.Map{
		"Title": "Questionário",
		"Name":  name,
		"Email": email,
		"Error": message,
	}, views.Layout)
}

func (h *SurveyHandler) renderQuestionnaire(c *fiber.Ctx, status int, answers entities.Answers, message string) error {
	questions := make([]questionView, 0, len(entities.Questions))
	for _, q := range entities.Questions {
		questions = append(questions, questionView{Field: q.Field, Text: q.Text, Value: answers.Get(q.Key)})
	}

	return c.Status(status).Render(entities.PageQuestionnaire.String(), fiber.Map{
		"Title":     "Perguntas",
		"Questions": questions,
		"Error":     message,
	}, views.Layout)
}
