package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/PavaniTiago/questionario/internal/domain/entities"
	"github.com/PavaniTiago/questionario/internal/domain/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo guarda as linhas em memória, em ordem de inserção
type memoryRepo struct {
	rows    []entities.SurveyResponse
	findErr error
	saveErr error
}

func (m *memoryRepo) EnsureSchema(context.Context) error { return nil }

func (m *memoryRepo) SaveResponse(_ context.Context, name, email string, answers entities.Answers) (*entities.SurveyResponse, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	row := entities.NewSurveyResponse(name, email, answers)
	row.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memoryRepo) LoadResponses(context.Context) ([]entities.SurveyResponse, error) {
	return append([]entities.SurveyResponse(nil), m.rows...), nil
}

func (m *memoryRepo) FindResponse(_ context.Context, name, email string) (*entities.SurveyResponse, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, row := range m.rows {
		if row.Name == name && row.Email == email {
			found := row
			return &found, nil
		}
	}
	return nil, repositories.ErrResponseNotFound
}

func (m *memoryRepo) Close() error { return nil }

func anaAnswers() entities.Answers {
	return entities.Answers{
		entities.AnswerKey1: "VSCode",
		entities.AnswerKey2: "Scope creep",
		entities.AnswerKey3: "Good",
	}
}

func TestFullFlowSavesOneRow(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewSurveyUseCase(repo, false, nil)
	ctx := context.Background()
	state := entities.NewSessionState()

	require.NoError(t, uc.Identify(ctx, state, "Ana", "ana@x.com"))
	assert.Equal(t, entities.PageQuestionnaire, state.Page)
	assert.Empty(t, state.Answers)

	saved, err := uc.Submit(ctx, state, anaAnswers())
	require.NoError(t, err)
	assert.Equal(t, entities.PageThankYou, state.Page)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, *saved, repo.rows[0])
	assert.Equal(t, entities.SurveyResponse{
		ID: 1, Name: "Ana", Email: "ana@x.com",
		Resposta1: "VSCode", Resposta2: "Scope creep", Resposta3: "Good",
	}, repo.rows[0])
}

func TestIdentifyPrefillsPreviousAnswers(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewSurveyUseCase(repo, false, nil)
	ctx := context.Background()

	first := entities.NewSessionState()
	require.NoError(t, uc.Identify(ctx, first, "Ana", "ana@x.com"))
	_, err := uc.Submit(ctx, first, anaAnswers())
	require.NoError(t, err)
	_, err = repo.SaveResponse(ctx, "Ana", "ana@x.com", entities.Answers{
		entities.AnswerKey1: "Vim", entities.AnswerKey2: "x", entities.AnswerKey3: "y",
	})
	require.NoError(t, err)

	second := entities.NewSessionState()
	require.NoError(t, uc.Identify(ctx, second, "Ana", "ana@x.com"))
	assert.Equal(t, anaAnswers(), second.Answers)
}

func TestIdentifyTrimsInput(t *testing.T) {
	uc := NewSurveyUseCase(&memoryRepo{}, false, nil)
	state := entities.NewSessionState()

	require.NoError(t, uc.Identify(context.Background(), state, "  Ana ", " ana@x.com "))
	assert.Equal(t, "Ana", state.Name)
	assert.Equal(t, "ana@x.com", state.Email)
}

func TestIdentifyValidation(t *testing.T) {
	cases := map[string][2]string{
		"sem nome":   {"", "ana@x.com"},
		"sem email":  {"Ana", ""},
		"só espaços": {"   ", "  "},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			uc := NewSurveyUseCase(&memoryRepo{}, false, nil)
			state := entities.NewSessionState()
			before := *state

			err := uc.Identify(context.Background(), state, in[0], in[1])

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, MsgMissingIdentity, vErr.Message)
			assert.Equal(t, before, *state)
		})
	}
}

func TestIdentifyRepositoryFailureKeepsState(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewSurveyUseCase(&memoryRepo{findErr: boom}, false, nil)
	state := entities.NewSessionState()

	err := uc.Identify(context.Background(), state, "Ana", "ana@x.com")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, entities.PageIdentification, state.Page)
	assert.Empty(t, state.Name)
}

func TestSubmitWithEmptyAnswerWritesNothing(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewSurveyUseCase(repo, false, nil)
	ctx := context.Background()
	state := entities.NewSessionState()
	require.NoError(t, uc.Identify(ctx, state, "Ana", "ana@x.com"))

	answers := anaAnswers()
	answers[entities.AnswerKey2] = "  "
	_, err := uc.Submit(ctx, state, answers)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, MsgMissingAnswers, vErr.Message)
	assert.Equal(t, entities.PageQuestionnaire, state.Page)
	assert.Empty(t, repo.rows)
	// As respostas digitadas continuam vinculadas ao estado
	assert.Equal(t, "VSCode", state.Answers.Get(entities.AnswerKey1))
}

func TestSubmitMissingKeyFailsValidation(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewSurveyUseCase(repo, false, nil)
	state := &entities.SessionState{Page: entities.PageQuestionnaire, Name: "Ana", Email: "ana@x.com"}

	_, err := uc.Submit(context.Background(), state, entities.Answers{entities.AnswerKey1: "VSCode"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.rows)
}

func TestSubmitRepositoryFailureStaysOnQuestionnaire(t *testing.T) {
	boom := errors.New("insert failed")
	uc := NewSurveyUseCase(&memoryRepo{saveErr: boom}, false, nil)
	state := &entities.SessionState{Page: entities.PageQuestionnaire, Name: "Ana", Email: "ana@x.com"}

	_, err := uc.Submit(context.Background(), state, anaAnswers())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, entities.PageQuestionnaire, state.Page)
}

func TestRestart(t *testing.T) {
	t.Run("mantém identidade", func(t *testing.T) {
		uc := NewSurveyUseCase(&memoryRepo{}, false, nil)
		state := &entities.SessionState{Page: entities.PageThankYou, Name: "Ana", Email: "ana@x.com", Answers: anaAnswers()}

		require.NoError(t, uc.Restart(state))
		assert.Equal(t, entities.PageIdentification, state.Page)
		assert.Empty(t, state.Answers)
		assert.Equal(t, "Ana", state.Name)
		assert.Equal(t, "ana@x.com", state.Email)
	})

	t.Run("limpa identidade", func(t *testing.T) {
		uc := NewSurveyUseCase(&memoryRepo{}, true, nil)
		state := &entities.SessionState{Page: entities.PageThankYou, Name: "Ana", Email: "ana@x.com", Answers: anaAnswers()}

		require.NoError(t, uc.Restart(state))
		assert.Equal(t, entities.PageIdentification, state.Page)
		assert.Empty(t, state.Answers)
		assert.Empty(t, state.Name)
		assert.Empty(t, state.Email)
	})
}

func TestTransitionsOnlyFromTheirPage(t *testing.T) {
	uc := NewSurveyUseCase(&memoryRepo{}, false, nil)
	ctx := context.Background()

	state := &entities.SessionState{Page: entities.PageThankYou}
	assert.ErrorIs(t, uc.Identify(ctx, state, "Ana", "ana@x.com"), ErrInvalidTransition)

	state = &entities.SessionState{Page: entities.PageIdentification}
	_, err := uc.Submit(ctx, state, anaAnswers())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	state = &entities.SessionState{Page: entities.PageQuestionnaire}
	assert.ErrorIs(t, uc.Restart(state), ErrInvalidTransition)
}

func TestListResponses(t *testing.T) {
	repo := &memoryRepo{}
	uc := NewSurveyUseCase(repo, false, nil)
	_, err := repo.SaveResponse(context.Background(), "Ana", "ana@x.com", anaAnswers())
	require.NoError(t, err)

	rows, err := uc.ListResponses(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
