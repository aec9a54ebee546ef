package entities

// Page identifica a tela atual do fluxo
type Page int

const (
	PageIdentification Page = iota + 1
	PageQuestionnaire
	PageThankYou
)

func (p Page) String() string {
	switch p {
	case PageIdentification:
		return "identificacao"
	case PageQuestionnaire:
		return "questionario"
	case PageThankYou:
		return "obrigado"
	default:
		return "desconhecida"
	}
}

// Valid indica se a página pertence ao fluxo
func (p Page) Valid() bool {
	return p >= PageIdentification && p <= PageThankYou
}

// SessionState guarda o progresso de um usuário dentro da sessão
type SessionState struct {
	Page    Page    `json:"page"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Answers Answers `json:"responses"`
}

// NewSessionState cria o estado inicial: página 1, sem identificação e sem respostas
func NewSessionState() *SessionState {
	return &SessionState{
		Page:    PageIdentification,
		Answers: Answers{},
	}
}
