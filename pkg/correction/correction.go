package correction

import "github.com/germanamz/proofread/pkg/chats/role"

// SystemPrompt instructs the model to fix spelling and punctuation only.
const SystemPrompt = "Ты профессиональный корректор. Исправь орфографию и пунктуацию, " +
	"сохраняя смысл и стиль. Верни только исправленный текст без пояснений."

// Message is a single role-tagged entry of a Request.
type Message struct {
	Role    role.Role
	Content string
}

// Request is one proofreading call. Build it with NewRequest.
type Request struct {
	Model       string
	Temperature float64
	Messages    []Message
}

// NewRequest returns a Request whose first message is the system instruction
// and whose second message is text.
func NewRequest(text, model string, temperature float64) Request {
	return Request{
		Model:       model,
		Temperature: temperature,
		Messages: []Message{
			{Role: role.System, Content: SystemPrompt},
			{Role: role.User, Content: text},
		},
	}
}

// Usage holds the token counts reported for a call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns the sum of input and output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// Result is the outcome of a successful call.
type Result struct {
	Text  string // Corrected text, trimmed.
	Usage Usage
}
