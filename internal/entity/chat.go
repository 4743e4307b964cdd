package entity

// Chat message roles as expected by the completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the result of one non-streaming chat completion call.
type Completion struct {
	Text         string
	Model        string
	TokensUsed   int
	FinishReason string
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// ChatResponse is the assistant's answer plus retrieval metadata.
type ChatResponse struct {
	SessionID    string      `json:"session_id"`
	Response     string      `json:"response"`
	ContextUsed  bool        `json:"context_used"`
	Sources      []SourceRef `json:"sources"`
	Model        string      `json:"model"`
	TokensUsed   int         `json:"tokens_used"`
	FinishReason string      `json:"finish_reason"`
}

// FileSearchResponse is the body of GET /files/search.
type FileSearchResponse struct {
	Files []FileRecord `json:"files"`
	Count int          `json:"count"`
}
