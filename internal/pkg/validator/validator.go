package validator

import (
	"fmt"
	"strings"

	"github.com/driveassist/backend/internal/entity"
)

const (
	maxMessageLength     = 4000
	maxSearchQueryLength = 200
)

// Validator validates incoming API requests
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateChatRequest validates the body of POST /chat
func (v *Validator) ValidateChatRequest(req *entity.ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return entity.ErrEmptyMessage
	}
	if len(req.Message) > maxMessageLength {
		return fmt.Errorf("%w: %d characters (max %d)", entity.ErrMessageTooLong, len(req.Message), maxMessageLength)
	}
	return nil
}

// ValidateSearchQuery validates the q parameter of GET /files/search
func (v *Validator) ValidateSearchQuery(query string) error {
	if len(query) > maxSearchQueryLength {
		return fmt.Errorf("search query is too long: %d characters (max %d)", len(query), maxSearchQueryLength)
	}
	return nil
}
