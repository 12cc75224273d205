package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"surfjobs-backend/internal/domain"
)

const (
	MessageMinChars = 50
	MessageMaxChars = 500
	MessageMinWords = 10
)

// ValidateMessage checks the applicant's cover message. Length is counted in
// characters, words are whitespace-delimited tokens.
func ValidateMessage(message string) error {
	n := utf8.RuneCountInString(message)
	if n < MessageMinChars {
		return domain.NewValidationError("message", fmt.Sprintf("message must be at least %d characters", MessageMinChars))
	}
	if n > MessageMaxChars {
		return domain.NewValidationError("message", fmt.Sprintf("message must be at most %d characters", MessageMaxChars))
	}
	if len(strings.Fields(message)) < MessageMinWords {
		return domain.NewValidationError("message", fmt.Sprintf("message must contain at least %d words", MessageMinWords))
	}
	return nil
}
