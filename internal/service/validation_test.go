package service_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surfjobs-backend/internal/domain"
	"surfjobs-backend/internal/service"
)

// messageOf builds a message of exactly chars characters holding words tokens.
func messageOf(chars, words int) string {
	tokens := make([]string, words)
	for i := range tokens {
		tokens[i] = "w"
	}
	msg := strings.Join(tokens, " ")
	if pad := chars - len(msg); pad > 0 {
		msg += strings.Repeat("e", pad)
	}
	return msg
}

func TestMessageOf(t *testing.T) {
	msg := messageOf(60, 12)
	assert.Equal(t, 60, utf8.RuneCountInString(msg))
	assert.Len(t, strings.Fields(msg), 12)
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr string
	}{
		{name: "49 characters", message: messageOf(49, 10), wantErr: "at least 50 characters"},
		{name: "50 characters and 10 words", message: messageOf(50, 10)},
		{name: "500 characters", message: messageOf(500, 40)},
		{name: "501 characters", message: messageOf(501, 40), wantErr: "at most 500 characters"},
		{name: "50 characters with 9 words", message: messageOf(50, 9), wantErr: "at least 10 words"},
		{name: "empty", message: "", wantErr: "at least 50 characters"},
		{name: "multibyte characters count once", message: strings.Repeat("ñ", 31) + " " + strings.TrimSpace(strings.Repeat("a ", 9)) + " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateMessage(tt.message)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "message", de.Field)
		})
	}
}
