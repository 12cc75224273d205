package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"surfjobs-backend/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

var statusByCode = map[domain.ErrorCode]int{
	domain.CodeUnauthenticated:    http.StatusUnauthorized,
	domain.CodeInvalidInput:       http.StatusBadRequest,
	domain.CodeConflict:           http.StatusConflict,
	domain.CodeForbidden:          http.StatusForbidden,
	domain.CodeNotFound:           http.StatusNotFound,
	domain.CodeStorageUnavailable: http.StatusServiceUnavailable,
}

// writeError renders err as the JSON error envelope. Storage and unknown
// failures never leak their cause to the client.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		log.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "internal",
			Message: "internal error",
		}})
		return
	}

	status, ok := statusByCode[derr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	body := errorBody{Code: string(derr.Code), Message: derr.Message, Field: derr.Field}
	if derr.Code == domain.CodeStorageUnavailable {
		log.Error("storage unavailable", "error", err)
		body.Message = "storage unavailable, try again later"
	}
	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
