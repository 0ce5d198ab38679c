package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"rental-agent/apperrors"
	"rental-agent/logger"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v before writing the status so an encoding failure can
// still be answered with a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Get().Errorw("failed to encode response", "error", err)
		http.Error(w, apperrors.ErrInternalServer.Message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// writeError answers with the status and code of err. Internal causes are
// logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.From(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("request failed",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", r.URL.Path,
			"request_id", w.Header().Get(requestIDHeader),
		)
	}
	writeJSON(w, appErr.StatusCode, errorBody{Code: appErr.Code, Message: appErr.Message})
}

// decodeJSON reads a POST body into target, answering the request itself and
// returning false when that fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, apperrors.WithMessage(apperrors.ErrInvalidInput, "request body too large"))
			return false
		}
		writeError(w, r, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid request body"))
		return false
	}
	return true
}
