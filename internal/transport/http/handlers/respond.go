package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ihebmsaed/Artygen/internal/ai"
	httperrors "github.com/Ihebmsaed/Artygen/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeForbidden(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusForbidden, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

// writeAIError maps gateway failures to a caller-actionable status.
// Returns false when the error did not originate in the AI layer, so
// the caller can fall through to its own mapping.
func writeAIError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ai.ErrAuth):
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
			Code: "AI_AUTH", Message: "ai provider rejected our credentials",
		})
	case errors.Is(err, ai.ErrQuota):
		httperrors.Write(w, http.StatusTooManyRequests, httperrors.APIError{
			Code: "AI_QUOTA", Message: "ai provider quota exhausted, try again later",
		})
	case errors.Is(err, ai.ErrModelLoading):
		httperrors.Write(w, http.StatusServiceUnavailable, httperrors.APIError{
			Code: "AI_MODEL_LOADING", Message: "model is warming up, retry shortly",
		})
	case errors.Is(err, ai.ErrTimeout):
		httperrors.Write(w, http.StatusGatewayTimeout, httperrors.APIError{
			Code: "AI_TIMEOUT", Message: "ai provider did not answer in time",
		})
	case errors.Is(err, ai.ErrConnection), errors.Is(err, ai.ErrUpstream):
		httperrors.Write(w, http.StatusBadGateway, httperrors.APIError{
			Code: "AI_UPSTREAM", Message: "ai provider is unavailable",
		})
	default:
		return false
	}
	return true
}

func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name, fallback string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
