package api

import (
	"encoding/json"
	"net/http"

	"trendai/internal/domain"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
		message = "internal server error"
	}
	h.writeJSON(w, status, map[string]interface{}{
		"statusCode": status,
		"message":    message,
	})
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body: %v", err))
		return false
	}
	return true
}
