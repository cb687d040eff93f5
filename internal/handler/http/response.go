package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/internal/validators"
	"github.com/MKhiriev/go-family-tree/models"
)

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Data: data, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeSuccess").Msg("failed to write response")
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, title, message string, details map[string]string) {
	resp := models.Response{Success: false, Error: title, Message: message, Details: details}
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeFailure").Msg("failed to write response")
	}
}

// writeError maps err to its status and envelope. Unmapped failures are
// logged and answered with a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	m := mappingFromError(err)

	message := err.Error()
	var details map[string]string

	var validationErr *validators.ValidationError
	switch {
	case m.status >= http.StatusInternalServerError && !m.passMessage:
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("request failed")
		message = "An unexpected error occurred"
	case m.status >= http.StatusInternalServerError:
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("AI operation failed")
	case m.title == app.MsgInvalidInput && errors.As(err, &validationErr):
		message = "Request validation failed"
		details = validationErr.Fields
	}

	writeFailure(w, r, m.status, m.title, message, details)
}

// decodeAndValidate reads one JSON value into dst and checks its tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst)
}

func (h *Handler) apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusNotFound, app.MsgNotFound, "No such endpoint", nil)
}
