package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user.AuthUser(), http.StatusCreated, "Account created")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user.AuthUser(), http.StatusOK, "Login successful")
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.AuthUser, status int, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	logger.FromRequest(r).Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session started")
	writeSuccess(w, r, status, models.AuthResponse{User: user}, message)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeSuccess(w, r, http.StatusOK, nil, "Logged out")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(r)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	writeSuccess(w, r, http.StatusOK, models.AuthResponse{User: user}, "")
}
