package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-resty/resty/v2"
)

// SessionCookieName is the cookie the API issues on login.
const SessionCookieName = "auth-token"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the auth-token cookie of the reply.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthUser{}, err
	}

	token := sessionCookie(resp.Cookies())
	if token == "" {
		return models.AuthUser{}, ErrNoSessionCookie
	}

	auth, err := decodeData[models.AuthResponse](resp)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

// Logout implements [ServerAdapter]. The local token is dropped even when
// the server call fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.AuthUser, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthUser{}, err
	}

	auth, err := decodeData[models.AuthResponse](resp)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("decode me response: %w", err)
	}
	return auth.User, nil
}

// ListProjects implements [ServerAdapter].
func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	projects, err := decodeData[[]models.Project](resp)
	if err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}
	return projects, nil
}

// ListFamilyMembers implements [ServerAdapter].
func (h *httpServerAdapter) ListFamilyMembers(ctx context.Context, projectID string) ([]models.FamilyMember, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("projectID", projectID).
		Get("/api/projects/{projectID}/members")
	if err != nil {
		return nil, fmt.Errorf("list family members request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	members, err := decodeData[[]models.FamilyMember](resp)
	if err != nil {
		return nil, fmt.Errorf("decode family members response: %w", err)
	}
	return members, nil
}

// GetResearchSuggestions implements [ServerAdapter]. It POSTs the project id
// to POST /api/ai/research-assistant.
func (h *httpServerAdapter) GetResearchSuggestions(ctx context.Context, projectID string) (models.ResearchSuggestionsResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ProjectAIRequest{ProjectID: projectID}).
		Post("/api/ai/research-assistant")
	if err != nil {
		return models.ResearchSuggestionsResult{}, fmt.Errorf("research assistant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResearchSuggestionsResult{}, err
	}

	result, err := decodeData[models.ResearchSuggestionsResult](resp)
	if err != nil {
		return models.ResearchSuggestionsResult{}, fmt.Errorf("decode research suggestions response: %w", err)
	}
	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	return req
}

func sessionCookie(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == SessionCookieName {
			return c.Value
		}
	}
	return ""
}

// decodeData unwraps the data field of a success envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var envelope struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return envelope.Data, err
	}
	if !envelope.Success {
		return envelope.Data, fmt.Errorf("unsuccessful envelope: %s", errorMessage(resp.Body()))
	}
	return envelope.Data, nil
}
