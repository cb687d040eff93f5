package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-family-tree/internal/config"
	"github.com/MKhiriev/go-family-tree/internal/logger"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/models"
)

// ── Service fakes ───────────────────────────────────────────────────────────
//
// Each fake holds one func field per interface method. Tests set only the
// fields their route reaches; an unset field panics, which fails the test.

type fakeAuthService struct {
	register        func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	authenticate    func(ctx context.Context, email, password string) (models.User, error)
	createToken     func(ctx context.Context, user models.AuthUser) (models.Token, error)
	parseToken      func(ctx context.Context, token string) (models.Claims, error)
	resolveIdentity func(ctx context.Context, token string) (models.AuthUser, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.register(ctx, req)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f.authenticate(ctx, email, password)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.AuthUser) (models.Token, error) {
	return f.createToken(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	return f.parseToken(ctx, token)
}

func (f *fakeAuthService) ResolveIdentity(ctx context.Context, token string) (models.AuthUser, error) {
	return f.resolveIdentity(ctx, token)
}

type fakeProjectService struct {
	list   func(ctx context.Context, caller models.AuthUser) ([]models.Project, error)
	get    func(ctx context.Context, caller models.AuthUser, projectID string) (models.Project, error)
	create func(ctx context.Context, caller models.AuthUser, req models.CreateProjectRequest) (models.Project, error)
	update func(ctx context.Context, caller models.AuthUser, projectID string, update models.ProjectUpdate) (models.Project, error)
	delete func(ctx context.Context, caller models.AuthUser, projectID string) error
}

func (f *fakeProjectService) ListProjects(ctx context.Context, caller models.AuthUser) ([]models.Project, error) {
	return f.list(ctx, caller)
}

func (f *fakeProjectService) GetProject(ctx context.Context, caller models.AuthUser, projectID string) (models.Project, error) {
	return f.get(ctx, caller, projectID)
}

func (f *fakeProjectService) CreateProject(ctx context.Context, caller models.AuthUser, req models.CreateProjectRequest) (models.Project, error) {
	return f.create(ctx, caller, req)
}

func (f *fakeProjectService) UpdateProject(ctx context.Context, caller models.AuthUser, projectID string, update models.ProjectUpdate) (models.Project, error) {
	return f.update(ctx, caller, projectID, update)
}

func (f *fakeProjectService) DeleteProject(ctx context.Context, caller models.AuthUser, projectID string) error {
	return f.delete(ctx, caller, projectID)
}

type fakeAIService struct {
	analyzeDocument     func(ctx context.Context, caller models.AuthUser, req models.AnalyzeDocumentRequest) (models.DocumentAnalysisResult, error)
	detectRelationships func(ctx context.Context, caller models.AuthUser, projectID string) (models.RelationshipDetectionResult, error)
	research            func(ctx context.Context, caller models.AuthUser, projectID string) (models.ResearchSuggestionsResult, error)
	standardizeNames    func(ctx context.Context, caller models.AuthUser, req models.StandardizeNamesRequest) (models.NameStandardizationResult, error)
	listAnalyses        func(ctx context.Context, caller models.AuthUser, projectID string) ([]models.AIAnalysis, error)
}

func (f *fakeAIService) AnalyzeDocument(ctx context.Context, caller models.AuthUser, req models.AnalyzeDocumentRequest) (models.DocumentAnalysisResult, error) {
	return f.analyzeDocument(ctx, caller, req)
}

func (f *fakeAIService) DetectRelationships(ctx context.Context, caller models.AuthUser, projectID string) (models.RelationshipDetectionResult, error) {
	return f.detectRelationships(ctx, caller, projectID)
}

func (f *fakeAIService) GetResearchSuggestions(ctx context.Context, caller models.AuthUser, projectID string) (models.ResearchSuggestionsResult, error) {
	return f.research(ctx, caller, projectID)
}

func (f *fakeAIService) StandardizeNames(ctx context.Context, caller models.AuthUser, req models.StandardizeNamesRequest) (models.NameStandardizationResult, error) {
	return f.standardizeNames(ctx, caller, req)
}

func (f *fakeAIService) ListAnalyses(ctx context.Context, caller models.AuthUser, projectID string) ([]models.AIAnalysis, error) {
	return f.listAnalyses(ctx, caller, projectID)
}

type fakeAdminService struct {
	stats   func(ctx context.Context, caller models.AuthUser) (models.AdminStats, error)
	clients func(ctx context.Context, caller models.AuthUser) ([]models.ClientOverview, error)
}

func (f *fakeAdminService) GetStats(ctx context.Context, caller models.AuthUser) (models.AdminStats, error) {
	return f.stats(ctx, caller)
}

func (f *fakeAdminService) ListClients(ctx context.Context, caller models.AuthUser) ([]models.ClientOverview, error) {
	return f.clients(ctx, caller)
}

type fakeAppInfoService struct {
	version string
	health  error
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }
func (f *fakeAppInfoService) CheckHealth(context.Context) error    { return f.health }

// ── Fixtures ────────────────────────────────────────────────────────────────

var (
	testAdmin  = models.AuthUser{ID: "seed-admin", Email: "admin@familytree.test", Name: "Admin", Role: models.RoleAdmin}
	testClient = models.AuthUser{ID: "seed-client", Email: "client@familytree.test", Name: "Client", Role: models.RoleClient}
)

const (
	adminToken  = "admin-token"
	clientToken = "client-token"
)

// sessionAuth returns an auth fake that knows adminToken and clientToken.
func sessionAuth() *fakeAuthService {
	users := map[string]models.AuthUser{adminToken: testAdmin, clientToken: testClient}
	return &fakeAuthService{
		parseToken: func(_ context.Context, token string) (models.Claims, error) {
			u, ok := users[token]
			if !ok {
				return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Claims{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
		},
		resolveIdentity: func(_ context.Context, token string) (models.AuthUser, error) {
			u, ok := users[token]
			if !ok {
				return models.AuthUser{}, service.ErrTokenIsExpiredOrInvalid
			}
			return u, nil
		},
		createToken: func(_ context.Context, user models.AuthUser) (models.Token, error) {
			return models.Token{
				SignedString: "signed-" + user.ID,
				Claims:       models.Claims{UserID: user.ID, Email: user.Email, Role: user.Role},
				ExpiresAt:    time.Now().Add(time.Hour),
			}, nil
		},
	}
}

func newTestRouter(services *service.Services, cfg config.StructuredConfig) http.Handler {
	if services.AuthService == nil {
		services.AuthService = sessionAuth()
	}
	return NewHandler(services, cfg, logger.Nop()).Init()
}

// doRequest sends body as JSON. An empty token sends no cookie.
func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeEnvelope unmarshals the response envelope; data lands in dst when
// it is not nil.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, dst any) models.Response {
	t.Helper()

	var raw struct {
		models.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), rr.Body.String())
	if dst != nil {
		require.NoError(t, json.Unmarshal(raw.Data, dst))
	}
	return raw.Response
}
