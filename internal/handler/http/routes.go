package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(h.gate)
	if h.serverCfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.serverCfg.RequestTimeout))
	}

	router.Get("/healthz", h.healthz)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.identity)

			r.Post("/auth/logout", h.logout)
			r.Get("/auth/me", h.me)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.listProjects)
				r.Post("/", h.createProject)

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", h.getProject)
					r.Patch("/", h.updateProject)
					r.Delete("/", h.deleteProject)

					r.Get("/members", h.listFamilyMembers)
					r.Post("/members", h.createFamilyMember)
					r.Patch("/members/{memberID}", h.updateFamilyMember)
					r.Delete("/members/{memberID}", h.deleteFamilyMember)

					r.Get("/documents", h.listDocuments)
					r.Post("/documents", h.createDocument)
					r.Get("/documents/{documentID}", h.getDocument)
					r.Delete("/documents/{documentID}", h.deleteDocument)

					r.Get("/relationships", h.listRelationships)
					r.Post("/relationships", h.createRelationship)
					r.Delete("/relationships/{relationshipID}", h.deleteRelationship)

					r.Get("/analyses", h.listAnalyses)
				})
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/analyze-document", h.analyzeDocument)
				r.Post("/research-assistant", h.researchAssistant)
				r.Post("/detect-relationships", h.detectRelationships)
				r.Post("/standardize-names", h.standardizeNames)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Get("/stats", h.adminStats)
				r.Get("/clients", h.adminClients)
			})
		})

		r.NotFound(h.apiNotFound)
	})

	if h.serverCfg.StaticDir != "" {
		router.Handle("/*", h.static(h.serverCfg.StaticDir))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
