package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.AnalyzeDocumentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AIService.AnalyzeDocument(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, result, "Document analyzed")
}

func (h *Handler) researchAssistant(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.ProjectAIRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AIService.GetResearchSuggestions(r.Context(), user, req.ProjectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, result, "Research suggestions generated")
}

func (h *Handler) detectRelationships(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.ProjectAIRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AIService.DetectRelationships(r.Context(), user, req.ProjectID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, result, "Relationships detected")
}

func (h *Handler) standardizeNames(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.StandardizeNamesRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AIService.StandardizeNames(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, result, "Names standardized")
}

func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	analyses, err := h.services.AIService.ListAnalyses(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if analyses == nil {
		analyses = []models.AIAnalysis{}
	}

	writeSuccess(w, r, http.StatusOK, analyses, "")
}
