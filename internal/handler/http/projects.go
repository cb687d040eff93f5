package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	projects, err := h.services.ProjectService.ListProjects(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	writeSuccess(w, r, http.StatusOK, projects, "")
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, project, "Project created")
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, project, "")
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), user, chi.URLParam(r, "projectID"), req.ToUpdate())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, project, "Project updated")
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	if err := h.services.ProjectService.DeleteProject(r.Context(), user, chi.URLParam(r, "projectID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, "Project deleted")
}
