package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRelationships(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	relationships, err := h.services.RelationshipService.ListRelationships(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if relationships == nil {
		relationships = []models.Relationship{}
	}

	writeSuccess(w, r, http.StatusOK, relationships, "")
}

func (h *Handler) createRelationship(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateRelationshipRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	relationship, err := h.services.RelationshipService.CreateRelationship(r.Context(), user, chi.URLParam(r, "projectID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, relationship, "Relationship created")
}

func (h *Handler) deleteRelationship(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	err := h.services.RelationshipService.DeleteRelationship(r.Context(), user, chi.URLParam(r, "projectID"), chi.URLParam(r, "relationshipID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, "Relationship deleted")
}
