package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	documents, err := h.services.DocumentService.ListDocuments(r.Context(), user, chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if documents == nil {
		documents = []models.Document{}
	}

	writeSuccess(w, r, http.StatusOK, documents, "")
}

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	var req models.CreateDocumentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	document, err := h.services.DocumentService.CreateDocument(r.Context(), user, chi.URLParam(r, "projectID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, document, "Document created")
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	document, err := h.services.DocumentService.GetDocument(r.Context(), user, chi.URLParam(r, "projectID"), chi.URLParam(r, "documentID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, document, "")
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	err := h.services.DocumentService.DeleteDocument(r.Context(), user, chi.URLParam(r, "projectID"), chi.URLParam(r, "documentID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, nil, "Document deleted")
}
