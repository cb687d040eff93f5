package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/models"
)

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	stats, err := h.services.AdminService.GetStats(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, stats, "")
}

func (h *Handler) adminClients(w http.ResponseWriter, r *http.Request) {
	user, ok := mustCaller(w, r)
	if !ok {
		return
	}

	clients, err := h.services.AdminService.ListClients(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if clients == nil {
		clients = []models.ClientOverview{}
	}

	writeSuccess(w, r, http.StatusOK, clients, "")
}
