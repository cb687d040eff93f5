package http

import (
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/models"
)

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	version := h.services.AppInfoService.GetAppVersion(ctx)

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		writeFailure(w, r, http.StatusServiceUnavailable, app.MsgServiceUnavailable, "Database is not reachable", nil)
		return
	}

	writeSuccess(w, r, http.StatusOK, models.HealthResponse{Status: "ok", Version: version}, "")
}
