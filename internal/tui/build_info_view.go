package tui

import (
	"fmt"

	"github.com/MKhiriev/go-family-tree/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Application │ go-family-tree console\nVersion     │ %s\nBuilt       │ %s\nCommit      │ %s",
		info.Version, info.Date, info.Commit)
	return renderPage("ABOUT", body, "esc: back")
}
