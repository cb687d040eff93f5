package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// static serves files from dir and answers every other page path with
// index.html so client-side routing works.
func (h *Handler) static(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeFailure(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "", nil)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(name, "/"))))
		if err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			h.logger.Err(err).Str("path", name).Msg("static file lookup failed")
		}

		http.ServeFile(w, r, index)
	})
}
