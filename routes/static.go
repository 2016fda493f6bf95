package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jobify-dev/jobs-api/utils"
)

// fallbackHandler serves unmatched requests. API paths get a JSON 404; other
// paths serve files from staticDir, falling back to its index.html so the
// client-side router can take over.
func fallbackHandler(staticDir string) http.Handler {
	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusNotFound, utils.MsgRouteNotFound)
	})
	if staticDir == "" {
		return notFound
	}

	fs := http.FileServer(http.Dir(staticDir))
	index := filepath.Join(staticDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			notFound(w, r)
			return
		}

		name := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
