package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// static serves the tool front-end. Unknown paths without an extension fall
// back to index.html so client-side routes survive a reload.
func (s *Server) static() http.Handler {
	info, err := os.Stat(s.distDir)
	if s.distDir == "" || err != nil || !info.IsDir() {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, "Front-end for "+s.tool.Name+" is not built")
		})
	}

	files := http.FileServer(http.Dir(s.distDir))
	index := filepath.Join(s.distDir, "index.html")

	return withStaticMime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(clean, "/api/") {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		if clean == "/" {
			files.ServeHTTP(w, r)
			return
		}
		if fi, err := os.Stat(filepath.Join(s.distDir, filepath.FromSlash(clean))); err == nil && !fi.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		if path.Ext(clean) != "" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}))
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch p := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(p, ".js"), strings.HasSuffix(p, ".mjs"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(p, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		next.ServeHTTP(w, r)
	})
}
