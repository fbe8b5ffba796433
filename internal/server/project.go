package server

import (
	"fmt"
	"net/http"

	"github.com/Adravilag/sagebox-lab/internal/generate"
	"github.com/Adravilag/sagebox-lab/internal/icons"
)

const msgNoProjectIcons = `No icons in project. Add icons first using "Add to Project".`

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	names := s.app.Membership().Names(r.Context()).Sorted()
	writeCachedJSON(w, r, map[string]any{"icons": names, "count": len(names)})
}

func (s *Server) decodeNames(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req namesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Icons array required")
		return nil, false
	}
	return req.Icons, true
}

func (s *Server) handleAddToProject(w http.ResponseWriter, r *http.Request) {
	names, ok := s.decodeNames(w, r)
	if !ok {
		return
	}
	count, err := s.app.Membership().Add(r.Context(), names...)
	if err != nil {
		writeFailure(w, r, "Failed to add icons to project", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Added %d icons to project", len(names)),
		"count":   count,
		"built":   true,
	})
}

func (s *Server) handleRemoveFromProject(w http.ResponseWriter, r *http.Request) {
	names, ok := s.decodeNames(w, r)
	if !ok {
		return
	}
	count, err := s.app.Membership().Remove(r.Context(), names...)
	if err != nil {
		writeFailure(w, r, "Failed to remove icons from project", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Removed %d icons from project", len(names)),
		"count":   count,
		"built":   true,
	})
}

func (s *Server) handleExportProject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="project-icons.json"`)
	writeJSON(w, http.StatusOK, generate.ExportMap(s.app.Library.ExportProject(r.Context())))
}

func (s *Server) projectIcons(w http.ResponseWriter, r *http.Request) ([]icons.Icon, bool) {
	list := s.app.Library.ExportProject(r.Context())
	if len(list) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": msgNoProjectIcons, "count": 0})
		return nil, false
	}
	return list, true
}

func (s *Server) handleBuildPreview(w http.ResponseWriter, r *http.Request) {
	list, ok := s.projectIcons(w, r)
	if !ok {
		return
	}
	module, err := s.app.Writer().Preview(list)
	if err != nil {
		writeFailure(w, r, "Failed to generate icons", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="index.ts"`)
	_, _ = w.Write([]byte(module))
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.projectIcons(w, r); !ok {
		return
	}
	res, err := s.app.Rebuild(r.Context())
	if err != nil {
		writeFailure(w, r, "Failed to build icons", err)
		return
	}
	if res.Skipped {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   res.Message,
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
