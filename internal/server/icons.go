package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/preview"
)

const (
	msgInvalidName     = "Invalid name format. Use lowercase, numbers, hyphens, and colons only."
	msgInvalidContent  = "Content must be valid SVG"
	defaultSearchLimit = 50
)

// writeIconError maps library errors to responses. name is the icon the
// not-found error refers to, target the one a conflict refers to.
func writeIconError(w http.ResponseWriter, r *http.Request, err error, name, target, failure string) {
	switch {
	case errors.Is(err, icons.ErrInvalidName):
		writeError(w, http.StatusBadRequest, msgInvalidName)
	case errors.Is(err, icons.ErrInvalidContent):
		writeError(w, http.StatusBadRequest, msgInvalidContent)
	case errors.Is(err, icons.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Icon %q not found", name))
	case errors.Is(err, icons.ErrAlreadyExists):
		writeError(w, http.StatusConflict, fmt.Sprintf("Icon %q already exists", target))
	default:
		writeFailure(w, r, failure, err)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if q := r.URL.Query().Get("q"); q != "" {
		writeCachedJSON(w, r, s.app.Library.Search(ctx, q, queryInt(r, "limit", defaultSearchLimit)))
		return
	}
	writeCachedJSON(w, r, s.app.Library.List(ctx))
}

func (s *Server) handleCreateIcon(w http.ResponseWriter, r *http.Request) {
	var req createIconRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Name and content are required")
		return
	}
	if err := s.app.Library.Add(r.Context(), req.Name, req.Content); err != nil {
		writeIconError(w, r, err, req.Name, req.Name, "Failed to add icon")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "name": req.Name})
}

func (s *Server) handleGetIcon(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	icon, err := s.app.Library.Get(r.Context(), name)
	if err != nil {
		writeIconError(w, r, err, name, name, "Failed to get icon")
		return
	}
	writeCachedJSON(w, r, icon)
}

func (s *Server) handleUpdateIcon(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req updateIconRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Icon content is required")
		return
	}
	icon, err := s.app.Library.Update(r.Context(), name, req.Content)
	if err != nil {
		writeIconError(w, r, err, name, name, "Failed to update icon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": name, "icon": icon})
}

func (s *Server) handleDeleteIcon(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.app.Library.Delete(r.Context(), name); err != nil {
		writeIconError(w, r, err, name, name, "Failed to delete icon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": name})
}

func (s *Server) handleRenameIcon(w http.ResponseWriter, r *http.Request) {
	var req renameIconRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		if failedTag(err) == "iconname" {
			writeError(w, http.StatusBadRequest, msgInvalidName)
			return
		}
		writeError(w, http.StatusBadRequest, "Both oldName and newName are required")
		return
	}
	if err := s.app.Library.Rename(r.Context(), req.OldName, req.NewName); err != nil {
		writeIconError(w, r, err, req.OldName, req.NewName, "Failed to rename icon")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"oldName": req.OldName,
		"newName": req.NewName,
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	color, err := preview.ParseColor(r.URL.Query().Get("color"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	icon, err := s.app.Library.Get(r.Context(), name)
	if err != nil {
		writeIconError(w, r, err, name, name, "Failed to get icon")
		return
	}
	data, err := preview.Render(icon.Content, queryInt(r, "size", preview.DefaultSize), color)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "Failed to render preview", Details: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", etag(data))
	_, _ = w.Write(data)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeCachedJSON(w, r, icons.Categorize(s.app.Library.List(r.Context())))
}
