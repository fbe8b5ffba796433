package server

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Adravilag/sagebox-lab/internal/iconify"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/importer"
	"github.com/samber/lo"
)

const (
	msgNothingImported = "All icons already exist or failed to import"
	minQueryLength     = 2
	maxSearchLimit     = 200
)

func (s *Server) handleImportCollection(w http.ResponseWriter, r *http.Request) {
	var req importCollectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Icon set prefix is required")
		return
	}

	count, err := s.app.Importer.ImportCollection(r.Context(), req.Prefix, req.Search, req.Limit)
	switch {
	case errors.Is(err, importer.ErrNoPrefix):
		writeError(w, http.StatusBadRequest, "Icon set prefix is required")
		return
	case errors.Is(err, importer.ErrUnknownSet):
		writeError(w, http.StatusBadRequest, "Unknown icon set: "+req.Prefix)
		return
	case errors.Is(err, importer.ErrUpstream):
		writeError(w, http.StatusBadGateway, "Failed to fetch icon collection from Iconify")
		return
	case errors.Is(err, importer.ErrNoMatches):
		writeError(w, http.StatusNotFound, "No icons found matching your criteria")
		return
	case err != nil:
		writeFailure(w, r, "Failed to import icons", err)
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": msgNothingImported, "count": 0})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "count": count, "prefix": req.Prefix})
}

func (s *Server) handleImportIcons(w http.ResponseWriter, r *http.Request) {
	var req namesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Icons array is required")
		return
	}

	count, err := s.app.Importer.ImportNames(r.Context(), req.Icons)
	if err != nil {
		writeFailure(w, r, "Failed to import icons", err)
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "error": msgNothingImported, "count": 0})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"count":   count,
		"message": fmt.Sprintf("Successfully imported %d icons", count),
	})
}

type searchResponse struct {
	Error    string              `json:"error,omitempty"`
	Icons    []string            `json:"icons"`
	Total    int                 `json:"total"`
	ByPrefix map[string][]string `json:"byPrefix,omitempty"`
	Query    string              `json:"query,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := min(queryInt(r, "limit", defaultSearchLimit), maxSearchLimit)

	if len(query) < minQueryLength {
		writeJSON(w, http.StatusBadRequest, searchResponse{
			Error: "Query must be at least 2 characters",
			Icons: []string{},
		})
		return
	}

	res, err := s.app.Iconify.Search(r.Context(), query, limit)
	if err != nil {
		logUpstream(r, "search", err)
		writeJSON(w, http.StatusBadGateway, searchResponse{Error: "Failed to search Iconify", Icons: []string{}})
		return
	}

	byPrefix := map[string][]string{}
	for _, full := range res.Icons {
		prefix, name, _ := strings.Cut(full, ":")
		byPrefix[prefix] = append(byPrefix[prefix], name)
	}
	writeCachedJSON(w, r, searchResponse{
		Icons:    lo.Ternary(res.Icons == nil, []string{}, res.Icons),
		Total:    res.Total,
		ByPrefix: byPrefix,
		Query:    query,
	})
}

type setSummary struct {
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Author   string `json:"author,omitempty"`
	License  string `json:"license,omitempty"`
	Category string `json:"category,omitempty"`
}

func summarize(prefix string, info iconify.CollectionInfo) setSummary {
	s := setSummary{Prefix: prefix, Name: info.Name, Total: info.Total, Category: info.Category}
	if info.Author != nil {
		s.Author = info.Author.Name
	}
	if info.License != nil {
		s.License = info.License.Title
	}
	return s
}

func (s *Server) handleSets(w http.ResponseWriter, r *http.Request) {
	collections, err := s.app.Iconify.Collections(r.Context())
	if err != nil {
		logUpstream(r, "collections", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Failed to fetch icon sets",
			"sets":    []setSummary{},
			"popular": []setSummary{},
		})
		return
	}

	popular := lo.FilterMap(icons.PopularSets, func(prefix string, _ int) (setSummary, bool) {
		info, ok := collections[prefix]
		if !ok {
			return setSummary{}, false
		}
		sum := summarize(prefix, info)
		sum.Category = ""
		return sum, true
	})

	filter := strings.ToLower(r.URL.Query().Get("filter"))
	sets := make([]setSummary, 0, len(collections))
	for prefix, info := range collections {
		if filter != "" &&
			!strings.Contains(strings.ToLower(prefix), filter) &&
			!strings.Contains(strings.ToLower(info.Name), filter) {
			continue
		}
		sets = append(sets, summarize(prefix, info))
	}
	sort.SliceStable(sets, func(i, j int) bool {
		a, b := strings.ToLower(sets[i].Name), strings.ToLower(sets[j].Name)
		if a != b {
			return a < b
		}
		return sets[i].Prefix < sets[j].Prefix
	})

	writeCachedJSON(w, r, map[string]any{
		"sets":    sets,
		"popular": popular,
		"total":   len(sets),
	})
}
