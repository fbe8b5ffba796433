// Package server exposes the icon library over HTTP and serves the pre-built
// tool front-ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/app"
	"github.com/Adravilag/sagebox-lab/internal/tools"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	maxBodyBytes      = 8 << 20
)

// Server hosts one tool. The icon API is only mounted when the tool needs
// it and an App is available.
type Server struct {
	app     *app.App
	tool    tools.Tool
	distDir string
}

func New(tool tools.Tool, a *app.App, distDir string) *Server {
	return &Server{app: a, tool: tool, distDir: distDir}
}

// Handler builds the routed, wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.tool.API && s.app != nil {
		s.registerAPI(mux)
	}
	mux.Handle("/", s.static())
	return Chain(mux, RequestID(), Recoverer(), AccessLog())
}

func (s *Server) registerAPI(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/icons", s.handleListIcons)
	mux.HandleFunc("POST /api/icons", s.handleCreateIcon)
	mux.HandleFunc("PUT /api/icons/rename", s.handleRenameIcon)
	mux.HandleFunc("GET /api/icons/{name}", s.handleGetIcon)
	mux.HandleFunc("PUT /api/icons/{name}", s.handleUpdateIcon)
	mux.HandleFunc("DELETE /api/icons/{name}", s.handleDeleteIcon)
	mux.HandleFunc("GET /api/icons/{name}/preview.png", s.handlePreview)
	mux.HandleFunc("GET /api/categories", s.handleCategories)

	mux.HandleFunc("GET /api/project", s.handleGetProject)
	mux.HandleFunc("POST /api/project", s.handleAddToProject)
	mux.HandleFunc("DELETE /api/project", s.handleRemoveFromProject)
	mux.HandleFunc("GET /api/project/export", s.handleExportProject)
	mux.HandleFunc("GET /api/project/build", s.handleBuildPreview)
	mux.HandleFunc("POST /api/project/build", s.handleBuild)

	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)

	mux.HandleFunc("POST /api/import", s.handleImportCollection)
	mux.HandleFunc("POST /api/import-icons", s.handleImportIcons)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/sets", s.handleSets)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	slog.Info("Serving tool", "tool", s.tool.Name, "addr", addr, "dist", s.distDir)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
