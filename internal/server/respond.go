package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/zeebo/xxh3"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := fsext.MarshalIndent(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		http.Error(w, `{"error":"Failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeFailure reports an unexpected error with its text in details.
func writeFailure(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, "error", err, "request_id", RequestIDFrom(r.Context()))
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: msg, Details: err.Error()})
}

// etag hashes an encoded body.
func etag(data []byte) string {
	return fmt.Sprintf(`"%016x"`, xxh3.Hash(data))
}

// writeCachedJSON is writeJSON for GET responses. A matching If-None-Match
// yields 304 with no body.
func writeCachedJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := fsext.MarshalIndent(v)
	if err != nil {
		writeFailure(w, r, "Failed to encode response", err)
		return
	}
	tag := etag(data)
	w.Header().Set("ETag", tag)
	w.Header().Set("Cache-Control", "no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && match == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

var errBadJSON = errors.New("invalid JSON body")

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errBadJSON, err)
	}
	return nil
}

func logUpstream(r *http.Request, op string, err error) {
	slog.WarnContext(r.Context(), "Iconify request failed", "op", op, "error", err, "request_id", RequestIDFrom(r.Context()))
}
