package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
)

// maxLoggedBody caps how much of a body ends up in a debug record; Iconify
// collection payloads run into megabytes.
const maxLoggedBody = 4096

// sensitiveHeaderParts are matched case-insensitively against header names.
var sensitiveHeaderParts = []string{"authorization", "api-key", "token", "cookie", "secret"}

// NewHTTPClient creates an HTTP client with the given timeout. Upstream
// exchanges are logged when the default logger has debug enabled.
func NewHTTPClient(timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		client.Transport = &HTTPRoundTripLogger{Transport: http.DefaultTransport}
	}
	return client
}

// HTTPRoundTripLogger logs each upstream exchange as one debug record.
// Failures are logged at error level.
type HTTPRoundTripLogger struct {
	Transport http.RoundTripper
}

func (h *HTTPRoundTripLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody, err := snapshotBody(&req.Body)
	if err != nil {
		slog.Error("Upstream request body unreadable", "method", req.Method, "host", req.URL.Host, "error", err)
		return nil, err
	}
	request := slog.Group("request",
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"query", req.URL.RawQuery,
		"body", describeBody(reqBody, req.Header.Get("Content-Type")),
	)

	start := time.Now()
	resp, err := h.Transport.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		slog.Error("Upstream request failed", request, "duration_ms", elapsed.Milliseconds(), "error", err)
		return resp, err
	}

	respBody, err := snapshotBody(&resp.Body)
	slog.Debug("Upstream exchange",
		request,
		slog.Group("response",
			"status", resp.StatusCode,
			"headers", formatHeaders(resp.Header),
			"body", describeBody(respBody, resp.Header.Get("Content-Type")),
		),
		"duration_ms", elapsed.Milliseconds(),
	)
	return resp, err
}

// snapshotBody reads *body fully and puts back an equivalent reader.
func snapshotBody(body *io.ReadCloser) ([]byte, error) {
	if *body == nil || *body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(*body)
	closeErr := (*body).Close()
	*body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return data, closeErr
}

// describeBody renders text payloads, compacting JSON and truncating at
// maxLoggedBody. Binary payloads are summarised by size.
func describeBody(data []byte, contentType string) string {
	if len(data) == 0 {
		return ""
	}
	if !isTextual(contentType) {
		return fmt.Sprintf("<%d bytes %s>", len(data), contentType)
	}
	if len(data) > maxLoggedBody {
		return string(data[:maxLoggedBody]) + "...(truncated)"
	}
	var b bytes.Buffer
	if json.Compact(&b, bytes.TrimSpace(data)) != nil {
		return string(data)
	}
	return b.String()
}

func isTextual(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") ||
		strings.HasSuffix(mediaType, "json") ||
		strings.HasSuffix(mediaType, "+xml") ||
		mediaType == "application/xml"
}

// formatHeaders flattens headers for logging with credential-bearing values
// redacted.
func formatHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for key, values := range headers {
		lower := strings.ToLower(key)
		if lo.ContainsBy(sensitiveHeaderParts, func(part string) bool { return strings.Contains(lower, part) }) {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = strings.Join(values, ", ")
	}
	return out
}
