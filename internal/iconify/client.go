// Package iconify is a small client for the public Iconify API.
package iconify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/log"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("iconify: %s returned %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// IconData is one icon of a set lookup. Zero dimensions defer to the set.
type IconData struct {
	Body   string  `json:"body"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// IconSetData is the response of a batch lookup by prefix.
type IconSetData struct {
	Prefix string              `json:"prefix"`
	Width  float64             `json:"width,omitempty"`
	Height float64             `json:"height,omitempty"`
	Icons  map[string]IconData `json:"icons"`
}

// SearchResult is the response of a full-text search.
type SearchResult struct {
	Icons []string `json:"icons"`
	Total int      `json:"total"`
}

type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type License struct {
	Title string `json:"title"`
	SPDX  string `json:"spdx,omitempty"`
	URL   string `json:"url,omitempty"`
}

// CollectionInfo describes one icon set in the collections listing.
type CollectionInfo struct {
	Name     string   `json:"name"`
	Total    int      `json:"total"`
	Author   *Author  `json:"author,omitempty"`
	License  *License `json:"license,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Collection lists the icon names of one set.
type Collection struct {
	Prefix        string              `json:"prefix"`
	Total         int                 `json:"total"`
	Uncategorized []string            `json:"uncategorized,omitempty"`
	Categories    map[string][]string `json:"categories,omitempty"`
}

// Names returns uncategorized names followed by the names of every category.
// Categories are visited in key order; duplicates are kept.
func (c Collection) Names() []string {
	names := append([]string(nil), c.Uncategorized...)
	keys := make([]string, 0, len(c.Categories))
	for k := range c.Categories {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		names = append(names, c.Categories[k]...)
	}
	return names
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A nil httpClient uses the logging client
// from internal/log.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = log.NewHTTPClient(defaultTimeout)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Icons looks up names of the set prefix in one request.
func (c *Client) Icons(ctx context.Context, prefix string, names []string) (*IconSetData, error) {
	q := url.Values{}
	q.Set("icons", strings.Join(names, ","))
	var out IconSetData
	if err := c.get(ctx, "/"+url.PathEscape(prefix)+".json", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a full-text search across all sets.
func (c *Client) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))
	var out SearchResult
	if err := c.get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Collections lists every available icon set keyed by prefix.
func (c *Client) Collections(ctx context.Context) (map[string]CollectionInfo, error) {
	out := map[string]CollectionInfo{}
	if err := c.get(ctx, "/collections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Collection lists the icon names of prefix.
func (c *Client) Collection(ctx context.Context, prefix string) (*Collection, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	var out Collection
	if err := c.get(ctx, "/collection", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("iconify: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("iconify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: u, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("iconify: decode %s: %w", path, err)
	}
	return nil
}

// SVG wraps an icon body in a standalone SVG document. Missing dimensions
// fall back to the set defaults and then to 24.
func SVG(icon IconData, set *IconSetData) string {
	width := firstPositive(icon.Width, setDim(set, true), 24)
	height := firstPositive(icon.Height, setDim(set, false), 24)
	w := formatDim(width)
	h := formatDim(height)
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">%s</svg>`, w, h, w, h, icon.Body)
}

func setDim(set *IconSetData, width bool) float64 {
	if set == nil {
		return 0
	}
	if width {
		return set.Width
	}
	return set.Height
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
