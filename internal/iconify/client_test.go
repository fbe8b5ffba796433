package iconify

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestClient_Icons(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lucide.json", r.URL.Path)
		assert.Equal(t, "home,star", r.URL.Query().Get("icons"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prefix":"lucide","width":24,"height":24,"icons":{"home":{"body":"<path d=\"M1\"/>"},"star":{"body":"<g/>","width":32}}}`))
	})

	data, err := c.Icons(t.Context(), "lucide", []string{"home", "star"})
	require.NoError(t, err)
	require.Equal(t, float64(24), data.Width)
	require.Len(t, data.Icons, 2)
	require.Equal(t, `<path d="M1"/>`, data.Icons["home"].Body)
	require.Equal(t, float64(32), data.Icons["star"].Width)
}

func TestClient_StatusError(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	_, err := c.Icons(t.Context(), "nope", []string{"x"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.Search(t.Context(), "home", 10)
	require.Error(t, err)
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "arrow left", r.URL.Query().Get("query"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"icons":["mdi:arrow-left","lucide:arrow-left"],"total":2}`))
	})

	res, err := c.Search(t.Context(), "arrow left", 20)
	require.NoError(t, err)
	require.Equal(t, 2, res.Total)
	require.Equal(t, []string{"mdi:arrow-left", "lucide:arrow-left"}, res.Icons)
}

func TestClient_Collections(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections", r.URL.Path)
		w.Write([]byte(`{"mdi":{"name":"Material Design Icons","total":7000,"author":{"name":"Pictogrammers"},"license":{"title":"Apache 2.0"},"category":"General"}}`))
	})

	res, err := c.Collections(t.Context())
	require.NoError(t, err)
	require.Equal(t, "Material Design Icons", res["mdi"].Name)
	require.Equal(t, "Pictogrammers", res["mdi"].Author.Name)
	require.Equal(t, "Apache 2.0", res["mdi"].License.Title)
}

func TestClient_Collection(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collection", r.URL.Path)
		assert.Equal(t, "tabler", r.URL.Query().Get("prefix"))
		w.Write([]byte(`{"prefix":"tabler","uncategorized":["a","b"],"categories":{"Z":["c","a"],"A":["d"]}}`))
	})

	res, err := c.Collection(t.Context(), "tabler")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "d", "c", "a"}, res.Names())
}

func TestSVG(t *testing.T) {
	t.Parallel()

	set := &IconSetData{Width: 16, Height: 16}
	require.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16"><g/></svg>`,
		SVG(IconData{Body: "<g/>"}, set),
	)
	require.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="20.5" height="16" viewBox="0 0 20.5 16"><g/></svg>`,
		SVG(IconData{Body: "<g/>", Width: 20.5}, set),
	)
	require.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><g/></svg>`,
		SVG(IconData{Body: "<g/>"}, nil),
	)
}
