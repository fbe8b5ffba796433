package fsext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	getenv := func(k string) string {
		return map[string]string{"HOME": "/home/dev", "WS": "/work"}[k]
	}

	got, err := Expand("~/icons", getenv)
	require.NoError(t, err)
	require.Equal(t, "/home/dev/icons", got)

	got, err = Expand("$WS/src/icons", getenv)
	require.NoError(t, err)
	require.Equal(t, "/work/src/icons", got)

	got, err = Expand("", getenv)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "icons.json")

	require.NoError(t, WriteFile(path, []byte("[]")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))

	require.NoError(t, WriteFile(path, []byte(`["a"]`)))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `["a"]`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	require.True(t, Exists(path))
	require.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestGlob(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"home.svg",
		"arrows/arrow-left.svg",
		"arrows/deep/arrow-up.svg",
		"notes.txt",
		"node_modules/pkg/skip.svg",
		".hidden/skip.svg",
		"ignored/skip.svg",
	}
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("<svg/>"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFile), []byte("ignored/\n"), 0o644))

	got, err := Glob(root, "**/*.svg")
	require.NoError(t, err)

	var rel []string
	for _, p := range got {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	require.Equal(t, []string{
		"arrows/arrow-left.svg",
		"arrows/deep/arrow-up.svg",
		"home.svg",
	}, rel)
}

func TestGlobInvalidPattern(t *testing.T) {
	_, err := Glob(t.TempDir(), "[")
	require.Error(t, err)
}

func TestMarshalIndentKeepsMarkup(t *testing.T) {
	data, err := MarshalIndent([]map[string]string{{"content": `<svg a="b">&</svg>`}})
	require.NoError(t, err)
	require.Equal(t, "[\n  {\n    \"content\": \"<svg a=\\\"b\\\">&</svg>\"\n  }\n]", string(data))
}
