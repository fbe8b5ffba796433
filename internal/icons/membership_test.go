package icons

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMembership_MissingOrInvalidIsEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	ctx := t.Context()

	m := NewMembership(filepath.Join(dir, "project-icons.json"))
	require.Empty(t, m.Names(ctx))

	for _, content := range []string{"{not json", `{"a": 1}`, `"home"`, `[1, 2]`} {
		require.NoError(t, os.WriteFile(m.Path(), []byte(content), 0o644))
		require.NotNil(t, m.Names(ctx))
		require.Empty(t, m.Names(ctx), content)
	}
}

func TestMembership_AddRemove(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	m := NewMembership(filepath.Join(t.TempDir(), "nested", "project-icons.json"))

	calls := 0
	m.OnChange(func(context.Context) { calls++ })

	n, err := m.Add(ctx, "b", "a", "b")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = m.Add(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 2, n, "adding is idempotent")

	data, err := os.ReadFile(m.Path())
	require.NoError(t, err)
	require.Equal(t, "[\n  \"a\",\n  \"b\"\n]", string(data))

	n, err = m.Remove(ctx, "a", "missing")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []string{"b"}, m.Names(ctx).Sorted())
	require.Equal(t, 3, calls)
}

func TestMembership_Replace(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	m := NewMembership(filepath.Join(t.TempDir(), "project-icons.json"))

	require.NoError(t, m.Replace(ctx, "old", "new"))
	require.NoFileExists(t, m.Path())

	_, err := m.Add(ctx, "old", "other")
	require.NoError(t, err)
	require.NoError(t, m.Replace(ctx, "old", "new"))
	require.Equal(t, []string{"new", "other"}, m.Names(ctx).Sorted())
}
