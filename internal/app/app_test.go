package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/config"
	"github.com/Adravilag/sagebox-lab/internal/env"
	"github.com/Adravilag/sagebox-lab/internal/generate"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

func newTestApp(t *testing.T, extra map[string]string) (*App, string) {
	t.Helper()

	home := t.TempDir()
	work := t.TempDir()
	m := map[string]string{
		"HOME":            home,
		"XDG_CONFIG_HOME": filepath.Join(home, ".config"),
		"APPDATA":         filepath.Join(home, "AppData", "Roaming"),
	}
	for k, v := range extra {
		m[k] = v
	}
	cfg, err := config.Load(work, env.NewFromMap(m))
	require.NoError(t, err)

	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	a, err := New(t.Context(), cfg, WithWriterOptions(generate.WithClock(func() time.Time { return fixed })))
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a, work
}

func TestNewCreatesEmptyStore(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	data, err := os.ReadFile(a.Library.Path())
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
	require.Empty(t, a.Library.List(t.Context()))
}

func TestMembershipChangeRebuilds(t *testing.T) {
	t.Parallel()

	a, work := newTestApp(t, nil)
	ctx := t.Context()
	out := filepath.Join(work, "out")
	require.NoError(t, a.SetOutputPath(ctx, out))

	require.NoError(t, a.Library.Add(ctx, "lucide:home", square))
	n, err := a.Membership().Add(ctx, "lucide:home")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	module, err := os.ReadFile(filepath.Join(out, generate.ModuleFile))
	require.NoError(t, err)
	require.Contains(t, string(module), "'home': {")
	require.FileExists(t, filepath.Join(out, generate.LicensesDir, "LICENSES.md"))

	list := a.Library.List(ctx)
	require.Len(t, list, 1)
	require.True(t, list[0].InProject)
}

func TestRebuildWithoutOutputIsSkipped(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, nil)
	res, err := a.Rebuild(t.Context())
	require.NoError(t, err)
	require.True(t, res.Skipped)
}

func TestSetOutputPathRebinds(t *testing.T) {
	t.Parallel()

	a, work := newTestApp(t, nil)
	ctx := t.Context()

	first := filepath.Join(work, "one")
	second := filepath.Join(work, "two")
	require.NoError(t, a.SetOutputPath(ctx, first))
	require.Equal(t, filepath.Join(first, "project-icons.json"), a.Membership().Path())

	require.NoError(t, a.SetOutputPath(ctx, second))
	require.Equal(t, second, a.Writer().OutputDir())
	require.Equal(t, filepath.Join(second, "project-icons.json"), a.Membership().Path())
	require.Same(t, a.Membership(), a.Library.Membership())
}

func TestWorkspaceOutputAndOverride(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	a, work := newTestApp(t, map[string]string{"WORKSPACE_PATH": ws})
	ctx := t.Context()
	require.Equal(t, filepath.Join(ws, "src", "icons"), a.Writer().OutputDir())
	require.Equal(t, filepath.Join(ws, "src", "icons", "project-icons.json"), a.Membership().Path())
	require.False(t, a.Info().IsVSCodeExtension)

	out := filepath.Join(work, "explicit")
	require.NoError(t, a.SetOutputPath(ctx, out))
	require.Equal(t, out, a.Writer().OutputDir())
	require.Equal(t, out, a.Info().IconsPath)
}

func TestInfo(t *testing.T) {
	t.Parallel()

	ws := t.TempDir()
	iconsFile := filepath.Join(ws, "src", "icons", "icons.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(iconsFile), 0o755))
	require.NoError(t, os.WriteFile(iconsFile, []byte("[]"), 0o644))

	a, _ := newTestApp(t, map[string]string{
		"ICONS_PATH":     iconsFile,
		"WORKSPACE_PATH": ws,
	})

	info := a.Info()
	require.Equal(t, "src/icons", info.IconsPath)
	require.True(t, info.IsVSCodeExtension)
	require.Equal(t, iconsFile, info.FullIconsPath)
	require.Equal(t, iconsFile, info.LibraryIconsPath)
	require.Equal(t, filepath.Join(ws, "src", "icons"), info.OutputPath)
	require.Equal(t, a.Config.LibraryDir(), info.LibraryPath)
}

func TestWatchRebuildsOnExternalEdit(t *testing.T) {
	t.Parallel()

	a, work := newTestApp(t, nil)
	ctx := t.Context()
	out := filepath.Join(work, "out")
	require.NoError(t, a.SetOutputPath(ctx, out))
	require.NoError(t, a.Library.Add(ctx, "mdi:star", square))

	a.Watch(ctx)
	time.Sleep(100 * time.Millisecond)

	members := filepath.Join(out, "project-icons.json")
	require.NoError(t, os.WriteFile(members, []byte(`["mdi:star"]`), 0o644))

	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, generate.ModuleFile))
		return err == nil
	}, 3*time.Second, 20*time.Millisecond)
}
