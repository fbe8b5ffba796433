package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Adravilag/sagebox-lab/internal/iconify"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	exitVal := m.Run()
	os.Exit(exitVal)
}

type fakeRemote struct {
	mu         sync.Mutex
	calls      [][]string
	failPrefix string
	failBatch  int
	missing    map[string]bool
	collection *iconify.Collection
	collErr    error
}

func (f *fakeRemote) Icons(_ context.Context, prefix string, names []string) (*iconify.IconSetData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{prefix}, names...))
	if prefix == f.failPrefix {
		return nil, errors.New("boom")
	}
	if f.failBatch > 0 && len(f.calls) == f.failBatch {
		return nil, &iconify.StatusError{StatusCode: 500}
	}
	data := &iconify.IconSetData{Prefix: prefix, Width: 24, Height: 24, Icons: map[string]iconify.IconData{}}
	for _, n := range names {
		if f.missing[n] {
			continue
		}
		data.Icons[n] = iconify.IconData{Body: "<path d=\"" + n + "\"/>"}
	}
	return data, nil
}

func (f *fakeRemote) Collection(context.Context, string) (*iconify.Collection, error) {
	if f.collErr != nil {
		return nil, f.collErr
	}
	return f.collection, nil
}

func newLibrary(t *testing.T) *icons.Library {
	t.Helper()
	dir := t.TempDir()
	return icons.NewLibrary(filepath.Join(dir, "icons.json"), icons.NewMembership(filepath.Join(dir, "project-icons.json")))
}

func TestGroupByPrefix(t *testing.T) {
	t.Parallel()

	got := groupByPrefix([]string{"mdi:a", "lucide:b", "bad", ":x", "y:", "mdi:c", "a:b:c"})
	require.Equal(t, []group{
		{prefix: "mdi", names: []string{"a", "c"}},
		{prefix: "lucide", names: []string{"b"}},
		{prefix: "a", names: []string{"b"}},
	}, got)
}

func TestImportNames(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	lib := newLibrary(t)
	require.NoError(t, lib.Add(ctx, "mdi:home", "<svg>mine</svg>"))

	remote := &fakeRemote{missing: map[string]bool{"ghost": true}}
	im := New(lib, remote)

	n, err := im.ImportNames(ctx, []string{"mdi:home", "mdi:star", "mdi:ghost", "lucide:x", "broken"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	home, err := lib.Get(ctx, "mdi:home")
	require.NoError(t, err)
	require.Equal(t, "<svg>mine</svg>", home.Content, "existing icons are never overwritten")

	star, err := lib.Get(ctx, "mdi:star")
	require.NoError(t, err)
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><path d="star"/></svg>`, star.Content)

	_, err = im.ImportNames(ctx, nil)
	require.ErrorIs(t, err, ErrNoIcons)
}

func TestImportNamesBatches(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	lib := newLibrary(t)

	var refs []string
	for i := range 45 {
		refs = append(refs, "mdi:i"+string(rune('a'+i%26))+string(rune('a'+i/26)))
	}
	remote := &fakeRemote{failBatch: 2}
	n, err := New(lib, remote).ImportNames(ctx, refs)
	require.NoError(t, err)

	require.Len(t, remote.calls, 3)
	require.Len(t, remote.calls[0], 1+BatchSize)
	require.Len(t, remote.calls[1], 1+BatchSize)
	require.Len(t, remote.calls[2], 1+5)
	require.Equal(t, 25, n, "the failed batch is skipped")
}

func TestImportNamesFailedPrefixIsSkipped(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	lib := newLibrary(t)

	n, err := New(lib, &fakeRemote{failPrefix: "bad"}).ImportNames(ctx, []string{"bad:a", "ok:b"})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Len(t, lib.List(ctx), 1)
}

func TestImportCollection(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("unknown set", func(t *testing.T) {
		_, err := New(newLibrary(t), &fakeRemote{}).ImportCollection(ctx, "nope", nil, 0)
		require.ErrorIs(t, err, ErrUnknownSet)
		_, err = New(newLibrary(t), &fakeRemote{}).ImportCollection(ctx, "", nil, 0)
		require.ErrorIs(t, err, ErrNoPrefix)
	})

	t.Run("upstream failure", func(t *testing.T) {
		_, err := New(newLibrary(t), &fakeRemote{collErr: errors.New("down")}).ImportCollection(ctx, "tabler", nil, 0)
		require.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("no matches", func(t *testing.T) {
		remote := &fakeRemote{collection: &iconify.Collection{Uncategorized: []string{"home"}}}
		_, err := New(newLibrary(t), remote).ImportCollection(ctx, "tabler", []string{"zzz"}, 0)
		require.ErrorIs(t, err, ErrNoMatches)
	})

	t.Run("filters and imports", func(t *testing.T) {
		lib := newLibrary(t)
		remote := &fakeRemote{collection: &iconify.Collection{
			Uncategorized: []string{"arrow-left", "home"},
			Categories:    map[string][]string{"Arrows": {"Arrow-Up", "arrow-left"}},
		}}
		n, err := New(lib, remote).ImportCollection(ctx, "tabler", []string{"ARROW"}, 10)
		require.NoError(t, err)
		require.Equal(t, 2, n)
		_, err = lib.Get(ctx, "tabler:arrow-left")
		require.NoError(t, err)
		_, err = lib.Get(ctx, "tabler:Arrow-Up")
		require.NoError(t, err)
	})
}

func TestSelectNames(t *testing.T) {
	t.Parallel()

	many := make([]string, 0, 600)
	for i := range 600 {
		many = append(many, string(rune('a'+i%26))+string(rune('a'+(i/26)%26)))
	}
	require.Len(t, SelectNames(many, nil, 0), DefaultCollectionLimit)
	require.Len(t, SelectNames(many, nil, 10000), MaxCollectionLimit)
	require.Equal(t, []string{"a", "b"}, SelectNames([]string{"a", "b", "a"}, nil, 5))
	require.Equal(t, []string{"Home", "homeX"}, SelectNames([]string{"Home", "star", "homeX"}, []string{"  ", "home"}, 5))
}

func TestImportFiles(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	root := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	write("arrowLeft.svg", `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M1"/></svg>`)
	write("sub/my_icon.svg", `<svg xmlns="http://www.w3.org/2000/svg"><path d="M2"/></svg>`)
	write("fake.svg", `hello world`)
	write("readme.txt", `<svg xmlns="http://www.w3.org/2000/svg"/>`)

	lib := newLibrary(t)
	report, err := New(lib, &fakeRemote{}).ImportFiles(ctx, root, "**/*.svg", "brand")
	require.NoError(t, err)
	require.Equal(t, 3, report.Matched)
	require.Equal(t, 2, report.Added)
	require.Len(t, report.Skipped, 1)

	icon, err := lib.Get(ctx, "brand:arrow-left")
	require.NoError(t, err)
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M1"/></svg>`, icon.Content)
	_, err = lib.Get(ctx, "brand:my-icon")
	require.NoError(t, err)

	report, err = New(lib, &fakeRemote{}).ImportFiles(ctx, root, "**/*.svg", "brand")
	require.NoError(t, err)
	require.Zero(t, report.Added)
}

func TestImportFilesFoldsAccents(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "ÍconoCafé.svg"),
		[]byte(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M3"/></svg>`), 0o644))

	lib := newLibrary(t)
	report, err := New(lib, &fakeRemote{}).ImportFiles(ctx, root, "**/*.svg", "brand")
	require.NoError(t, err)
	require.Equal(t, 1, report.Added)

	_, err = lib.Get(ctx, "brand:icono-cafe")
	require.NoError(t, err)
}

func TestFoldAccents(t *testing.T) {
	t.Parallel()

	require.Equal(t, "IconoCafe", foldAccents("ÍconoCafé"))
	require.Equal(t, "arrow_left", foldAccents("arrow_left"))
	require.Equal(t, "naive", foldAccents("naïve"))
}
