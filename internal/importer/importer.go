// Package importer adds icons to the library from the Iconify API or from
// SVG files on disk.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/Adravilag/sagebox-lab/internal/iconify"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// BatchSize is the number of icons requested per lookup.
	BatchSize = 20

	DefaultCollectionLimit = 50
	MaxCollectionLimit     = 500
)

var (
	ErrNoIcons    = errors.New("icons array is required")
	ErrNoPrefix   = errors.New("icon set prefix is required")
	ErrUnknownSet = errors.New("unknown icon set")
	ErrUpstream   = errors.New("failed to fetch icon collection from Iconify")
	ErrNoMatches  = errors.New("no icons found matching your criteria")
)

// Store is the part of the icon library the importer writes to.
type Store interface {
	List(ctx context.Context) []icons.Icon
	AddMany(ctx context.Context, batch []icons.Icon) (int, error)
}

// Remote is the part of the Iconify client the importer reads from.
type Remote interface {
	Icons(ctx context.Context, prefix string, names []string) (*iconify.IconSetData, error)
	Collection(ctx context.Context, prefix string) (*iconify.Collection, error)
}

type Importer struct {
	store  Store
	remote Remote
}

func New(store Store, remote Remote) *Importer {
	return &Importer{store: store, remote: remote}
}

type group struct {
	prefix string
	names  []string
}

// groupByPrefix splits prefix:name references by prefix, keeping the order in
// which prefixes first appear. Malformed references are dropped.
func groupByPrefix(refs []string) []group {
	var groups []group
	index := map[string]int{}
	for _, ref := range refs {
		parts := strings.Split(ref, ":")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		prefix, name := parts[0], parts[1]
		i, ok := index[prefix]
		if !ok {
			i = len(groups)
			index[prefix] = i
			groups = append(groups, group{prefix: prefix})
		}
		groups[i].names = append(groups[i].names, name)
	}
	return groups
}

// ImportNames resolves prefix:name references and stores the icons that are
// not in the library yet. Failed lookups and icons missing from a response
// are skipped. It returns how many icons were added.
func (im *Importer) ImportNames(ctx context.Context, refs []string) (int, error) {
	if len(refs) == 0 {
		return 0, ErrNoIcons
	}
	existing := icons.NewNameSet(lo.Map(im.store.List(ctx), func(i icons.Icon, _ int) string { return i.Name })...)

	var fetched []icons.Icon
	for _, g := range groupByPrefix(refs) {
		fetched = append(fetched, im.fetch(ctx, g.prefix, g.names, existing)...)
	}
	if len(fetched) == 0 {
		return 0, nil
	}
	return im.store.AddMany(ctx, fetched)
}

// ImportCollection imports up to limit icons of a known set whose names
// contain any of the search terms. An empty search selects every icon.
func (im *Importer) ImportCollection(ctx context.Context, prefix string, search []string, limit int) (int, error) {
	if prefix == "" {
		return 0, ErrNoPrefix
	}
	if _, ok := icons.LookupSet(prefix); !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSet, prefix)
	}
	collection, err := im.remote.Collection(ctx, prefix)
	if err != nil {
		slog.WarnContext(ctx, "Failed to fetch icon collection", "prefix", prefix, "error", err)
		return 0, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	names := SelectNames(collection.Names(), search, limit)
	if len(names) == 0 {
		return 0, ErrNoMatches
	}

	existing := icons.NewNameSet(lo.Map(im.store.List(ctx), func(i icons.Icon, _ int) string { return i.Name })...)
	fetched := im.fetch(ctx, prefix, names, existing)
	if len(fetched) == 0 {
		return 0, nil
	}
	return im.store.AddMany(ctx, fetched)
}

// SelectNames deduplicates names, keeps those containing any term
// (case-insensitive) and caps the result at min(limit, 500). A limit <= 0
// uses the default of 50.
func SelectNames(names, terms []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultCollectionLimit
	}
	limit = min(limit, MaxCollectionLimit)

	names = lo.Uniq(names)
	terms = lo.FilterMap(terms, func(t string, _ int) (string, bool) {
		t = strings.ToLower(strings.TrimSpace(t))
		return t, t != ""
	})
	if len(terms) > 0 {
		names = lo.Filter(names, func(name string, _ int) bool {
			lower := strings.ToLower(name)
			return lo.SomeBy(terms, func(t string) bool { return strings.Contains(lower, t) })
		})
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// fetch looks names up in batches and returns the icons not in existing.
func (im *Importer) fetch(ctx context.Context, prefix string, names []string, existing icons.NameSet) []icons.Icon {
	var out []icons.Icon
	for _, batch := range lo.Chunk(names, BatchSize) {
		data, err := im.remote.Icons(ctx, prefix, batch)
		if err != nil {
			slog.WarnContext(ctx, "Failed to fetch icons", "prefix", prefix, "count", len(batch), "error", err)
			continue
		}
		for _, name := range batch {
			fullName := prefix + ":" + name
			if existing.Has(fullName) {
				continue
			}
			icon, ok := data.Icons[name]
			if !ok {
				continue
			}
			existing[fullName] = struct{}{}
			out = append(out, icons.Icon{Name: fullName, Content: iconify.SVG(icon, data)})
		}
	}
	return out
}

// FileReport summarises a local import.
type FileReport struct {
	Matched int      `json:"matched"`
	Added   int      `json:"added"`
	Skipped []string `json:"skipped,omitempty"`
}

// ImportFiles stores the SVG files under root matching pattern. Each icon is
// named after its kebab-cased base name, namespaced by prefix when given.
func (im *Importer) ImportFiles(ctx context.Context, root, pattern, prefix string) (FileReport, error) {
	paths, err := fsext.Glob(root, pattern)
	if err != nil {
		return FileReport{}, err
	}
	report := FileReport{Matched: len(paths)}

	var batch []icons.Icon
	for _, path := range paths {
		icon, err := readSVGFile(path, prefix)
		if err != nil {
			slog.WarnContext(ctx, "Skipping file", "path", path, "error", err)
			report.Skipped = append(report.Skipped, path)
			continue
		}
		batch = append(batch, icon)
	}
	if len(batch) == 0 {
		return report, nil
	}
	added, err := im.store.AddMany(ctx, batch)
	if err != nil {
		return report, err
	}
	report.Added = added
	return report, nil
}

func readSVGFile(path, prefix string) (icons.Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return icons.Icon{}, err
	}
	if mt := mimetype.Detect(data); !mt.Is("image/svg+xml") {
		return icons.Icon{}, fmt.Errorf("not an SVG document (%s)", mt.String())
	}
	content := string(data)
	// Drop any XML prolog, doctype or leading comment.
	if i := strings.Index(content, "<svg"); i > 0 {
		content = content[i:]
	}
	content = strings.TrimSpace(content)
	if !icons.LooksLikeSVG(content) {
		return icons.Icon{}, icons.ErrInvalidContent
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := icons.ToKebabCase(foldAccents(base))
	if prefix != "" {
		name = prefix + ":" + name
	}
	if !icons.ValidName(name) {
		return icons.Icon{}, fmt.Errorf("%w: %q", icons.ErrInvalidName, name)
	}
	return icons.Icon{Name: name, Content: content}, nil
}

// foldAccents strips combining marks so "Ícono" names as "icono".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
