package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/Adravilag/sagebox-lab/internal/licenses"
	"github.com/aymanbagabas/go-udiff"
	"github.com/samber/lo"
	"github.com/zeebo/xxh3"
)

const (
	ModuleFile  = "index.ts"
	IconsFile   = "icons.json"
	IndexFile   = "index.json"
	LicensesDir = "licenses"
)

// LicenseSummary reports the license files written by a build.
type LicenseSummary struct {
	Count int      `json:"count"`
	Sets  []string `json:"sets"`
	Path  string   `json:"path"`
}

// Result describes the outcome of a build.
type Result struct {
	Success     bool            `json:"success"`
	Skipped     bool            `json:"skipped,omitempty"`
	Message     string          `json:"message"`
	Count       int             `json:"count"`
	Path        string          `json:"path,omitempty"`
	Files       []string        `json:"files,omitempty"`
	Licenses    *LicenseSummary `json:"licenses,omitempty"`
	Fingerprint string          `json:"fingerprint,omitempty"`
}

// Writer writes the generated module into an output directory.
type Writer struct {
	outputDir string
	extractor icons.Extractor
	now       func() time.Time
}

type Option func(*Writer)

// WithClock fixes the timestamp embedded in the module header.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) { w.now = now }
}

// WithExtractor replaces the SVG metadata extractor.
func WithExtractor(e icons.Extractor) Option {
	return func(w *Writer) { w.extractor = e }
}

func NewWriter(outputDir string, opts ...Option) *Writer {
	w := &Writer{
		outputDir: outputDir,
		extractor: icons.RegexExtractor{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Preview renders the module without writing anything.
func (w *Writer) Preview(list []icons.Icon) (string, error) {
	return Render(list, w.now(), w.extractor)
}

// Build writes index.ts, icons.json, index.json and the license files for
// list. Without an output directory nothing is written and the result is
// marked as skipped.
func (w *Writer) Build(ctx context.Context, list []icons.Icon) (Result, error) {
	if w.outputDir == "" {
		slog.InfoContext(ctx, "No output path configured, skipping build")
		return Result{Skipped: true, Message: "No output path configured"}, nil
	}
	if len(list) == 0 {
		slog.InfoContext(ctx, "No icons in project, nothing to build")
		return Result{Success: true, Message: "No icons to build", Path: w.outputDir}, nil
	}

	module, err := w.Preview(list)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render icon module: %w", err)
	}

	names := lo.Map(list, func(icon icons.Icon, _ int) string { return icon.Name })
	contents := lo.SliceToMap(list, func(icon icons.Icon) (string, string) {
		return icon.Name, icon.Content
	})

	files := []string{
		filepath.Join(w.outputDir, ModuleFile),
		filepath.Join(w.outputDir, IconsFile),
		filepath.Join(w.outputDir, IndexFile),
	}
	if err := fsext.WriteFile(files[0], []byte(module)); err != nil {
		return Result{}, err
	}
	if err := fsext.WriteJSON(files[1], contents); err != nil {
		return Result{}, err
	}
	if err := fsext.WriteJSON(files[2], names); err != nil {
		return Result{}, err
	}

	summary, err := w.writeLicenses(names)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Success:     true,
		Message:     fmt.Sprintf("Built %d icons", len(list)),
		Count:       len(list),
		Path:        w.outputDir,
		Files:       files,
		Licenses:    summary,
		Fingerprint: Fingerprint(list),
	}
	slog.InfoContext(ctx, "Build completed", "count", res.Count, "path", res.Path, "fingerprint", res.Fingerprint)
	return res, nil
}

func (w *Writer) writeLicenses(names []string) (*LicenseSummary, error) {
	prefixes := licenses.Prefixes(names)
	dir := filepath.Join(w.outputDir, LicensesDir)

	if err := fsext.WriteFile(filepath.Join(dir, licenses.CombinedFileName), []byte(licenses.Combined(prefixes))); err != nil {
		return nil, err
	}
	individual := licenses.Individual(prefixes)
	for name, text := range individual {
		if err := fsext.WriteFile(filepath.Join(dir, name), []byte(text)); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if err := pruneLicenses(dir, entries, individual); err != nil {
		return nil, err
	}

	known := lo.Filter(prefixes, func(p string, _ int) bool {
		_, ok := licenses.Table[p]
		return ok
	})
	return &LicenseSummary{Count: len(known), Sets: known, Path: dir}, nil
}

// pruneLicenses removes the LICENSE-* entries not in keep. A concurrent
// build may have removed one already.
func pruneLicenses(dir string, entries []os.DirEntry, keep map[string]string) error {
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, licenses.FileName("")) {
			continue
		}
		if _, ok := keep[name]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale license %s: %w", name, err)
		}
	}
	return nil
}

// Diff renders a unified diff of the module currently on disk against the
// module that would be written for list.
func (w *Writer) Diff(list []icons.Icon) (string, error) {
	next, err := w.Preview(list)
	if err != nil {
		return "", err
	}
	path := filepath.Join(w.outputDir, ModuleFile)
	current, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Diff(ModuleFile, string(current), next), nil
}

// Diff returns a unified diff between two versions of file. Identical
// inputs produce an empty string.
func Diff(file, before, after string) string {
	return udiff.Unified("a/"+file, "b/"+file, before, after)
}

// Fingerprint hashes the names and contents of list, independent of the
// build timestamp.
func Fingerprint(list []icons.Icon) string {
	h := xxh3.New()
	for _, icon := range list {
		_, _ = h.WriteString(icon.Name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(icon.Content)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
