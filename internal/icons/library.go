package icons

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/sahilm/fuzzy"
)

// Icon is a library record. InProject is derived from the project
// membership when the library is read and is never persisted.
type Icon struct {
	Name      string `json:"name"`
	Content   string `json:"content"`
	InProject bool   `json:"inProject"`
}

type storedIcon struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Library is the shared icon store. Every mutation rewrites the whole file
// sorted by name.
type Library struct {
	path    string
	members *Membership

	mu sync.Mutex
}

func NewLibrary(path string, members *Membership) *Library {
	return &Library{path: path, members: members}
}

func (l *Library) Path() string {
	return l.path
}

func (l *Library) Membership() *Membership {
	return l.members
}

// SetMembership rebinds the library to another project.
func (l *Library) SetMembership(m *Membership) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.members = m
}

func (l *Library) membership() *Membership {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.members
}

// List returns every icon with InProject computed from the current
// membership. A missing or unreadable store reads as empty.
func (l *Library) List(ctx context.Context) []Icon {
	icons := readStore(ctx, l.path)
	members := l.membership().Names(ctx)
	for i := range icons {
		icons[i].InProject = members.Has(icons[i].Name)
	}
	return icons
}

func (l *Library) Get(ctx context.Context, name string) (Icon, error) {
	for _, icon := range l.List(ctx) {
		if icon.Name == name {
			return icon, nil
		}
	}
	return Icon{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Add validates and stores a new icon.
func (l *Library) Add(ctx context.Context, name, content string) error {
	if name == "" || content == "" {
		return fmt.Errorf("%w: name and content are required", ErrMissingField)
	}
	if !ValidName(name) {
		return ErrInvalidName
	}
	if !LooksLikeSVG(content) {
		return ErrInvalidContent
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	icons := readStore(ctx, l.path)
	if indexOf(icons, name) >= 0 {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}
	icons = append(icons, Icon{Name: name, Content: content})
	return writeStore(l.path, icons)
}

// AddMany appends icons whose names are not yet stored and returns how many
// were added. Nothing is written when all of them already exist.
func (l *Library) AddMany(ctx context.Context, batch []Icon) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	icons := readStore(ctx, l.path)
	seen := make(NameSet, len(icons))
	for _, icon := range icons {
		seen[icon.Name] = struct{}{}
	}
	added := 0
	for _, icon := range batch {
		if icon.Name == "" || seen.Has(icon.Name) {
			continue
		}
		seen[icon.Name] = struct{}{}
		icons = append(icons, Icon{Name: icon.Name, Content: icon.Content})
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := writeStore(l.path, icons); err != nil {
		return 0, err
	}
	return added, nil
}

// Update replaces the content of an existing icon.
func (l *Library) Update(ctx context.Context, name, content string) (Icon, error) {
	if name == "" {
		return Icon{}, fmt.Errorf("%w: icon name is required", ErrMissingField)
	}
	if content == "" {
		return Icon{}, fmt.Errorf("%w: icon content is required", ErrMissingField)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	icons := readStore(ctx, l.path)
	i := indexOf(icons, name)
	if i < 0 {
		return Icon{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	icons[i].Content = content
	if err := writeStore(l.path, icons); err != nil {
		return Icon{}, err
	}
	updated := icons[i]
	updated.InProject = l.members.Names(ctx).Has(name)
	return updated, nil
}

// Delete removes an icon and drops it from the project when it was a member.
func (l *Library) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: icon name is required", ErrMissingField)
	}

	l.mu.Lock()
	icons := readStore(ctx, l.path)
	i := indexOf(icons, name)
	if i < 0 {
		l.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	icons = slices.Delete(icons, i, i+1)
	err := writeStore(l.path, icons)
	members := l.members
	l.mu.Unlock()
	if err != nil {
		return err
	}

	if members.Names(ctx).Has(name) {
		if _, err := members.Remove(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// Rename moves an icon to newName. Project membership follows the icon.
func (l *Library) Rename(ctx context.Context, oldName, newName string) error {
	if oldName == "" || newName == "" {
		return fmt.Errorf("%w: both oldName and newName are required", ErrMissingField)
	}
	if !ValidName(newName) {
		return ErrInvalidName
	}

	l.mu.Lock()
	icons := readStore(ctx, l.path)
	i := indexOf(icons, oldName)
	if i < 0 {
		l.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotFound, oldName)
	}
	if indexOf(icons, newName) >= 0 {
		l.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrAlreadyExists, newName)
	}
	icons[i].Name = newName
	err := writeStore(l.path, icons)
	members := l.members
	l.mu.Unlock()
	if err != nil {
		return err
	}

	return members.Replace(ctx, oldName, newName)
}

// ExportProject returns the stored icons that are project members, in store
// order.
func (l *Library) ExportProject(ctx context.Context) []Icon {
	return slices.DeleteFunc(l.List(ctx), func(icon Icon) bool {
		return !icon.InProject
	})
}

type iconNames []Icon

func (n iconNames) String(i int) string { return n[i].Name }
func (n iconNames) Len() int            { return len(n) }

// Search fuzzy-matches query against icon names, best matches first. An
// empty query returns the library in store order. limit <= 0 means no limit.
func (l *Library) Search(ctx context.Context, query string, limit int) []Icon {
	icons := l.List(ctx)
	query = strings.TrimSpace(strings.ToLower(query))
	if query != "" {
		matches := fuzzy.FindFrom(query, iconNames(icons))
		found := make([]Icon, 0, len(matches))
		for _, m := range matches {
			found = append(found, icons[m.Index])
		}
		icons = found
	}
	if limit > 0 && len(icons) > limit {
		icons = icons[:limit]
	}
	return icons
}

func indexOf(icons []Icon, name string) int {
	return slices.IndexFunc(icons, func(icon Icon) bool { return icon.Name == name })
}

// readStore decodes the store file, accepting both the array format and the
// legacy object-of-definitions format.
func readStore(ctx context.Context, path string) []Icon {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Failed to read icon library", "path", path, "error", err)
		}
		return []Icon{}
	}
	icons, err := decodeStore(data)
	if err != nil {
		slog.WarnContext(ctx, "Ignoring unreadable icon library", "path", path, "error", err)
		return []Icon{}
	}
	return icons
}

func decodeStore(data []byte) ([]Icon, error) {
	var records []storedIcon
	arrErr := json.Unmarshal(data, &records)
	if arrErr == nil {
		icons := make([]Icon, 0, len(records))
		for _, r := range records {
			icons = append(icons, Icon{Name: r.Name, Content: r.Content})
		}
		return icons, nil
	}

	var legacy map[string]Definition
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, arrErr
	}
	names := make([]string, 0, len(legacy))
	for name := range legacy {
		names = append(names, name)
	}
	slices.Sort(names)
	icons := make([]Icon, 0, len(names))
	for _, name := range names {
		icons = append(icons, Icon{Name: name, Content: legacy[name].SVG()})
	}
	return icons, nil
}

func writeStore(path string, icons []Icon) error {
	records := make([]storedIcon, 0, len(icons))
	for _, icon := range icons {
		records = append(records, storedIcon{Name: icon.Name, Content: icon.Content})
	}
	slices.SortStableFunc(records, func(a, b storedIcon) int {
		return strings.Compare(a.Name, b.Name)
	})
	if err := fsext.WriteJSON(path, records); err != nil {
		return fmt.Errorf("failed to save icon library: %w", err)
	}
	return nil
}

// EnsureStore creates path with an empty array when it does not exist.
func EnsureStore(path string) error {
	if fsext.Exists(path) {
		return nil
	}
	return fsext.WriteFile(path, []byte("[]"))
}
