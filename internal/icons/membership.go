package icons

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
	"github.com/samber/lo"
)

// NameSet is a set of icon names.
type NameSet map[string]struct{}

func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s NameSet) Sorted() []string {
	names := lo.Keys(s)
	slices.Sort(names)
	return names
}

// Membership is the project's selection of library icons, persisted as a
// sorted JSON array of names. Names are not checked against the library.
type Membership struct {
	path string

	mu       sync.Mutex
	onChange func(ctx context.Context)
}

func NewMembership(path string) *Membership {
	return &Membership{path: path}
}

func (m *Membership) Path() string {
	return m.path
}

// OnChange registers fn to run after every successful write.
func (m *Membership) OnChange(fn func(ctx context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Names reads the current set. A missing or unreadable file yields an empty
// set.
func (m *Membership) Names(ctx context.Context) NameSet {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Failed to read project icons", "path", m.path, "error", err)
		}
		return NameSet{}
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		slog.WarnContext(ctx, "Ignoring invalid project icons file", "path", m.path, "error", err)
		return NameSet{}
	}
	return NewNameSet(names...)
}

// Add unions names into the set and returns the resulting size.
func (m *Membership) Add(ctx context.Context, names ...string) (int, error) {
	return m.update(ctx, func(set NameSet) {
		for _, n := range names {
			set[n] = struct{}{}
		}
	})
}

// Remove deletes names from the set and returns the resulting size.
func (m *Membership) Remove(ctx context.Context, names ...string) (int, error) {
	return m.update(ctx, func(set NameSet) {
		for _, n := range names {
			delete(set, n)
		}
	})
}

// Replace swaps oldName for newName in a single write. It is a no-op when
// oldName is not a member.
func (m *Membership) Replace(ctx context.Context, oldName, newName string) error {
	if !m.Names(ctx).Has(oldName) {
		return nil
	}
	_, err := m.update(ctx, func(set NameSet) {
		delete(set, oldName)
		set[newName] = struct{}{}
	})
	return err
}

func (m *Membership) update(ctx context.Context, mutate func(NameSet)) (int, error) {
	m.mu.Lock()
	set := m.Names(ctx)
	mutate(set)
	err := fsext.WriteJSON(m.path, set.Sorted())
	onChange := m.onChange
	m.mu.Unlock()

	if err != nil {
		return 0, fmt.Errorf("failed to save project icons: %w", err)
	}
	if onChange != nil {
		onChange(ctx)
	}
	return len(set), nil
}
