package icons

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Adravilag/sagebox-lab/internal/fsext"
)

// MigrateLegacy moves icons from a per-project store into the library file
// at libraryPath. It only runs while libraryPath does not exist. The first
// legacy file found is merged (library entries win on name clashes) and
// removed; later candidates are left alone.
func MigrateLegacy(ctx context.Context, libraryPath string, legacyPaths []string) (int, error) {
	if fsext.Exists(libraryPath) {
		return 0, nil
	}
	for _, oldPath := range legacyPaths {
		data, err := os.ReadFile(oldPath)
		if err != nil {
			continue
		}
		var oldIcons []storedIcon
		if err := json.Unmarshal(data, &oldIcons); err != nil {
			slog.WarnContext(ctx, "Skipping unreadable legacy icon store", "path", oldPath, "error", err)
			return 0, nil
		}
		if len(oldIcons) == 0 {
			return 0, nil
		}

		existing := readStore(ctx, libraryPath)
		seen := make(NameSet, len(existing))
		for _, icon := range existing {
			seen[icon.Name] = struct{}{}
		}
		merged := existing
		added := 0
		for _, icon := range oldIcons {
			if seen.Has(icon.Name) {
				continue
			}
			seen[icon.Name] = struct{}{}
			merged = append(merged, Icon{Name: icon.Name, Content: icon.Content})
			added++
		}
		if err := writeStore(libraryPath, merged); err != nil {
			return 0, fmt.Errorf("failed to migrate %s: %w", oldPath, err)
		}
		if err := os.Remove(oldPath); err != nil {
			return added, fmt.Errorf("failed to remove migrated store %s: %w", oldPath, err)
		}
		slog.InfoContext(ctx, "Migrated legacy icon store", "from", oldPath, "to", libraryPath, "icons", added)
		return added, nil
	}
	return 0, nil
}

// SeedAnimated adds the animated presets missing from the library.
func (l *Library) SeedAnimated(ctx context.Context) (int, error) {
	return l.AddMany(ctx, AnimatedPresets)
}
