package fsext

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFile is honored next to .gitignore at the root of a glob walk.
const IgnoreFile = ".sageboxignore"

var commonIgnoredDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	".git":         true,
	".idea":        true,
	".vscode":      true,
	"coverage":     true,
	"tmp":          true,
}

func skipHidden(path string) bool {
	base := filepath.Base(path)
	if base != "." && strings.HasPrefix(base, ".") {
		return true
	}
	for part := range strings.SplitSeq(filepath.ToSlash(path), "/") {
		if commonIgnoredDirs[part] {
			return true
		}
	}
	return false
}

// globWalker provides gitignore-aware file walking with fastwalk.
type globWalker struct {
	gitignore *ignore.GitIgnore
	labIgnore *ignore.GitIgnore
	rootPath  string
}

func newGlobWalker(root string) *globWalker {
	w := &globWalker{rootPath: root}
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		w.gitignore = gi
	}
	if li, err := ignore.CompileIgnoreFile(filepath.Join(root, IgnoreFile)); err == nil {
		w.labIgnore = li
	}
	return w
}

func (w *globWalker) shouldSkip(path string) bool {
	rel, err := filepath.Rel(w.rootPath, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return false
	}
	if skipHidden(rel) {
		return true
	}
	if w.gitignore != nil && w.gitignore.MatchesPath(rel) {
		return true
	}
	if w.labIgnore != nil && w.labIgnore.MatchesPath(rel) {
		return true
	}
	return false
}

// Glob walks root and returns the files whose slash-separated path relative
// to root matches the doublestar pattern, sorted lexically. Hidden entries
// and anything excluded by .gitignore or .sageboxignore are skipped.
func Glob(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	walker := newGlobWalker(root)
	var matches []string
	conf := fastwalk.Config{
		Follow:  true,
		ToSlash: fastwalk.DefaultToSlash(),
	}
	// fastwalk runs the callback from several goroutines.
	results := make(chan string)
	done := make(chan struct{})
	go func() {
		for p := range results {
			matches = append(matches, p)
		}
		close(done)
	}()
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip files we can't access
		}
		if d.IsDir() {
			if walker.shouldSkip(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if walker.shouldSkip(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel)); ok {
			results <- path
		}
		return nil
	})
	close(results)
	<-done
	if err != nil {
		return nil, fmt.Errorf("fastwalk error: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
