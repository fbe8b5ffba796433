package icons

import (
	"regexp"
	"strings"
)

var (
	nameRe        = regexp.MustCompile(`^[a-z0-9:-]+$`)
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	separatorRun  = regexp.MustCompile(`[\s_]+`)
)

// ValidName reports whether name only uses lowercase letters, digits, hyphens
// and colons.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// ToKebabCase splits camelCase boundaries, turns runs of whitespace and
// underscores into a single hyphen and lowercases the result.
func ToKebabCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1-$2")
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Prefix returns the icon-set namespace of name, or "" when name has none.
func Prefix(name string) string {
	i := strings.Index(name, ":")
	if i <= 0 {
		return ""
	}
	return name[:i]
}

// ShortName strips the icon-set namespace from name.
func ShortName(name string) string {
	parts := strings.Split(name, ":")
	if len(parts) < 2 {
		return name
	}
	return parts[1]
}
