package icons

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultViewBox is assumed when an SVG does not declare one.
const DefaultViewBox = "0 0 24 24"

// Metadata is what the generated module needs from an SVG document.
type Metadata struct {
	ViewBox  string
	Paths    []string
	FillRule string
}

// Extractor pulls Metadata out of raw SVG text.
type Extractor interface {
	Extract(content string) Metadata
}

var (
	viewBoxRe  = regexp.MustCompile(`(?i)viewBox=["']([^"']+)["']`)
	pathRe     = regexp.MustCompile(`(?i)<path[^>]*d=["']([^"']+)["'][^>]*/?>`)
	fillRuleRe = regexp.MustCompile(`(?i)fill-rule=["']([^"']+)["']`)
	animatedRe = regexp.MustCompile(`(?i)(<animate[^>]*>|<animateTransform[^>]*>|<animateMotion[^>]*>|<set\s[^>]*>)`)
)

// RegexExtractor is a best-effort textual extractor. It does not understand
// nesting or namespaces; non-path elements are ignored.
type RegexExtractor struct{}

func (RegexExtractor) Extract(content string) Metadata {
	md := Metadata{ViewBox: DefaultViewBox}
	if m := viewBoxRe.FindStringSubmatch(content); m != nil {
		md.ViewBox = m[1]
	}
	for _, m := range pathRe.FindAllStringSubmatch(content, -1) {
		md.Paths = append(md.Paths, m[1])
	}
	if m := fillRuleRe.FindStringSubmatch(content); m != nil {
		md.FillRule = m[1]
	}
	return md
}

// ParseSVG extracts metadata with the default extractor.
func ParseSVG(content string) Metadata {
	return RegexExtractor{}.Extract(content)
}

// IsAnimated reports whether content contains SMIL animation elements.
func IsAnimated(content string) bool {
	return animatedRe.MatchString(content)
}

// LooksLikeSVG is the content check applied on add.
func LooksLikeSVG(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "<svg")
}

// Definition is the legacy object-format store entry.
type Definition struct {
	Paths    []string `json:"paths"`
	ViewBox  string   `json:"viewBox,omitempty"`
	FillRule string   `json:"fillRule,omitempty"`
}

// SVG renders a legacy definition as a currentColor SVG document.
func (d Definition) SVG() string {
	viewBox := d.ViewBox
	if viewBox == "" {
		viewBox = DefaultViewBox
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s" fill="currentColor">`, viewBox)
	for _, p := range d.Paths {
		b.WriteString(`<path d="`)
		b.WriteString(p)
		b.WriteString(`"`)
		if d.FillRule != "" {
			fmt.Fprintf(&b, ` fill-rule="%s"`, d.FillRule)
		}
		b.WriteString(`/>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
