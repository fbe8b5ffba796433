// Package generate renders the project's icon selection into the TypeScript
// module consumed by the icon component, plus its JSON and license siblings.
package generate

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"time"

	"github.com/Adravilag/sagebox-lab/internal/icons"
)

//go:embed templates/*
var templateFS embed.FS

var moduleTemplate = template.Must(template.ParseFS(templateFS, "templates/index.ts.tmpl"))

type pathLine struct {
	Value string
	Comma bool
}

type entry struct {
	Name     string
	Paths    []pathLine
	ViewBox  string
	FillRule string
	Comma    bool
}

type moduleData struct {
	Count     int
	Generated string
	Entries   []entry
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Render produces the TypeScript module for list, in list order. The viewBox
// is only emitted when it differs from the default and the fill rule only
// when it is set to something other than nonzero.
func Render(list []icons.Icon, now time.Time, extractor icons.Extractor) (string, error) {
	if extractor == nil {
		extractor = icons.RegexExtractor{}
	}
	data := moduleData{
		Count:     len(list),
		Generated: now.UTC().Format("2006-01-02T15:04:05.000Z"),
		Entries:   make([]entry, 0, len(list)),
	}
	for i, icon := range list {
		md := extractor.Extract(icon.Content)
		e := entry{
			Name:  quoteEscaper.Replace(icons.ShortName(icon.Name)),
			Comma: i < len(list)-1,
		}
		for j, p := range md.Paths {
			e.Paths = append(e.Paths, pathLine{
				Value: quoteEscaper.Replace(p),
				Comma: j < len(md.Paths)-1,
			})
		}
		if md.ViewBox != icons.DefaultViewBox {
			e.ViewBox = quoteEscaper.Replace(md.ViewBox)
		}
		if md.FillRule != "" && md.FillRule != "nonzero" {
			e.FillRule = quoteEscaper.Replace(md.FillRule)
		}
		data.Entries = append(data.Entries, e)
	}

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportMap maps bare icon names to their SVG content. Later icons win when
// two sets share a short name.
func ExportMap(list []icons.Icon) map[string]string {
	out := make(map[string]string, len(list))
	for _, icon := range list {
		out[icons.ShortName(icon.Name)] = icon.Content
	}
	return out
}
