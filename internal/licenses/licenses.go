// Package licenses aggregates the license texts of the remote icon sets a
// project uses.
package licenses

import (
	"embed"
	"fmt"
	"strings"

	"github.com/Adravilag/sagebox-lab/internal/icons"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

//go:embed texts/*.txt
var texts embed.FS

// Info describes the license of one icon set.
type Info struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
}

const (
	CombinedFileName = "LICENSES.md"
	individualPrefix = "LICENSE-"
)

func text(file string) string {
	data, err := texts.ReadFile("texts/" + file)
	if err != nil {
		panic(fmt.Sprintf("missing embedded license %s: %v", file, err))
	}
	return string(data)
}

func withHolder(template, year, holders string) string {
	return strings.NewReplacer("[year]", year, "[copyright holders]", holders).Replace(template)
}

var (
	mitText    = text("mit.txt")
	iscText    = text("isc.txt")
	apacheText = text("apache-2.0.txt")
	ccByText   = text("cc-by-4.0.txt")
)

const fontAwesomeAttribution = "Font Awesome Free - https://fontawesome.com (Icons: CC BY 4.0, Fonts: SIL OFL 1.1, Code: MIT)"

// Table maps icon-set prefixes to their license.
var Table = map[string]Info{
	"lucide": {
		Type:        "ISC",
		Name:        "Lucide Icons",
		URL:         "https://github.com/lucide-icons/lucide/blob/main/LICENSE",
		Text:        withHolder(iscText, "2020", "Lucide Contributors"),
		Attribution: "Lucide Icons - https://lucide.dev",
	},
	"heroicons": {
		Type:        "MIT",
		Name:        "Heroicons",
		URL:         "https://github.com/tailwindlabs/heroicons/blob/master/LICENSE",
		Text:        withHolder(mitText, "2020", "Tailwind Labs, Inc."),
		Attribution: "Heroicons by Tailwind Labs - https://heroicons.com",
	},
	"material-symbols": {
		Type:        "Apache 2.0",
		Name:        "Material Symbols",
		URL:         "https://github.com/google/material-design-icons/blob/master/LICENSE",
		Text:        apacheText,
		Attribution: "Material Symbols by Google - https://fonts.google.com/icons",
	},
	"tabler": {
		Type:        "MIT",
		Name:        "Tabler Icons",
		URL:         "https://github.com/tabler/tabler-icons/blob/master/LICENSE",
		Text:        withHolder(mitText, "2020-2024", "Paweł Kuna"),
		Attribution: "Tabler Icons by Paweł Kuna - https://tabler.io/icons",
	},
	"feather": {
		Type:        "MIT",
		Name:        "Feather Icons",
		URL:         "https://github.com/feathericons/feather/blob/master/LICENSE",
		Text:        withHolder(mitText, "2013-2023", "Cole Bemis"),
		Attribution: "Feather Icons by Cole Bemis - https://feathericons.com",
	},
	"mdi": {
		Type:        "Apache 2.0",
		Name:        "Material Design Icons",
		URL:         "https://github.com/Templarian/MaterialDesign/blob/master/LICENSE",
		Text:        apacheText,
		Attribution: "Material Design Icons - https://materialdesignicons.com",
	},
	"bi": {
		Type:        "MIT",
		Name:        "Bootstrap Icons",
		URL:         "https://github.com/twbs/icons/blob/main/LICENSE",
		Text:        withHolder(mitText, "2019-2024", "The Bootstrap Authors"),
		Attribution: "Bootstrap Icons - https://icons.getbootstrap.com",
	},
	"carbon": {
		Type:        "Apache 2.0",
		Name:        "Carbon Icons",
		URL:         "https://github.com/carbon-design-system/carbon/blob/main/LICENSE",
		Text:        apacheText,
		Attribution: "Carbon Icons by IBM - https://carbondesignsystem.com/guidelines/icons/library",
	},
	"ph": {
		Type:        "MIT",
		Name:        "Phosphor Icons",
		URL:         "https://github.com/phosphor-icons/core/blob/main/LICENSE",
		Text:        withHolder(mitText, "2020", "Phosphor Icons"),
		Attribution: "Phosphor Icons - https://phosphoricons.com",
	},
	"ion": {
		Type:        "MIT",
		Name:        "Ionicons",
		URL:         "https://github.com/ionic-team/ionicons/blob/main/LICENSE",
		Text:        withHolder(mitText, "2015-present", "Ionic"),
		Attribution: "Ionicons by Ionic - https://ionic.io/ionicons",
	},
	"ri": {
		Type:        "Apache 2.0",
		Name:        "Remix Icon",
		URL:         "https://github.com/Remix-Design/RemixIcon/blob/master/License",
		Text:        apacheText,
		Attribution: "Remix Icon - https://remixicon.com",
	},
	"solar": {
		Type:        "CC BY 4.0",
		Name:        "Solar Icons",
		URL:         "https://www.figma.com/community/file/1166831539721848736",
		Text:        ccByText,
		Attribution: "Solar Icons by 480 Design - https://www.figma.com/community/file/1166831539721848736",
	},
	"fa6-solid": {
		Type:        "CC BY 4.0",
		Name:        "Font Awesome 6 (Solid)",
		URL:         "https://fontawesome.com/license/free",
		Text:        ccByText,
		Attribution: fontAwesomeAttribution,
	},
	"fa6-regular": {
		Type:        "CC BY 4.0",
		Name:        "Font Awesome 6 (Regular)",
		URL:         "https://fontawesome.com/license/free",
		Text:        ccByText,
		Attribution: fontAwesomeAttribution,
	},
	"radix-icons": {
		Type:        "MIT",
		Name:        "Radix Icons",
		URL:         "https://github.com/radix-ui/icons/blob/master/LICENSE",
		Text:        withHolder(mitText, "2022", "WorkOS"),
		Attribution: "Radix Icons by WorkOS - https://www.radix-ui.com/icons",
	},
	"eos-icons": {
		Type:        "MIT",
		Name:        "EOS Icons",
		URL:         "https://github.com/SUSE-UIUX/eos-icons/blob/master/LICENSE",
		Text:        withHolder(mitText, "2019", "SUSE LLC"),
		Attribution: "EOS Icons by SUSE - https://eos-icons.com",
	},
	"svg-spinners": {
		Type:        "MIT",
		Name:        "SVG Spinners",
		URL:         "https://github.com/n3r4zzurr0/svg-spinners/blob/main/LICENSE",
		Text:        withHolder(mitText, "2022", "Utkarsh Verma"),
		Attribution: "SVG Spinners by Utkarsh Verma - https://github.com/n3r4zzurr0/svg-spinners",
	},
	"line-md": {
		Type:        "MIT",
		Name:        "Line MD Icons",
		URL:         "https://github.com/cyberalien/line-md/blob/master/license.txt",
		Text:        withHolder(mitText, "2021", "Vjacheslav Trushkin"),
		Attribution: "Line MD by Vjacheslav Trushkin - https://github.com/cyberalien/line-md",
	},
}

// known returns the deduplicated prefixes that have a license entry, in
// first-occurrence order.
func known(prefixes []string) []string {
	return lo.Filter(lo.Uniq(prefixes), func(p string, _ int) bool {
		_, ok := Table[p]
		return ok
	})
}

// Combined renders one Markdown document with a section per used set.
// Unknown prefixes are skipped.
func Combined(prefixes []string) string {
	lines := []string{
		"# Icon Licenses",
		"",
		"This project uses icons from the following icon sets. Each icon set has its own license that must be respected.",
		"",
		"---",
		"",
	}
	for _, prefix := range known(prefixes) {
		info := Table[prefix]
		lines = append(lines,
			"## "+info.Name,
			"",
			"**License:** "+info.Type,
			"**URL:** "+info.URL,
		)
		if info.Attribution != "" {
			lines = append(lines, "**Attribution:** "+info.Attribution)
		}
		lines = append(lines,
			"",
			"```",
			info.Text,
			"```",
			"",
			"---",
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// Individual renders one plain-text document per used set, keyed by
// LICENSE-<PREFIX>. No prefixes yields an empty map.
func Individual(prefixes []string) map[string]string {
	out := make(map[string]string)
	for _, prefix := range known(prefixes) {
		info := Table[prefix]
		var attribution string
		if info.Attribution != "" {
			attribution = "Attribution: " + info.Attribution
		}
		lines := lo.Compact([]string{
			info.Name,
			strings.Repeat("=", uniseg.StringWidth(info.Name)),
			"",
			"License: " + info.Type,
			"Source: " + info.URL,
			attribution,
			"",
			strings.Repeat("-", 60),
			"",
			info.Text,
		})
		out[FileName(prefix)] = strings.Join(lines, "\n")
	}
	return out
}

// FileName is the per-set license file name for prefix.
func FileName(prefix string) string {
	return individualPrefix + strings.ToUpper(prefix)
}

// Attribution joins the attribution lines of the used sets.
func Attribution(prefixes []string) string {
	var out []string
	for _, prefix := range known(prefixes) {
		if a := Table[prefix].Attribution; a != "" {
			out = append(out, a)
		}
	}
	return strings.Join(out, "\n")
}

// Prefixes returns the deduplicated icon-set prefixes of names, in
// first-occurrence order. Unprefixed names are ignored.
func Prefixes(names []string) []string {
	prefixes := lo.FilterMap(names, func(name string, _ int) (string, bool) {
		p := icons.Prefix(name)
		return p, p != ""
	})
	return lo.Uniq(prefixes)
}
