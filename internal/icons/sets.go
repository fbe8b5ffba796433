package icons

import (
	"slices"

	"github.com/samber/lo"
)

// Set describes a known icon set.
type Set struct {
	Prefix   string `json:"prefix"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	License  string `json:"license"`
	Animated bool   `json:"animated,omitempty"`
}

// CustomAnimatedPrefix namespaces the built-in animated presets.
const CustomAnimatedPrefix = "animated"

// Sets is the static icon-set table, in display order.
var Sets = []Set{
	{Prefix: "lucide", Name: "Lucide", Color: "#f472b6", License: "ISC"},
	{Prefix: "heroicons", Name: "Heroicons", Color: "#38bdf8", License: "MIT"},
	{Prefix: "material-symbols", Name: "Material Symbols", Color: "#fbbf24", License: "Apache 2.0"},
	{Prefix: "tabler", Name: "Tabler Icons", Color: "#4ade80", License: "MIT"},
	{Prefix: "feather", Name: "Feather", Color: "#a78bfa", License: "MIT"},
	{Prefix: "mdi", Name: "Material Design Icons", Color: "#fb923c", License: "Apache 2.0"},
	{Prefix: "bi", Name: "Bootstrap Icons", Color: "#818cf8", License: "MIT"},
	{Prefix: "carbon", Name: "Carbon", Color: "#2dd4bf", License: "Apache 2.0"},
	{Prefix: "ph", Name: "Phosphor", Color: "#f87171", License: "MIT"},
	{Prefix: "ion", Name: "Ionicons", Color: "#60a5fa", License: "MIT"},
	{Prefix: "ri", Name: "Remix Icon", Color: "#c084fc", License: "Apache 2.0"},
	{Prefix: "solar", Name: "Solar", Color: "#facc15", License: "CC BY 4.0"},
	{Prefix: "fa6-solid", Name: "Font Awesome Solid", Color: "#538DD7", License: "CC BY 4.0"},
	{Prefix: "fa6-regular", Name: "Font Awesome Regular", Color: "#538DD7", License: "CC BY 4.0"},
	{Prefix: "radix-icons", Name: "Radix Icons", Color: "#9333EA", License: "MIT"},
	{Prefix: "eos-icons", Name: "EOS Icons", Color: "#06b6d4", License: "MIT"},

	{Prefix: "svg-spinners", Name: "SVG Spinners", Color: "#ec4899", License: "MIT", Animated: true},
	{Prefix: "line-md", Name: "Line MD", Color: "#f472b6", License: "MIT", Animated: true},

	{Prefix: CustomAnimatedPrefix, Name: "Custom Animated", Color: "#a855f7", License: "MIT", Animated: true},
}

var setsByPrefix = lo.KeyBy(Sets, func(s Set) string { return s.Prefix })

// LookupSet returns the set registered for prefix.
func LookupSet(prefix string) (Set, bool) {
	s, ok := setsByPrefix[prefix]
	return s, ok
}

// SetPrefixes lists the known prefixes in table order.
func SetPrefixes() []string {
	return lo.Map(Sets, func(s Set, _ int) string { return s.Prefix })
}

// Categories groups icon names for the library sidebar.
type Categories struct {
	All      int                 `json:"all"`
	Custom   []string            `json:"custom"`
	Animated []string            `json:"animated"`
	Sets     map[string][]string `json:"sets"`
}

// Categorize sorts icons into known sets and custom icons. Animated icons
// are additionally listed under Animated.
func Categorize(icons []Icon) Categories {
	c := Categories{
		All:      len(icons),
		Custom:   []string{},
		Animated: []string{},
		Sets:     map[string][]string{},
	}
	for _, icon := range icons {
		if IsAnimated(icon.Content) {
			c.Animated = append(c.Animated, icon.Name)
		}
		prefix := Prefix(icon.Name)
		if _, known := setsByPrefix[prefix]; prefix != "" && known {
			c.Sets[prefix] = append(c.Sets[prefix], icon.Name)
			continue
		}
		c.Custom = append(c.Custom, icon.Name)
	}
	return c
}

// PopularSets is the shortlist offered before any filter is typed.
var PopularSets = []string{
	"lucide", "mdi", "heroicons", "tabler", "phosphor",
	"carbon", "fa6-solid", "fa6-regular", "ion", "feather",
}

// IsPopular reports whether prefix is on the shortlist.
func IsPopular(prefix string) bool {
	return slices.Contains(PopularSets, prefix)
}
