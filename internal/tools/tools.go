// Package tools lists the Lab tools the CLI can serve.
package tools

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Tool struct {
	Name        string
	Alias       string
	Title       string
	Description string
	Short       string
	Port        int
	// API is set for tools that need the icon library endpoints.
	API bool
}

var All = []Tool{
	{
		Name:        "icon-manager",
		Alias:       "icons",
		Title:       "Icon Manager",
		Description: "Manage and organize SVG icons for your project",
		Short:       "Manage and organize SVG icons",
		Port:        4568,
		API:         true,
	},
	{
		Name:        "style-editor",
		Alias:       "styles",
		Title:       "Style Editor",
		Description: "Edit and preview CSS tokens and design variables",
		Short:       "Edit CSS tokens and design variables",
		Port:        4569,
	},
	{
		Name:        "event-editor",
		Alias:       "events",
		Title:       "Event Editor",
		Description: "Configure and test component events",
		Short:       "Configure and test component events",
		Port:        4570,
	},
}

// Lookup finds a tool by name or alias.
func Lookup(name string) (Tool, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range All {
		if t.Name == name || t.Alias == name {
			return t, true
		}
	}
	return Tool{}, false
}

// DistDir is the pre-built front-end of the tool below root.
func (t Tool) DistDir(root string) string {
	return filepath.Join(root, "apps", t.Name, "dist")
}

func (t Tool) Addr(port int) string {
	if port <= 0 {
		port = t.Port
	}
	return fmt.Sprintf("localhost:%d", port)
}

func (t Tool) URL(port int) string {
	return "http://" + t.Addr(port)
}
