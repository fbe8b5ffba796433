package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Adravilag/sagebox-lab/internal/env"
	"github.com/Adravilag/sagebox-lab/internal/fsext"
)

const (
	appName = "sagebox-lab"

	// libraryName is the directory under the user config root that holds the
	// shared icon library.
	libraryName = "sagebox-icon-manager"

	DefaultIconifyURL = "https://api.iconify.design"

	configFileName       = "config.json"
	iconsFileName        = "icons.json"
	projectIconsFileName = "project-icons.json"
)

// Config is the persisted Lab configuration.
type Config struct {
	// OutputPath is where the generated icon module is written.
	OutputPath string `json:"outputPath,omitempty" jsonschema:"description=Directory that receives the generated icon module and project-icons.json,example=./src/icons"`
	// Debug enables debug logging.
	Debug bool `json:"debug,omitempty" jsonschema:"description=Enable debug logging,default=false"`
	// IconifyURL overrides the remote icon API.
	IconifyURL string `json:"iconifyURL,omitempty" jsonschema:"description=Base URL of the Iconify API,format=uri,default=https://api.iconify.design"`
	// DistDir points at pre-built front-ends, one sub directory per tool.
	DistDir string `json:"distDir,omitempty" jsonschema:"description=Directory containing pre-built tool front-ends"`

	// outputOverride is set by SetOutputPath and outranks WORKSPACE_PATH.
	outputOverride string

	libraryDir string
	workingDir string
	env        env.Env
}

func (c *Config) LibraryDir() string {
	return c.libraryDir
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

// ConfigPath is the global config file inside the library directory.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.libraryDir, configFileName)
}

// LibraryIconsPath is the default icon store location.
func (c *Config) LibraryIconsPath() string {
	return filepath.Join(c.libraryDir, iconsFileName)
}

// IconsPath returns the icon store file. ICONS_PATH wins when it points at
// an existing file.
func (c *Config) IconsPath() string {
	if p := c.env.Get(env.IconsPath); p != "" && fsext.Exists(p) {
		return p
	}
	return c.LibraryIconsPath()
}

// IconsPathOverridden reports whether ICONS_PATH is in effect.
func (c *Config) IconsPathOverridden() bool {
	return c.IconsPath() != c.LibraryIconsPath()
}

// ResolvedOutputPath returns the output directory. A path set through
// SetOutputPath in this process wins, then <WORKSPACE_PATH>/src/icons, then
// the outputPath from the config files. An empty result means no output is
// configured.
func (c *Config) ResolvedOutputPath() string {
	if c.outputOverride != "" {
		return c.expandOutput(c.outputOverride)
	}
	if ws := c.env.Get(env.WorkspacePath); ws != "" {
		return filepath.Join(ws, "src", "icons")
	}
	if c.OutputPath != "" {
		return c.expandOutput(c.OutputPath)
	}
	return ""
}

// OutputSetting is the unexpanded output path in effect, or "" when the
// output comes from WORKSPACE_PATH or is not configured.
func (c *Config) OutputSetting() string {
	if c.outputOverride != "" {
		return c.outputOverride
	}
	if c.env.Get(env.WorkspacePath) != "" {
		return ""
	}
	return c.OutputPath
}

func (c *Config) expandOutput(p string) string {
	expanded, err := fsext.Expand(p, c.env.Get)
	if err != nil {
		return p
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(c.workingDir, expanded)
	}
	return expanded
}

// ProjectIconsPath returns the membership file. Without an output path it
// looks for <cwd>/../src/project-icons.json and falls back to
// <cwd>/src/project-icons.json.
func (c *Config) ProjectIconsPath() string {
	if out := c.ResolvedOutputPath(); out != "" {
		return filepath.Join(out, projectIconsFileName)
	}
	parent := filepath.Join(c.workingDir, "..", "src", projectIconsFileName)
	if fsext.Exists(parent) {
		return filepath.Clean(parent)
	}
	return filepath.Join(c.workingDir, "src", projectIconsFileName)
}

// LegacyIconsPaths lists the per-project store files that predate the shared
// library, in migration order.
func (c *Config) LegacyIconsPaths() []string {
	return []string{
		filepath.Clean(filepath.Join(c.workingDir, "..", "src", iconsFileName)),
		filepath.Join(c.workingDir, "src", iconsFileName),
	}
}

func (c *Config) ResolvedIconifyURL() string {
	if u := c.env.Get(env.IconifyURL); u != "" {
		return u
	}
	if c.IconifyURL != "" {
		return c.IconifyURL
	}
	return DefaultIconifyURL
}

// Env exposes the environment the config was loaded with.
func (c *Config) Env() env.Env {
	return c.env
}

func (c *Config) EnsureLibraryDir() error {
	if err := os.MkdirAll(c.libraryDir, 0o755); err != nil {
		return fmt.Errorf("failed to create library directory %s: %w", c.libraryDir, err)
	}
	return nil
}
