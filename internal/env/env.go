// Package env abstracts process environment lookups so path and override
// resolution can be exercised with fixed values in tests.
package env

import "os"

// Variables read by the Lab.
const (
	IconsPath      = "ICONS_PATH"
	WorkspacePath  = "WORKSPACE_PATH"
	IconifyURL     = "SAGEBOX_LAB_ICONIFY_URL"
	XDGConfigHome  = "XDG_CONFIG_HOME"
	AppData        = "APPDATA"
	Home           = "HOME"
	UserProfile    = "USERPROFILE"
	ProfileEnabled = "SAGEBOX_LAB_PROFILE"
)

type Env interface {
	Get(key string) string
	Env() []string
}

type osEnv struct{}

// Get implements Env.
func (o *osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (o *osEnv) Env() []string {
	env := os.Environ()
	if len(env) == 0 {
		return nil
	}
	return env
}

func New() Env {
	return &osEnv{}
}

type mapEnv struct {
	m map[string]string
}

// Get implements Env.
func (m *mapEnv) Get(key string) string {
	return m.m[key]
}

// Env implements Env.
func (m *mapEnv) Env() []string {
	if len(m.m) == 0 {
		return nil
	}
	env := make([]string, 0, len(m.m))
	for k, v := range m.m {
		env = append(env, k+"="+v)
	}
	return env
}

// NewFromMap returns an Env backed by m; keys missing from m read as empty.
func NewFromMap(m map[string]string) Env {
	if m == nil {
		m = make(map[string]string)
	}
	return &mapEnv{m: m}
}

// HomeDir resolves the user's home directory the way the Lab's path
// helpers expect, falling back to the Windows profile variable.
func HomeDir(e Env) string {
	if home := e.Get(Home); home != "" {
		return home
	}
	if profile := e.Get(UserProfile); profile != "" {
		return profile
	}
	home, _ := os.UserHomeDir()
	return home
}
