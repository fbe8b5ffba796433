package config

import (
	"path/filepath"
	"runtime"

	"github.com/Adravilag/sagebox-lab/internal/env"
)

// LibraryDir returns the per-user directory holding the icon library:
//   - windows: %APPDATA%/sagebox-icon-manager
//   - darwin:  ~/Library/Application Support/sagebox-icon-manager
//   - others:  $XDG_CONFIG_HOME/sagebox-icon-manager or ~/.config/sagebox-icon-manager
func LibraryDir(e env.Env) string {
	return libraryDirFor(runtime.GOOS, e)
}

func libraryDirFor(goos string, e env.Env) string {
	home := env.HomeDir(e)
	switch goos {
	case "windows":
		appData := e.Get(env.AppData)
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, libraryName)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", libraryName)
	default:
		if xdg := e.Get(env.XDGConfigHome); xdg != "" {
			return filepath.Join(xdg, libraryName)
		}
		return filepath.Join(home, ".config", libraryName)
	}
}
