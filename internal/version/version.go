package version

import "runtime/debug"

// Build-time parameters set via -ldflags
var Version = "unknown"

// go install leaves Version unset but records the module version in the
// build info.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	mainVersion := info.Main.Version
	if mainVersion != "" && mainVersion != "(devel)" {
		Version = mainVersion
	}
}
