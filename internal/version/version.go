// Where: ec2-starter/internal/version/version.go
// What: Build-time version information.
// Why: Stamp CLI output and cold-start logs with the VCS revision.
package version

import (
	"runtime/debug"
)

const devVersion = "dev"

var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string
	GoVersion string
}

// Get returns the short VCS revision, suffixed with "-dirty" for modified
// trees, or "dev" when no revision is embedded.
func Get() Info {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Info{Version: devVersion}
	}
	return Info{Version: revision(info.Settings), GoVersion: info.GoVersion}
}

func (i Info) String() string {
	if i.GoVersion == "" {
		return i.Version
	}
	return i.Version + " (" + i.GoVersion + ")"
}

func revision(settings []debug.BuildSetting) string {
	var rev string
	var modified bool
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if rev == "" {
		return devVersion
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		return rev + "-dirty"
	}
	return rev
}
