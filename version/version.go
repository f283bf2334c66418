package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// You can set the version at build time using something like:
// go build -ldflags "-X github.com/vsariola/metronome/version.Version=$(git describe --dirty)"

var Version string

// Hash is the short VCS revision the binary was built from, with -dirty
// appended for modified trees, or "" if unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return hashFromSettings(info.Settings)
}()

func hashFromSettings(settings []debug.BuildSetting) string {
	var revision string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return ""
	}
	revision = revision[:min(len(revision), 7)]
	if modified {
		return revision + "-dirty"
	}
	return revision
}

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

// String describes the build for the -v flag of the commands.
func String(program string) string {
	v := VersionOrHash
	if v == "" {
		v = "(devel)"
	}
	return fmt.Sprintf("%s %s %s/%s %s", program, v, runtime.GOOS, runtime.GOARCH, runtime.Version())
}
