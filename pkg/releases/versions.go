// Package releases reports the version of the running binary.
package releases

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
)

// CurrentVersion returns the current version of the binary.
func CurrentVersion() (string, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("failed to read BuildInfo because the program was compiled with Go %s", runtime.Version())
	}

	return cobrautil.VersionWithFallbacks(bi), nil
}

// UsageVersion renders the version line printed by the version command,
// optionally followed by the module versions the binary was built with.
func UsageVersion(programName string, includeDeps bool) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return programName + " (unknown)"
	}
	return usageVersion(programName, bi, includeDeps)
}

func usageVersion(programName string, bi *debug.BuildInfo, includeDeps bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", programName, cobrautil.VersionWithFallbacks(bi))
	if !includeDeps {
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n%s", bi.GoVersion)
	for _, dep := range bi.Deps {
		version := dep.Version
		if dep.Replace != nil {
			version = dep.Replace.Path + "@" + dep.Replace.Version
		}
		fmt.Fprintf(&sb, "\n%s %s", dep.Path, version)
	}
	return sb.String()
}
