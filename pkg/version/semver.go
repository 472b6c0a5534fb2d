package version

import (
	"sync"

	"github.com/Masterminds/semver/v3"
)

var (
	parseOnce     sync.Once
	parsedVersion *semver.Version
)

// Parsed returns Version as a semantic version, or nil for builds such as "dev".
func Parsed() *semver.Version {
	parseOnce.Do(func() {
		if v, err := semver.NewVersion(Version); err == nil {
			parsedVersion = v
		}
	})
	return parsedVersion
}

// IsPrerelease reports whether the build carries a prerelease tag like "-rc.1".
func IsPrerelease() bool {
	v := Parsed()
	return v != nil && v.Prerelease() != ""
}

// IsDevBuild reports whether Version is not a valid semantic version.
func IsDevBuild() bool {
	return Parsed() == nil
}

// resetParsedVersion clears the cached parsed version for testing.
func resetParsedVersion() {
	parseOnce = sync.Once{}
	parsedVersion = nil
}
