// Package version exposes the release version of hyperchaind.
package version

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// build can be set at link time with
// '-ldflags "-X github.com/hyperchainnet/hyperchaind/version.build=foo"'.
// It is appended to the version string when it consists solely of
// alphanumerics and dashes; anything else is discarded.
var build string

// versionString memoizes the rendered version.
var versionString string

// Version returns the semantic version of this build, with any link-time
// build metadata appended.
func Version() string {
	if versionString == "" {
		versionString = fmt.Sprintf("%d.%d.%d", major, minor, patch)
		if build != "" && validBuild(build) {
			versionString += "-" + build
		}
	}
	return versionString
}

// validBuild reports whether s is safe to append to the version string:
// only alphanumerics and dashes are allowed.
func validBuild(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-':
		default:
			return false
		}
	}
	return true
}
