package version

import (
	"fmt"
	"strings"
	"sync"
)

const (
	appMajor uint = 0
	appMinor uint = 3
	appPatch uint = 0
)

// appBuild can be set at link time with
// -ldflags "-X github.com/algoguard/algoguard/version.appBuild=foo".
// It's dropped unless it's made of alphanumerics and dashes.
var appBuild string

var (
	version     string
	versionOnce sync.Once
)

// Version returns the semantic version of algoguard, with the build metadata appended when valid.
func Version() string {
	versionOnce.Do(func() {
		version = fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
		if isValidBuild(appBuild) {
			version = fmt.Sprintf("%s-%s", version, appBuild)
		}
	})
	return version
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	return strings.IndexFunc(build, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '-')
	}) == -1
}
