package filament

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var rawVersion string

var releaseRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z.-]+))?$`)

// Version returns the library version, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// Release is a parsed library version.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	return s
}

// Tag returns the git tag form, with the leading "v".
func (r Release) Tag() string { return "v" + r.String() }

// ParseRelease parses a version string of the form major.minor.patch with an
// optional pre-release suffix.
func ParseRelease(v string) (Release, bool) {
	m := releaseRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, false
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Release{Major: major, Minor: minor, Patch: patch, Pre: m[4]}, true
}

// CurrentRelease parses the embedded version.
func CurrentRelease() (Release, bool) {
	return ParseRelease(Version())
}
