package boost

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a Boost release version, e.g. "1.72.0".
type Version struct {
	s string
}

// ParseVersion validates s as a MAJOR.MINOR.PATCH release version.
func ParseVersion(s string) (Version, error) {
	canonical := "v" + s
	if !semver.IsValid(canonical) || semver.Canonical(canonical) != canonical {
		return Version{}, fmt.Errorf("invalid Boost version: %q", s)
	}
	return Version{s: s}, nil
}

func (v Version) String() string { return v.s }

// Compare orders two versions like semver.Compare.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.s, "v"+other.s)
}

// DirName returns the name of the unpacked source directory,
// e.g. "boost_1_72_0".
func (v Version) DirName() string {
	return "boost_" + strings.ReplaceAll(v.s, ".", "_")
}

// ArchiveName returns the release archive file name.
func (v Version) ArchiveName() string {
	return v.DirName() + ".tar.gz"
}

// URL returns the download location of the release archive.
func (v Version) URL() string {
	return fmt.Sprintf("https://archives.boost.io/release/%s/source/%s", v.s, v.ArchiveName())
}
