package unicodedata

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type version [3]int

func parseVersion(s string) (version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return version{}, fmt.Errorf("version %q is not in major.minor.update form", s)
	}
	var v version
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return version{}, fmt.Errorf("version %q is not in major.minor.update form", s)
		}
		v[i] = n
	}
	return v, nil
}

func (v version) compare(other version) int {
	for i := range v {
		if v[i] != other[i] {
			if v[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// checkReleased validates a version string against the fixed list of
// released Unicode versions.
func checkReleased(s string) (version, error) {
	v, err := parseVersion(s)
	if err != nil {
		return version{}, err
	}
	if !slices.Contains(releasedVersions, s) {
		return version{}, fmt.Errorf("%q is not a released Unicode version", s)
	}
	return v, nil
}
