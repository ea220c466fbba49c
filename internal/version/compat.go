package version

import (
	"strconv"
	"strings"
)

// CompatibleWith reports whether an mdbook version satisfies the caret
// requirement of MdbookVersion: same major, and for major zero also the
// same minor. Unparseable versions are reported as incompatible so the
// caller can warn.
func CompatibleWith(v string) bool {
	gotMajor, gotMinor, ok := parseMajorMinor(v)
	if !ok {
		return false
	}
	wantMajor, wantMinor, _ := parseMajorMinor(MdbookVersion)
	if gotMajor != wantMajor {
		return false
	}
	if wantMajor == 0 && gotMinor != wantMinor {
		return false
	}
	return true
}

func parseMajorMinor(v string) (major, minor int, ok bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	// Drop pre-release and build metadata.
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
