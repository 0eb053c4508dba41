package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

const (
	// LockfileMajorV5 is the pnpm v7 lockfile schema (dependency paths like /name/1.0.0).
	LockfileMajorV5 = 5
	// LockfileMajorV6 is the pnpm v8 lockfile schema (dependency paths like /name@1.0.0).
	LockfileMajorV6 = 6
)

// ShrinkwrapFileMajorVersion returns the major schema version of a lockfile.
// Numbers are floored, strings keep the leading digits before the first dot.
// Any major version other than 5 or 6 yields ErrUnsupportedLockfileVersion.
func ShrinkwrapFileMajorVersion(v LockfileVersion) (int, error) {
	major, ok := parseMajor(v)
	if !ok || major < LockfileMajorV5 || major > LockfileMajorV6 {
		err := zerr.Wrap(ErrUnsupportedLockfileVersion, "lockfile version "+strconv.Quote(v.Raw))
		return 0, zerr.With(err, "lockfile_version", v.Raw)
	}
	return major, nil
}

func parseMajor(v LockfileVersion) (int, bool) {
	raw := strings.TrimSpace(v.Raw)
	if raw == "" {
		return 0, false
	}

	if v.Numeric {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(math.Floor(f)), true
	}

	if sv, err := semver.NewVersion(raw); err == nil && sv.Major() <= math.MaxInt32 {
		return int(sv.Major()), true //nolint:gosec // bounded above
	}

	head, _, _ := strings.Cut(raw, ".")
	if i := strings.IndexFunc(head, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		head = head[:i]
	}
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return major, true
}
