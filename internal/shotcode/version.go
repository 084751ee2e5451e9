// Package shotcode holds the naming conventions for shot codes.
//
// A shot code conventionally looks like <show>_<reel>_<desc>_<version>,
// e.g. "DCP_01_beach_v003". The helpers here derive the version label and
// the reel segment from a code. They are pure functions and every call
// site recomputes them, since codes are editable.
package shotcode

import (
	"regexp"
	"strings"
)

var versionPattern = regexp.MustCompile(`[Vv](\d+)`)

// ExtractVersion returns the canonical version label for a shot code.
// The first "v" or "V" followed by a digit run wins and is returned as
// "V" plus the digit run verbatim ("v01" -> "V01", not "V1"). When the
// code carries no version marker the stored version field is returned,
// which may be empty.
func ExtractVersion(code, stored string) string {
	if code != "" {
		if m := versionPattern.FindStringSubmatch(code); m != nil {
			return "V" + m[1]
		}
	}
	return stored
}

// ReelFromCode derives the reel from the second underscore-delimited
// segment of a shot code. Every place that falls back from an explicit
// reel to the code must go through this so comp-path lookup, comp
// generation and structure generation agree.
func ReelFromCode(code string) string {
	parts := strings.Split(code, "_")
	if len(parts) >= 2 && parts[1] != "" {
		return parts[1]
	}
	return "REEL"
}

// ReelSegment is ReelFromCode without the "REEL" fallback, for display
// and CSV export where a missing reel should stay blank.
func ReelSegment(code string) string {
	if !strings.Contains(code, "_") {
		return ""
	}
	return strings.Split(code, "_")[1]
}

// ResolveReel picks the shot's explicit reel when set, normalized via
// NormalizeReel, and otherwise derives it from the code.
func ResolveReel(explicit, code string) string {
	if strings.TrimSpace(explicit) != "" {
		return NormalizeReel(explicit)
	}
	return ReelFromCode(code)
}

// NormalizeReel rewrites a bare reel value to the folder naming
// convention: values that do not already start with "reel" (any case)
// become "Reel_<value>". Empty input stays empty.
func NormalizeReel(reel string) string {
	reel = strings.TrimSpace(reel)
	if reel == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(reel), "reel") {
		return reel
	}
	return "Reel_" + reel
}
