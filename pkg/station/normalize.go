// Package station derives display names from raw PRONETA station
// identifiers.
//
// Station names in an export embed escape markers from the vendor
// encoding: "xd" introduces a numeric tag whose token ends in a
// fixed-width suffix, "xb" stands in for a separator character, and
// "xa" for a space. Normalization strips the markers so a name reads
// the way it does on the device label. Names without markers pass
// through unchanged.
package station

import (
	"regexp"
	"strings"
)

// Escape markers recognized in raw station identifiers.
const (
	prefixMarker    = "xd"
	separatorMarker = "xb"
	spaceMarker     = "xa"
)

// TagSuffixLen is the width of the trailing tag PRONETA appends to a
// station name that carries a numeric prefix marker. The suffix is
// dropped together with the marker.
const TagSuffixLen = 4

// prefixTagPattern matches the prefix marker only when a digit
// immediately follows; the digit is re-emitted so just the marker is
// removed.
var prefixTagPattern = regexp.MustCompile(prefixMarker + `([0-9])`)

// Config adjusts the rule table for older export revisions.
type Config struct {
	// DropSeparators deletes separator markers outright instead of
	// replacing them with underscores, matching exports written by
	// older PRONETA builds.
	DropSeparators bool `yaml:"drop_separators"`
}

// Normalizer applies the station-name rule table. The zero value uses
// the current rules.
type Normalizer struct {
	cfg Config
}

// NewNormalizer returns a normalizer with the given configuration.
func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

var defaultNormalizer = NewNormalizer(Config{})

// Normalize derives the display name for raw using the default rules.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Normalize derives the display name for a raw station identifier.
//
// The rules run in order, each on the output of the previous: prefix
// markers followed by a digit are removed in a single pass, separator
// markers become underscores (or are deleted, see Config), space
// markers become spaces. When the prefix pass changed the name, the
// trailing tag is cut from the final result; names too short to carry
// a tag collapse to the empty string.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	stripped := prefixTagPattern.ReplaceAllString(raw, "$1")

	out := stripped
	if n.cfg.DropSeparators {
		out = strings.ReplaceAll(out, separatorMarker, "")
	} else {
		out = strings.ReplaceAll(out, separatorMarker, "_")
	}
	out = strings.ReplaceAll(out, spaceMarker, " ")

	if stripped == raw {
		return out
	}
	return dropTagSuffix(out)
}

// dropTagSuffix removes the trailing tag characters, bottoming out at
// the empty string for names shorter than the tag itself.
func dropTagSuffix(s string) string {
	runes := []rune(s)
	if len(runes) <= TagSuffixLen {
		return ""
	}
	return string(runes[:len(runes)-TagSuffixLen])
}
