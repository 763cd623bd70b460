// Package vault renders device records into Obsidian Markdown notes
// and persists them as a vault directory.
package vault

import "strings"

// invalidFilenameChars are the characters Obsidian and the common
// target filesystems reject in note names.
const invalidFilenameChars = `<>:"/\|?*`

// SanitizeFilename replaces filesystem-hostile characters with
// underscores so every display name maps to a writable note file.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)
}
