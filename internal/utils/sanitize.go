package utils

import (
	"regexp"
	"strings"
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"ñ", "n", "Ñ", "N", "ü", "u", "Ü", "U",
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FilenameToken reduces free text (typically a person's name) to a
// filesystem-safe token: accents folded, runs of anything outside
// [A-Za-z0-9_-] collapsed to a single underscore.
func FilenameToken(s string) string {
	s = accentReplacer.Replace(strings.TrimSpace(s))
	s = unsafeChars.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
