package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const slugSuffixLen = 6

// Slugify lowercases s and joins its letter and digit runs with '-'.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// UniqueSlug returns Slugify(title) followed by a short random suffix.
func UniqueSlug(title string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:slugSuffixLen]
	base := Slugify(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
