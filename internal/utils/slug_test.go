package utils

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Help Build a School", "help-build-a-school"},
		{"  Trim  me!  ", "trim-me"},
		{"Clean Water -- 2026", "clean-water-2026"},
		{"Ünïcode Straße", "ünïcode-straße"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	re := regexp.MustCompile(`^help-a-shelter-[0-9a-f]{6}$`)

	a := UniqueSlug("Help a Shelter")
	b := UniqueSlug("Help a Shelter")

	if !re.MatchString(a) {
		t.Errorf("unexpected slug %q", a)
	}
	if a == b {
		t.Errorf("expected different suffixes, got %q twice", a)
	}
}

func TestUniqueSlug_EmptyTitle(t *testing.T) {
	if got := UniqueSlug("???"); len(got) != slugSuffixLen {
		t.Errorf("expected bare suffix, got %q", got)
	}
}
