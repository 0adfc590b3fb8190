package service

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// normalizeName trims and collapses internal whitespace runs to single spaces.
func normalizeName(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// normalizeEmail trims, collapses whitespace and lower-cases, so emails
// differing only by case or spacing collide on the unique index.
func normalizeEmail(s string) string {
	return strings.ToLower(normalizeName(s))
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}
