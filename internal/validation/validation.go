// Package validation performs syntactic checks on user supplied identity fields.
// The checks are sanity filters, not RFC compliant parsers.
package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen  = 3
	usernameMaxLen  = 20
	emailMinLen     = 5
	emailMaxLen     = 254
	passwordMinLen  = 8
	passwordMaxLen  = 72  // bcrypt input limit, in bytes
	githubURLMaxLen = 255 // apps.github_url column width
)

// ValidUsername reports whether s is 3 to 20 characters long and
// contains none of '@', '\' and '/'.
func ValidUsername(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < usernameMinLen || n > usernameMaxLen {
		return false
	}
	return !strings.ContainsAny(s, `@\/`)
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < emailMinLen || n > emailMaxLen {
		return false
	}
	if strings.ContainsAny(s, ` \/`) {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")
	if local == "" || domain == "" {
		return false
	}
	return strings.Contains(domain, ".")
}

// ValidPassword reports whether s has an acceptable length for hashing.
func ValidPassword(s string) bool {
	return len(s) >= passwordMinLen && len(s) <= passwordMaxLen
}

// ValidGithubURL accepts an empty string or an absolute http(s) URL of at
// most 255 characters.
func ValidGithubURL(s string) bool {
	if s == "" {
		return true
	}
	if utf8.RuneCountInString(s) > githubURLMaxLen {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
