package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reCategory = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID parses a positive integer path parameter.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return "", false
	}
	return s, true
}

// Category validates a category name used in paths and product rows.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reCategory.MatchString(s)
}

// Date checks a "YYYY-MM-DD" calendar date.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	_, err := time.Parse("2006-01-02", s)
	return s, err == nil
}

// DateTime checks a sale timestamp; empty is allowed and defaulted later.
func DateTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	_, err := time.Parse(time.DateTime, s)
	return s, err == nil
}

// Password enforces a simple complexity window applied on create, update
// and login alike.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
