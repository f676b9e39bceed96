package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var base64Body = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

func notBlank(s string) bool { return strings.TrimSpace(s) != "" }

func minLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) >= n }
}

func maxLen(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) <= n }
}

func hasRune(class func(rune) bool) func(string) bool {
	return func(s string) bool { return strings.IndexFunc(s, class) >= 0 }
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isEmail accepts a bare address (no display name) with a dotted domain.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	_, domain, _ := strings.Cut(addr.Address, "@")
	return strings.Contains(strings.Trim(domain, "."), ".")
}

// IsBase64 reports whether s is standard padded base64.
func IsBase64(s string) bool {
	return base64Body.MatchString(s)
}

func passwordRules[T any](get func(T) string) []Rule[T] {
	return []Rule[T]{
		str(get, minLen(8), "password must be at least 8 characters"),
		str(get, maxLen(20), "password must be at most 20 characters"),
		str(get, hasRune(unicode.IsLower), "password must contain a lowercase letter"),
		str(get, hasRune(unicode.IsUpper), "password must contain an uppercase letter"),
		str(get, hasRune(isDigit), "password must contain a digit"),
	}
}
