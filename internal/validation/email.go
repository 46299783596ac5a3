package validation

import (
	"net/mail"
	"strings"
)

// NormalizeEmail trims surrounding space and lower-cases the whole address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks presence, length and RFC 5322 syntax.
func ValidateEmail(email string) string {
	if email == "" {
		return MsgRequired
	}
	if len(email) > 254 {
		return "Ensure this field has no more than 254 characters."
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Enter a valid email address."
	}
	return ""
}
