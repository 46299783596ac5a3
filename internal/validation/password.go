package validation

import "fmt"

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 5
	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72
)

// ValidatePassword returns a message when the password is unusable, "" otherwise.
func ValidatePassword(password string) string {
	switch {
	case password == "":
		return MsgRequired
	case len(password) < MinPasswordLength:
		return fmt.Sprintf("Ensure this field has at least %d characters.", MinPasswordLength)
	case len(password) > MaxPasswordLength:
		return fmt.Sprintf("Ensure this field has no more than %d characters.", MaxPasswordLength)
	}
	return ""
}

// ValidateName checks a short required text field such as a title or label.
func ValidateName(value string, max int) string {
	switch {
	case value == "":
		return MsgBlank
	case len([]rune(value)) > max:
		return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
	}
	return ""
}
