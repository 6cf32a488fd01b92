package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// The form/validation layer. These are pure functions mirrored by the SPA
// for immediate feedback; handlers re-run the same checks because the
// server stays authoritative.

var (
	gmailRe    = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)
	contactRe  = regexp.MustCompile(`^\d{11}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	plateRe    = regexp.MustCompile(`^[A-Z0-9]{6,8}$`)
	digitRe    = regexp.MustCompile(`\d`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// SanitizeName strips digits from a name field.
func SanitizeName(value string) string {
	return digitRe.ReplaceAllString(value, "")
}

// SanitizeContactNumber keeps digits only, capped at 11 characters.
func SanitizeContactNumber(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits
}

// SanitizeVehicleField upper-cases plate/model/color input.
func SanitizeVehicleField(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsGmailAddress reports whether the email is a well-formed @gmail.com
// address. Comparison is case-insensitive.
func IsGmailAddress(email string) bool {
	return gmailRe.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// ValidateEmail returns an error message or "".
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "This field is required"
	}
	if !IsGmailAddress(email) {
		return "Email must be a valid @gmail.com address"
	}
	return ""
}

// ValidateContactNumber requires exactly 11 digits.
func ValidateContactNumber(contact string) string {
	if strings.TrimSpace(contact) == "" {
		return "This field is required"
	}
	if !contactRe.MatchString(strings.TrimSpace(contact)) {
		return "Contact number must be exactly 11 digits"
	}
	return ""
}

// ValidateUsername requires 3-20 letters, digits or underscores.
func ValidateUsername(username string) string {
	if strings.TrimSpace(username) == "" {
		return "This field is required"
	}
	if !usernameRe.MatchString(strings.TrimSpace(username)) {
		return "Username must be 3-20 characters using letters, numbers, or underscore"
	}
	return ""
}

// ValidateName rejects empty values and values containing digits.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "This field is required"
	}
	if digitRe.MatchString(trimmed) {
		return "This field cannot contain numbers"
	}
	return ""
}

// ValidatePlate expects an already upper-cased 6-8 character alphanumeric code.
func ValidatePlate(plate string) string {
	if strings.TrimSpace(plate) == "" {
		return "This field is required"
	}
	if !plateRe.MatchString(strings.TrimSpace(plate)) {
		return "Plate must be 6-8 letters or digits"
	}
	return ""
}

// IsStrongPassword requires 8-64 characters with upper, lower and digit.
func IsStrongPassword(pwd string) bool {
	if len(pwd) < 8 || len(pwd) > 64 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, ch := range pwd {
		switch {
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// RegistrationForm carries the raw registration fields for form-level checks.
type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	ContactNumber   string
	Username        string
	Password        string
	ConfirmPassword string
}

// ValidateRegistrationForm aggregates per-field errors into a field -> message
// map; an empty map means the form is valid.
func ValidateRegistrationForm(f RegistrationForm) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateName(f.FirstName); msg != "" {
		errs["firstName"] = msg
	}
	if msg := ValidateName(f.LastName); msg != "" {
		errs["lastName"] = msg
	}
	if msg := ValidateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateContactNumber(f.ContactNumber); msg != "" {
		errs["contactNumber"] = msg
	}
	if msg := ValidateUsername(f.Username); msg != "" {
		errs["username"] = msg
	}
	if f.Password == "" {
		errs["password"] = "This field is required"
	} else if !IsStrongPassword(f.Password) {
		errs["password"] = "Password must be 8-64 characters with upper, lower, and digit"
	}
	if f.ConfirmPassword == "" {
		errs["confirmPassword"] = "This field is required"
	} else if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// AccountForm carries the profile-update fields.
type AccountForm struct {
	Username      string
	Name          string
	Email         string
	ContactNumber string
}

// ValidateAccountForm mirrors the account page's field checks.
func ValidateAccountForm(f AccountForm) map[string]string {
	errs := make(map[string]string)
	if msg := ValidateUsername(f.Username); msg != "" {
		errs["username"] = msg
	}
	if msg := ValidateName(f.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidateEmail(f.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateContactNumber(f.ContactNumber); msg != "" {
		errs["contactNumber"] = msg
	}
	return errs
}

// SplitFullName splits a single full-name input at the first whitespace run.
func SplitFullName(name string) (firstName, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// NormalizeDate parses a transaction/coverage date in any accepted input
// shape and returns it as YYYY-MM-DD. Calendar-day identity is decided on
// this normalized form.
func NormalizeDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", trimmed)
}
