package util

import (
	"testing"
)

func TestIsGmailAddress_Valid(t *testing.T) {
	testCases := []string{
		"jdoe@gmail.com",
		"JDOE@GMAIL.COM",
		"first.last+tag@gmail.com",
		"  jdoe@gmail.com  ",
	}

	for _, email := range testCases {
		if !IsGmailAddress(email) {
			t.Errorf("IsGmailAddress(%q) = false, want true", email)
		}
	}
}

func TestIsGmailAddress_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"jdoe@yahoo.com",
		"jdoe@gmail.com.ph",
		"jd oe@gmail.com",
		"@gmail.com",
		"jdoe@gmailcom",
	}

	for _, email := range testCases {
		if IsGmailAddress(email) {
			t.Errorf("IsGmailAddress(%q) = true, want false", email)
		}
	}
}

func TestValidateContactNumber(t *testing.T) {
	if msg := ValidateContactNumber("09171234567"); msg != "" {
		t.Errorf("ValidateContactNumber(valid) = %q, want empty", msg)
	}

	invalid := []string{"", "0917123456", "091712345678", "0917-123-456", "abcdefghijk"}
	for _, contact := range invalid {
		if msg := ValidateContactNumber(contact); msg == "" {
			t.Errorf("ValidateContactNumber(%q) = empty, want error", contact)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"jdoe1", "user_name", "ABC", "a2345678901234567890"}
	for _, username := range valid {
		if msg := ValidateUsername(username); msg != "" {
			t.Errorf("ValidateUsername(%q) = %q, want empty", username, msg)
		}
	}

	invalid := []string{"", "ab", "a23456789012345678901", "bad name", "näme"}
	for _, username := range invalid {
		if msg := ValidateUsername(username); msg == "" {
			t.Errorf("ValidateUsername(%q) = empty, want error", username)
		}
	}
}

func TestValidatePlate(t *testing.T) {
	valid := []string{"ABC12345", "NBC1234", "123456"}
	for _, plate := range valid {
		if msg := ValidatePlate(plate); msg != "" {
			t.Errorf("ValidatePlate(%q) = %q, want empty", plate, msg)
		}
	}

	invalid := []string{"", "AB-1234", "abc12345", "ABCDE", "ABC123456"}
	for _, plate := range invalid {
		if msg := ValidatePlate(plate); msg == "" {
			t.Errorf("ValidatePlate(%q) = empty, want error", plate)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	valid := []string{"Password1", "Aa345678", "LongerPassw0rd"}
	for _, pwd := range valid {
		if !IsStrongPassword(pwd) {
			t.Errorf("IsStrongPassword(%q) = false, want true", pwd)
		}
	}

	invalid := []string{"", "short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, pwd := range invalid {
		if IsStrongPassword(pwd) {
			t.Errorf("IsStrongPassword(%q) = true, want false", pwd)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	if got := SanitizeName("J0hn D03"); got != "Jhn D" {
		t.Errorf("SanitizeName = %q, want %q", got, "Jhn D")
	}
}

func TestSanitizeContactNumber(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0917-123-4567", "09171234567"},
		{"0917123456789", "09171234567"}, // capped at 11
		{"abc", ""},
	}

	for _, tc := range testCases {
		if got := SanitizeContactNumber(tc.in); got != tc.want {
			t.Errorf("SanitizeContactNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeVehicleField(t *testing.T) {
	if got := SanitizeVehicleField("  abc12345 "); got != "ABC12345" {
		t.Errorf("SanitizeVehicleField = %q, want ABC12345", got)
	}
}

func TestSplitFullName(t *testing.T) {
	testCases := []struct {
		in        string
		wantFirst string
		wantLast  string
	}{
		{"John Doe", "John", "Doe"},
		{"John", "John", ""},
		{"  John   Michael Doe  ", "John", "Michael Doe"},
		{"", "", ""},
	}

	for _, tc := range testCases {
		first, last := SplitFullName(tc.in)
		if first != tc.wantFirst || last != tc.wantLast {
			t.Errorf("SplitFullName(%q) = (%q, %q), want (%q, %q)",
				tc.in, first, last, tc.wantFirst, tc.wantLast)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "2024-03-01"},
		{"2024-03-01T18:30:00", "2024-03-01"},
		{"2024-03-01T18:30:00+08:00", "2024-03-01"},
		{"  2024-03-01  ", "2024-03-01"},
	}

	for _, tc := range testCases {
		got, err := NormalizeDate(tc.in)
		if err != nil {
			t.Errorf("NormalizeDate(%q) error = %v, want nil", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	invalid := []string{"", "03/01/2024", "2024-13-01", "not-a-date"}
	for _, in := range invalid {
		if _, err := NormalizeDate(in); err == nil {
			t.Errorf("NormalizeDate(%q) error = nil, want error", in)
		}
	}
}

func TestValidateRegistrationForm(t *testing.T) {
	form := RegistrationForm{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           "jdoe@gmail.com",
		ContactNumber:   "09171234567",
		Username:        "jdoe1",
		Password:        "Password1",
		ConfirmPassword: "Password1",
	}
	if errs := ValidateRegistrationForm(form); len(errs) != 0 {
		t.Errorf("valid form produced errors: %v", errs)
	}

	mismatched := form
	mismatched.ConfirmPassword = "Password2"
	errs := ValidateRegistrationForm(mismatched)
	if errs["confirmPassword"] == "" {
		t.Error("mismatched passwords not flagged")
	}

	empty := RegistrationForm{}
	errs = ValidateRegistrationForm(empty)
	for _, field := range []string{"firstName", "lastName", "email", "contactNumber", "username", "password", "confirmPassword"} {
		if errs[field] == "" {
			t.Errorf("empty form missing error for %s", field)
		}
	}
}

func TestValidateAccountForm(t *testing.T) {
	form := AccountForm{
		Username:      "jdoe1",
		Name:          "John Doe",
		Email:         "jdoe@gmail.com",
		ContactNumber: "09171234567",
	}
	if errs := ValidateAccountForm(form); len(errs) != 0 {
		t.Errorf("valid form produced errors: %v", errs)
	}

	withDigits := form
	withDigits.Name = "John D03"
	if errs := ValidateAccountForm(withDigits); errs["name"] == "" {
		t.Error("name with digits not flagged")
	}
}
