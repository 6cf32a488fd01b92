package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("unexpected hash format: %q", hashed)
	}

	// empty password is rejected
	if _, err := HashPassword("", 4); err == nil {
		t.Error("empty password should return an error")
	}

	// same password hashes differently (random salt)
	hashed2, _ := HashPassword(password, 4)
	if hashed == hashed2 {
		t.Error("same password should produce different hashes")
	}

	// out-of-range cost falls back to the default
	if _, err := HashPassword(password, 99); err != nil {
		t.Errorf("out-of-range cost should fall back, got error: %v", err)
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, _ := HashPassword(password, 4)

	if !CheckPassword(password, hashed) {
		t.Error("correct password failed verification")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("wrong password passed verification")
	}
	if CheckPassword("", hashed) {
		t.Error("empty password passed verification")
	}
	if CheckPassword(password, "") {
		t.Error("empty hash passed verification")
	}
	if CheckPassword(password, "invalid-format") {
		t.Error("invalid hash format passed verification")
	}
}
