package models

import "testing"

func TestNewUserHashesPassword(t *testing.T) {
	user, err := NewUser(UserSignupRequest{Username: "ada", Email: "ada@chromix.example", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID == "" || user.Kind != Designer || !user.Approved {
		t.Errorf("unexpected defaults %+v", user)
	}
	if user.HashedPassword == "correct-horse" {
		t.Fatal("password stored in plain text")
	}
	if err := user.CheckPassword("correct-horse"); err != nil {
		t.Errorf("expected password to match: %v", err)
	}
	if err := user.CheckPassword("wrong"); err == nil {
		t.Error("expected mismatch for wrong password")
	}
}

func TestValidateTheme(t *testing.T) {
	for _, theme := range []string{ThemeLight, ThemeDark} {
		if err := ValidateTheme(theme); err != nil {
			t.Errorf("%s should be valid: %v", theme, err)
		}
	}
	if err := ValidateTheme("sepia"); err == nil {
		t.Error("sepia should be rejected")
	}
}
