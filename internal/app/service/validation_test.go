package service

import "testing"

func TestPasswordMeetsPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid minimal", "Abcde1", true},
		{"valid long", "CorrectHorse7battery", true},
		{"too short", "Ab1de", false},
		{"no digit", "Abcdef", false},
		{"no lowercase", "ABCDE1", false},
		{"no uppercase", "abc123", false},
		{"empty", "", false},
		{"digits only", "123456", false},
		{"unicode letters count toward length", " Павел1a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passwordMeetsPolicy(tt.password); got != tt.want {
				t.Errorf("passwordMeetsPolicy(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateSignupOrder(t *testing.T) {
	// A request failing several rules must report the first one.
	req := SignupRequest{
		Name:           "Alice",
		Email:          "alice@example.com",
		Password:       "weak",
		RepeatPassword: "different",
	}
	err := validateSignup(req)
	if err == nil || err.Error() != "passwords do not match" {
		t.Errorf("error = %v, want the mismatch failure before the policy check", err)
	}
}
