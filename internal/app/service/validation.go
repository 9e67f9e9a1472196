package service

import (
	"unicode"

	"user_accounts/internal/common"
)

const passwordPolicyMessage = "password must be at least 6 characters, with 1 uppercase letter, 1 lowercase letter, and 1 digit"

// validateSignup applies the signup rules in order, stopping at the first
// failure. Email uniqueness is checked separately against the store.
func validateSignup(req SignupRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RepeatPassword == "" {
		return common.WithMessage(common.ErrValidation, "all fields are required")
	}
	if req.Password != req.RepeatPassword {
		return common.WithMessage(common.ErrValidation, "passwords do not match")
	}
	if !passwordMeetsPolicy(req.Password) {
		return common.WithMessage(common.ErrValidation, passwordPolicyMessage)
	}
	return nil
}

// passwordMeetsPolicy checks: minimum 6 characters, at least one digit, one
// lowercase letter, and one uppercase letter.
func passwordMeetsPolicy(password string) bool {
	var hasDigit, hasLower, hasUpper bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return length >= 6 && hasDigit && hasLower && hasUpper
}
