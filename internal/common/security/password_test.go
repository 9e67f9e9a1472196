package security

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("hash should start with $2a$ or $2b$, got: %s", hash)
	}
	if hash == "Secret1A" {
		t.Error("hash must not equal the plaintext")
	}
}

func TestHashPasswordUnique(t *testing.T) {
	hash1, _ := HashPassword("Secret1A")
	hash2, _ := HashPassword("Secret1A")
	if hash1 == hash2 {
		t.Error("hashes should be unique due to random salt")
	}
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("Secret1A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "Secret1A", true},
		{"wrong password", "Secret1B", false},
		{"empty password", "", false},
		{"case differs", "secret1a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPasswordHash(tt.password, hash); got != tt.want {
				t.Errorf("CheckPasswordHash(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestCheckPasswordHashInvalidHash(t *testing.T) {
	if CheckPasswordHash("Secret1A", "not-a-hash") {
		t.Error("malformed hash must never verify")
	}
}
