package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := NewAccessToken("test-secret", userID, 2)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token.Token == "" {
		t.Fatal("expected a signed token")
	}
	if until := time.Until(token.ExpiresAt); until < time.Hour || until > 2*time.Hour {
		t.Fatalf("unexpected expiry %s", token.ExpiresAt)
	}

	parsed, err := ParseAccessToken("test-secret", token.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if parsed != userID {
		t.Fatalf("parsed user %s, want %s", parsed, userID)
	}
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, err := NewAccessToken("test-secret", uuid.New(), 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := ParseAccessToken("other-secret", token.Token); err == nil {
		t.Fatal("expected a signature error")
	}
}

func TestAccessToken_Garbage(t *testing.T) {
	if _, err := ParseAccessToken("test-secret", "not.a.jwt"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("stellar1")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "stellar1" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("stellar1", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Fatal("wrong password accepted")
	}
}
