package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssue(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty string")
	}
}

func TestVerifyValid(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Verify() UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Verify() Username = %q, want %q", claims.Username, "alice")
	}
}

func TestVerifyMalformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-valid-token")
	if err == nil {
		t.Error("Verify() expected error for malformed token")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("correct-secret", time.Hour)
	verifier := NewTokenManager("wrong-secret", time.Hour)

	token, err := issuer.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	_, err = verifier.Verify(token)
	if err == nil {
		t.Error("Verify() expected error for wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret", time.Millisecond)

	token, err := m.Issue(42, "alice")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = m.Verify(token)
	if err == nil {
		t.Error("Verify() expected error for expired token")
	}
}

func TestVerifyWrongIssuer(t *testing.T) {
	secret := "test-secret"
	m := NewTokenManager(secret, time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{"notedeck-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   42,
		Username: "alice",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = m.Verify(tokenString)
	if err == nil {
		t.Error("Verify() expected error for wrong issuer")
	}
}

func TestVerifyWrongAudience(t *testing.T) {
	secret := "test-secret"
	m := NewTokenManager(secret, time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "notedeck",
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   42,
		Username: "alice",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = m.Verify(tokenString)
	if err == nil {
		t.Error("Verify() expected error for wrong audience")
	}
}
