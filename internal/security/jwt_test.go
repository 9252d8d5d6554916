package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateValidateRoundtrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Generate("acc-123", "student")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if claims.Subject != "acc-123" {
		t.Errorf("expected subject 'acc-123', got %q", claims.Subject)
	}
	if claims.Role != "student" {
		t.Errorf("expected role 'student', got %q", claims.Role)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 || remaining > TokenTTL {
		t.Errorf("expected expiry within %v from now, got %v", TokenTTL, remaining)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate("acc-123", "student")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewTokenManager("secret-b").Validate(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	m := NewTokenManager("test-secret")
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Validate(tok); err == nil {
			t.Errorf("expected error for malformed token %q", tok)
		}
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		Role: "student",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc-123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := NewTokenManager(secret).Validate(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestValidateRejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none token with an empty signature
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "acc-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, err := NewTokenManager("test-secret").Validate(signed); err == nil {
		t.Fatal("expected error for alg=none token")
	}
}

func TestHashAndCompare(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if err := h.Compare(hash, "secret"); err != nil {
		t.Errorf("Compare rejected the correct password: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Error("Compare accepted the wrong password")
	}
}

func TestHashIsSaltedPerPassword(t *testing.T) {
	h := NewPasswordHasher()
	a, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ (per-password salt)")
	}
}
