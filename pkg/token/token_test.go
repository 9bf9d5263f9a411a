package token

import (
	"crypto/rand"
	"crypto/rsa"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", 15*time.Minute)
}

func newTestServiceWithExpiration(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", expiration)
}

// ============================================================================
// Claims.Valid() Tests
// ============================================================================

func TestClaims_Valid_NoExpiration_ReturnsNil(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID: "user:123",
		Email:  "test@example.com",
	}

	if err := claims.Valid(); err != nil {
		t.Errorf("expected no error for claims without expiration, got %v", err)
	}
}

func TestClaims_Valid_Expired_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestClaims_Valid_NotYetValid_ReturnsErrTokenNotYetValid(t *testing.T) {
	t.Parallel()
	claims := Claims{
		UserID:    "user:123",
		NotBefore: time.Now().Add(1 * time.Hour).Unix(),
	}

	if err := claims.Valid(); err != ErrTokenNotYetValid {
		t.Errorf("expected ErrTokenNotYetValid, got %v", err)
	}
}

// ============================================================================
// Sign / Validate Tests
// ============================================================================

func TestSign_ProducesThreePartToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	signed, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts := strings.Split(signed, "."); len(parts) != 3 {
		t.Errorf("expected header.claims.signature, got %d parts", len(parts))
	}
}

func TestSign_WithoutPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	svc := &Service{publicKey: &privateKey.PublicKey, issuer: "test-issuer"}

	if _, err := svc.Sign(Claims{UserID: "user:123"}); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	signed, err := svc.Sign(Claims{
		Subject: "user:123",
		UserID:  "user:123",
		Email:   "test@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("unexpected error validating: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected user:123, got %q", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("expected email round-tripped, got %q", claims.Email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer set by signer, got %q", claims.Issuer)
	}
	if claims.ExpiresAt == 0 {
		t.Error("expected expiration set from service default")
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc := newTestServiceWithExpiration(t, -1*time.Hour)

	signed, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	if _, err := svc.Validate(signed); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	signed, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	parts := strings.Split(signed, ".")
	parts[1] = encodeSegment([]byte(`{"user_id":"user:999","iss":"test-issuer"}`))
	tampered := strings.Join(parts, ".")

	if _, err := svc.Validate(tampered); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_WrongKey(t *testing.T) {
	t.Parallel()
	signer := newTestService(t)
	verifier := newTestService(t)

	signed, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	if _, err := verifier.Validate(signed); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature for foreign key, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	signer := NewTestService(privateKey, "other-issuer", 15*time.Minute)
	verifier := NewTestService(privateKey, "test-issuer", 15*time.Minute)

	signed, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	if _, err := verifier.Validate(signed); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for issuer mismatch, got %v", err)
	}
}

func TestValidate_MalformedTokens(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"no dots", "nodots"},
		{"two parts", "a.b"},
		{"four parts", "a.b.c.d"},
		{"garbage segments", "!!!.???.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.Validate(tt.token); err == nil {
				t.Error("expected error for malformed token")
			}
		})
	}
}

// ============================================================================
// Key File Tests
// ============================================================================

func TestGenerateKeyPair_RoundTripThroughFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	svc, err := NewService(Config{
		PrivateKeyPath: privatePath,
		PublicKeyPath:  publicPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to build service from key files: %v", err)
	}

	signed, err := svc.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}
	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("unexpected error validating: %v", err)
	}
	if claims.UserID != "user:123" {
		t.Errorf("expected user:123, got %q", claims.UserID)
	}
}

func TestNewService_MissingKeyFile(t *testing.T) {
	t.Parallel()
	_, err := NewService(Config{
		PrivateKeyPath: filepath.Join(t.TempDir(), "missing.pem"),
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err == nil {
		t.Error("expected error for missing key file")
	}
}

func TestNewService_VerifyOnly(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(privatePath, publicPath); err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	signer, err := NewService(Config{
		PrivateKeyPath: privatePath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to build signer: %v", err)
	}
	verifier, err := NewService(Config{
		PublicKeyPath:  publicPath,
		Issuer:         "test-issuer",
		ExpirationMins: 15,
	})
	if err != nil {
		t.Fatalf("failed to build verifier: %v", err)
	}

	signed, err := signer.Sign(Claims{UserID: "user:123"})
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}
	if _, err := verifier.Validate(signed); err != nil {
		t.Errorf("verify-only service should validate, got %v", err)
	}
	if _, err := verifier.Sign(Claims{UserID: "user:123"}); err != ErrInvalidKey {
		t.Errorf("verify-only service must refuse to sign, got %v", err)
	}
}
