// Package token implements RS256-signed access tokens for the fortune
// teller API. Tokens are standard JWTs carrying the user ID; the auth
// middleware validates them and threads the user ID into request context.
package token

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenNotYetValid = errors.New("token not yet valid")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKey       = errors.New("invalid key")
)

// Claims represents the token payload
type Claims struct {
	// Standard claims
	Issuer    string `json:"iss,omitempty"`
	Subject   string `json:"sub,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`

	// Custom claims
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Valid checks the time-based claims
func (c *Claims) Valid() error {
	now := time.Now().Unix()

	if c.ExpiresAt != 0 && now > c.ExpiresAt {
		return ErrTokenExpired
	}
	if c.NotBefore != 0 && now < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}

// Service signs and validates tokens
type Service struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	expiration time.Duration
}

// Config holds token service configuration
type Config struct {
	PrivateKeyPath string
	PublicKeyPath  string
	Issuer         string
	ExpirationMins int
}

// NewService creates a token service from PEM key files. A service built
// with only a public key can validate but not sign.
func NewService(cfg Config) (*Service, error) {
	var privateKey *rsa.PrivateKey
	var publicKey *rsa.PublicKey
	var err error

	if cfg.PrivateKeyPath != "" {
		privateKey, err = readPrivateKey(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load private key: %w", err)
		}
		publicKey = &privateKey.PublicKey
	}

	if cfg.PublicKeyPath != "" && publicKey == nil {
		publicKey, err = readPublicKey(cfg.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load public key: %w", err)
		}
	}

	return &Service{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     cfg.Issuer,
		expiration: time.Duration(cfg.ExpirationMins) * time.Minute,
	}, nil
}

// NewTestService creates a token service with an in-memory key for testing
func NewTestService(privateKey *rsa.PrivateKey, issuer string, expiration time.Duration) *Service {
	return &Service{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		issuer:     issuer,
		expiration: expiration,
	}
}

// GenerateKeyPair generates a new RSA key pair and writes it to PEM files
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
	if err := os.WriteFile(privateKeyPath, privatePEM, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	publicBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return fmt.Errorf("failed to marshal public key: %w", err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicBytes,
	})
	if err := os.WriteFile(publicKeyPath, publicPEM, 0644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	return nil
}

// Sign creates a signed token from the given claims
func (s *Service) Sign(claims Claims) (string, error) {
	if s.privateKey == nil {
		return "", ErrInvalidKey
	}

	now := time.Now()
	claims.Issuer = s.issuer
	claims.IssuedAt = now.Unix()
	claims.NotBefore = now.Unix()
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = now.Add(s.expiration).Unix()
	}

	headerJSON, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	message := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	hash := sha256.Sum256([]byte(message))

	signature, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, crypto.SHA256, hash[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}

	return message + "." + encodeSegment(signature), nil
}

// Validate checks a token's signature and claims and returns the claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	if s.publicKey == nil {
		return nil, ErrInvalidKey
	}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	message := parts[0] + "." + parts[1]
	hash := sha256.Sum256([]byte(message))

	signature, err := decodeSegment(parts[2])
	if err != nil {
		return nil, ErrInvalidToken
	}
	if err := rsa.VerifyPKCS1v15(s.publicKey, crypto.SHA256, hash[:], signature); err != nil {
		return nil, ErrInvalidSignature
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if err := claims.Valid(); err != nil {
		return nil, err
	}
	if claims.Issuer != s.issuer {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

func readPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block")
	}

	return x509.ParsePKCS1PrivateKey(block.Bytes)
}

func readPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaPub, nil
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
