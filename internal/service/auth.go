package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/pkg/token"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// TokenSigner signs access tokens for authenticated users
type TokenSigner interface {
	Sign(claims token.Claims) (string, error)
}

// AuthService handles account registration and login. It is the identity
// provider for the rest of the API: every other operation only ever sees
// the user ID the auth middleware extracted from a token this service
// issued.
type AuthService struct {
	userRepo UserRepository
	signer   TokenSigner
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Signer   TokenSigner
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		signer:   cfg.Signer,
	}
}

// Register creates a new account and returns a signed token for it
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Email:        email,
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.respond(user)
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *AuthService) respond(user *model.User) (*model.AuthResponse, error) {
	signed, err := s.signer.Sign(token.Claims{
		Subject: user.ID,
		UserID:  user.ID,
		Email:   user.Email,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: signed, User: user}, nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < 8:
		return ErrPasswordTooShort
	// bcrypt truncates at 72 bytes; reject rather than silently truncate
	case len(password) > 72:
		return ErrPasswordTooLong
	}
	return nil
}
