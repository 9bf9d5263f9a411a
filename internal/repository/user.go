package repository

import (
	"context"
	"errors"
	"time"

	"github.com/srkarthi1982/fortune-teller/internal/database"
	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// UserRepository handles user account data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user and returns the stored record
func (r *UserRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
		CREATE user CONTENT {
			email: $email,
			username: $username,
			password_hash: $password_hash,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"email":         u.Email,
		"username":      u.Username,
		"password_hash": u.PasswordHash,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, database.ErrDuplicate
		}
		return nil, err
	}

	row, err := decodeFirst[userRow](result)
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

// GetByEmail retrieves a user by email, or nil if no account exists
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, err := decodeOne[userRow](result)
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

// GetByID retrieves a user by ID, or nil if it does not exist
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, err := decodeOne[userRow](result)
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

// userRow mirrors model.User with the password hash decodable. model.User
// hides password_hash from JSON, so rows decode through this shape first.
type userRow struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	CreatedOn    string `json:"created_on"`
}

func (row *userRow) toUser() *model.User {
	createdOn, err := time.Parse(time.RFC3339Nano, row.CreatedOn)
	if err != nil {
		createdOn, _ = time.Parse(time.RFC3339, row.CreatedOn)
	}
	return &model.User{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedOn:    createdOn,
	}
}
