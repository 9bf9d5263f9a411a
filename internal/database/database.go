// Package database provides the record store abstraction for the fortune
// teller API.
//
// The Database interface abstracts SurrealDB behind three query methods:
//   - Query: returns multiple results (SELECT returning lists)
//   - QueryOne: returns a single result (SELECT by ID)
//   - Execute: no return value (mutations whose result is discarded)
//
// No operation in this API performs more than one mutating store call, so
// there is no transaction surface; atomicity of single-row insert/update is
// delegated to SurrealDB itself.
//
// Standard errors are defined for common failure cases and should be checked
// with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate email).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for record store operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
