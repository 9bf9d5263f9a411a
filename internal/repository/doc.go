// Package repository implements data access for fortune templates, sessions,
// draws, and users over the database.Database interface.
//
// Each repository owns the SurrealDB queries for one table. Rows come back
// as loosely-typed maps; the shared decode helpers normalize SurrealDB
// record IDs and datetimes and unmarshal rows into model structs.
//
// GetByID methods return (nil, nil) for a missing record so the service
// layer can map absence to its own not-found error; all other failures are
// returned wrapped from the database package.
package repository
