// Package model defines the domain records for the fortune teller API:
// fortune templates, sessions, draws, and users, together with the
// request/response shapes handlers decode and the RFC 9457 ProblemDetails
// error model all failures are reported through.
//
// Records are plain structs with JSON tags matching the database field
// names. Optional fields use pointer types so "absent" is distinguishable
// from the zero value, which matters for partial updates and for draws
// without a template.
package model
