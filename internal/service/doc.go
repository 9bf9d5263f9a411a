// Package service implements the business rules of the fortune teller API.
//
// Services sit between handlers and repositories: handlers decode input and
// hand over the caller's user ID, services enforce authorization and
// validation ordering, repositories run queries. The caller identity is
// always an explicit parameter, never ambient state, so every ownership
// check is visible at the call site and testable without HTTP.
//
// All errors services return are sentinel values from errors.go; handlers
// match them with errors.Is and map them to ProblemDetails responses.
package service
