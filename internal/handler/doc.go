// Package handler provides HTTP request handlers for the fortune teller API.
//
// Each handler struct encapsulates the service it serves requests for:
// authentication, fortune templates, sessions and draws, and health.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service sentinel errors are mapped to RFC 9457 Problem Details
//
// # Response Format
//
//   - WriteData: resource wrapped in a {"data": ...} envelope
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//   - WriteNoContent: empty 204 response
//
// # Authentication
//
// Mutating handlers require authentication; the auth middleware extracts
// the user ID and handlers read it with middleware.GetUserID. Template
// listing uses OptionalAuth, so an empty user ID there means an anonymous
// caller rather than a failure.
package handler
