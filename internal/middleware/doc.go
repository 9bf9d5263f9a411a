// Package middleware provides HTTP middleware for the fortune teller API.
//
// # Available Middleware
//
//   - RequestID: correlation ID per request (generated or propagated)
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a Problem Details 500 response
//   - CORS: origin allow-listing and preflight handling
//   - Auth / OptionalAuth: bearer token validation and user extraction
//
// # Authentication
//
// Auth rejects requests without a valid token; OptionalAuth lets them
// through anonymously. Either way, handlers read the caller with:
//
//	userID := middleware.GetUserID(r.Context())
//
// An empty user ID behind OptionalAuth means an anonymous caller.
package middleware
