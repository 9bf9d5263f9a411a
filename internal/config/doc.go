// Package config manages application configuration for the fortune teller
// API.
//
// Configuration is loaded from environment variables with sensible
// development defaults and validated once at startup:
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, env, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - TokenConfig: access token signing settings
//
// # Key Environment Variables
//
//	SERVER_PORT             - HTTP server port (default: 8080)
//	SERVER_ENV              - development, production, or test
//	CORS_ALLOWED_ORIGINS    - comma-separated origin list
//	DB_HOST / DB_PORT       - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE
//	DB_USER / DB_PASSWORD
//	TOKEN_PRIVATE_KEY_PATH  - RS256 private key PEM (required in production)
//	TOKEN_PUBLIC_KEY_PATH   - RS256 public key PEM (required in production)
//	TOKEN_EXPIRATION_MINS   - access token lifetime
//	TOKEN_ISSUER            - issuer claim for signed tokens
package config
