package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
)

// ===== Template Errors =====
var (
	ErrTemplateNotFound        = errors.New("fortune template not found")
	ErrTemplateBodyRequired    = errors.New("body is required")
	ErrNoFieldsToUpdate        = errors.New("at least one field must be provided")
	ErrNotTemplateOwner        = errors.New("not the owner of this template")
	ErrSystemTemplateImmutable = errors.New("system templates cannot be modified")
	ErrTemplateNotVisible      = errors.New("template is not visible to this user")
	ErrTemplateInactive        = errors.New("template is archived")
)

// ===== Session Errors =====
var (
	ErrSessionNotFound = errors.New("fortune session not found")
	ErrNotSessionOwner = errors.New("not the owner of this session")
)

// ===== Draw Errors =====
var (
	ErrInvalidPositionIndex = errors.New("position index must be a positive integer")
)
