package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAlreadyExists      = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	// Session errors
	ErrNoActiveSession      = errors.New("no active session")
	ErrAlreadyAuthenticated = errors.New("already signed in")

	// Game result errors
	ErrUnknownGame  = errors.New("unknown game")
	ErrInvalidScore = errors.New("score must not be negative")

	// Game round errors
	ErrRoundNotActive = errors.New("round is not in progress")
	ErrInvalidChoice  = errors.New("invalid choice")
)
