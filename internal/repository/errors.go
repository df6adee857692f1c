// Package repository implements the MySQL persistence layer. Sentinel
// errors defined here let handlers and the booking service distinguish
// failure scenarios without inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when registration collides with an
// existing account. Handlers translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the given
// credentials or ID.
var ErrUserNotFound = errors.New("user not found")
