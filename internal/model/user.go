package model

import "time"

// User represents an application user record as stored in the `users`
// table. The booking core never inspects users directly; it only
// receives the caller's ID and admin flag extracted from the JWT.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Name         – display name shown on reservations.
//  Organization – optional affiliation.
//  IsAdmin      – whether the user may review bookings and edit attendance.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           string    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Name         string    // users.name
	Organization string    // users.organization
	IsAdmin      bool      // users.is_admin
	CreatedAt    time.Time // users.created_at
}
