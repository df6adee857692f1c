package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venuedesk/venue-reservation/internal/model"
	"github.com/venuedesk/venue-reservation/internal/utils"
)

// UserRepo persists user accounts. The booking core never touches this
// directly; it exists so the identity layer can mint {callerId, isAdmin}
// for every request.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a new UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user with a bcrypt-hashed password and returns
// the generated ID. ErrEmailExists is returned on duplicate email.
func (r *UserRepo) Create(ctx context.Context, email, password, name, organization string, isAdmin bool, bcryptCost int) (string, error) {
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	const q = `INSERT INTO users (id, email, password_hash, name, organization, is_admin, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, id, email, hash, name, organization, isAdmin, time.Now().UTC()); err != nil {
		// MySQL duplicate-key errors carry code 1062; matching on the
		// message avoids importing the driver's error type here.
		if strings.Contains(err.Error(), "1062") || strings.Contains(err.Error(), "Duplicate entry") {
			return "", ErrEmailExists
		}
		return "", err
	}
	return id, nil
}

// FindByEmail returns the user with the given email, or ErrUserNotFound.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, name, organization, is_admin, created_at
	           FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// FindByID returns the user with the given ID, or ErrUserNotFound.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, name, organization, is_admin, created_at
	           FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepo) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	var organization sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &organization, &u.IsAdmin, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if organization.Valid {
		u.Organization = organization.String
	}
	return &u, nil
}
