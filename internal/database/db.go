package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/venuedesk/venue-reservation/internal/model"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables the service needs if they do not
// exist yet. Times are stored as zero-padded HH:MM strings so the
// overlap predicate in SQL compares chronologically.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            VARCHAR(36)  NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name          VARCHAR(255) NOT NULL,
			organization  VARCHAR(255) NOT NULL DEFAULT '',
			is_admin      TINYINT(1)   NOT NULL DEFAULT 0,
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS venues (
			id       VARCHAR(36)  NOT NULL,
			name     VARCHAR(255) NOT NULL,
			capacity INT          NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id                     VARCHAR(36)  NOT NULL,
			venue_id               VARCHAR(36)  NOT NULL,
			owner_id               VARCHAR(36)  NOT NULL,
			purpose                VARCHAR(512) NOT NULL,
			date                   CHAR(10)     NOT NULL,
			start_time             CHAR(5)      NOT NULL,
			end_time               CHAR(5)      NOT NULL,
			participant_count      INT          NOT NULL,
			organizer_name         VARCHAR(255) NOT NULL,
			organizer_organization VARCHAR(255) NOT NULL DEFAULT '',
			status                 VARCHAR(16)  NOT NULL DEFAULT 'pending',
			attendance             JSON         NULL,
			created_at             DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at             DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_reservations_slot (venue_id, date, start_time),
			KEY idx_reservations_owner (owner_id),
			CONSTRAINT fk_reservations_venue FOREIGN KEY (venue_id) REFERENCES venues (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DefaultVenues is the seeded venue catalogue. All capacities sit at or
// below the global participant ceiling of 20.
var DefaultVenues = []model.Venue{
	{ID: "1", Name: "Conference Room A", Capacity: 20},
	{ID: "2", Name: "Conference Room B", Capacity: 15},
	{ID: "3", Name: "Meeting Room 1", Capacity: 8},
	{ID: "4", Name: "Meeting Room 2", Capacity: 6},
	{ID: "5", Name: "Main Hall", Capacity: 20},
}

// SeedVenues inserts the default venues once. Existing rows are left
// untouched so capacities can be adjusted in the database without being
// clobbered on restart; seeding happens exactly here, never on reads.
func SeedVenues(ctx context.Context, db *sql.DB) error {
	const q = `INSERT INTO venues (id, name, capacity) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE id = id`
	for _, v := range DefaultVenues {
		if _, err := db.ExecContext(ctx, q, v.ID, v.Name, v.Capacity); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
	}
	return nil
}
