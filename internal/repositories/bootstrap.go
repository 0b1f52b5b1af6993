package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
)

// Seed admin account created the first time the store comes up empty.
const (
	SeedAdminUsername = "admin"
	SeedAdminEmail    = "admin@example.com"
)

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
`

// PasswordHasher is the subset of the hasher Bootstrap needs to seed
// the admin account.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Bootstrap idempotently creates the users table and, only if the table
// is empty, inserts the seed admin account with the given password.
// Safe to call on every process start: after the first run it performs
// no writes.
func Bootstrap(ctx context.Context, db *sqlx.DB, hasher PasswordHasher, adminPassword string) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return err
	}

	logger.Log.Infow("empty user store, seeding admin account",
		"username", SeedAdminUsername,
	)

	_, err = db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES (?, ?, ?, ?)`,
		SeedAdminUsername, SeedAdminEmail, hash, models.RoleAdmin,
	)
	return err
}
