package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
)

// ErrDuplicate is returned by Save when the username or email collides
// with an existing record. Driver error types never cross this boundary.
var ErrDuplicate = errors.New("username or email already exists")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the full record including the password hash, or
// (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE username = ?
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Debugw("store query",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns sanitized views of all users ordered by id.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserView, error) {
	const query = `SELECT username, email, role FROM users ORDER BY id`

	var users []models.UserView
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user record. A UNIQUE violation on username or
// email is reported as ErrDuplicate. The insert either fully wins or
// fully fails on the constraint, so concurrent registrations of the
// same username need no application-level locking.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash, role string) error {
	const query = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, username, email, passwordHash, role)

	logger.Log.Debugw("store insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicate
		}
		return err
	}

	return nil
}
