package services

import (
	"context"
	"errors"

	"github.com/mkarasev/loginapp/internal/logger"
	"github.com/mkarasev/loginapp/internal/models"
	"github.com/mkarasev/loginapp/internal/repositories"
)

// Error variables
var (
	// ErrMissingFields rejects registration before any store access.
	ErrMissingFields = errors.New("username, email, and password are required")

	// ErrUserAlreadyExists is deliberately generic: it never reveals
	// whether the username or the email collided.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserView, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, role string) error
}

// PasswordHasher hashes plain passwords and verifies them against
// stored hashes.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// AuthService handles registration and login. It is the only component
// that knows both the store and the hasher, and it is stateless.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
	}
}

// Register creates a new account. An empty role defaults to RoleUser.
// Duplicate username or email surfaces as ErrUserAlreadyExists; the
// store's uniqueness constraint is the single arbiter, there is no
// read-before-write.
func (svc *AuthService) Register(ctx context.Context, username, email, password, role string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}
	if role == "" {
		role = models.RoleUser
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, email, hash, role); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("registration rejected", "username", username)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Authenticate verifies the credentials and returns the sanitized view
// of the account. The hash, id and creation time never leave this
// method. An unknown username and a wrong password are indistinguishable
// by contract: both return ErrInvalidCredentials.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.UserView, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &models.UserView{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// ListUsers returns sanitized views of all accounts.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserView, error) {
	return svc.reader.List(ctx)
}
