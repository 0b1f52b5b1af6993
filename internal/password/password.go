// Package password wraps bcrypt for credential storage.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies passwords with bcrypt. A fresh random salt
// is generated on every Hash call and travels embedded in the output, so
// verification needs no separate salt storage.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost factor. Values outside the range bcrypt
// accepts are left to bcrypt to reject.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// New creates a Hasher with bcrypt.DefaultCost unless overridden.
func New(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the bcrypt hash of plain. Hashing the same input twice
// yields different outputs because of the per-call salt.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches hash. Malformed or foreign hash
// input is a verification failure, never an error.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
