package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := New(WithCost(bcrypt.MinCost))

	hash, err := h.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestHasher_SamePasswordDifferentHashes(t *testing.T) {
	h := New(WithCost(bcrypt.MinCost))

	hash1, err := h.Hash("secret1")
	assert.NoError(t, err)
	hash2, err := h.Hash("secret1")
	assert.NoError(t, err)

	// Fresh salt per call means the outputs differ, yet both verify.
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, h.Verify("secret1", hash1))
	assert.True(t, h.Verify("secret1", hash2))
}

func TestHasher_VerifyMalformedHash(t *testing.T) {
	h := New(WithCost(bcrypt.MinCost))

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"plain password stored by mistake", "secret1"},
		{"truncated prefix", "$2a$10$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret1", tt.hash))
		})
	}
}

func TestHasher_DefaultCost(t *testing.T) {
	h := New()

	hash, err := h.Hash("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
