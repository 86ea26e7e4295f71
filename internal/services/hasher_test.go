package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Pw1!aaaa")
	require.NoError(t, err)
	assert.NotEqual(t, "Pw1!aaaa", hash)

	assert.NoError(t, h.Compare(hash, "Pw1!aaaa"))
	assert.Error(t, h.Compare(hash, "wrong"))
	assert.Error(t, h.Compare("not-a-hash", "Pw1!aaaa"))
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash(strings.Repeat("p", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, hash)

	_, err = h.Hash(strings.Repeat("p", 72))
	assert.NoError(t, err)
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestRandomHex(t *testing.T) {
	a, err := randomHex(verificationCodeBytes)
	require.NoError(t, err)
	b, err := randomHex(verificationCodeBytes)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

func TestClampNickname(t *testing.T) {
	long := strings.Repeat("닉", maxNicknameLen+10)

	assert.Equal(t, "bee", clampNickname("bee"))
	assert.Equal(t, strings.Repeat("닉", maxNicknameLen), clampNickname(long))
	assert.Equal(t, maxNicknameLen, utf8.RuneCountInString(clampNickname(long)))
}

func TestDefaultNickname(t *testing.T) {
	assert.Equal(t, "alice", defaultNickname("alice@example.com"))
	assert.Equal(t, "bob", defaultNickname("bob"))
}
