package user

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com", "0600000001", true)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, "alice@example.com", u.Email())
	assert.True(t, u.IsProjectOwner())
	assert.Zero(t, u.ID())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		uname string
		email string
		phone string
	}{
		{"missing name", "", "a@b.c", "0600"},
		{"missing email", "Alice", "", "0600"},
		{"malformed email", "Alice", "not-an-email", "0600"},
		{"missing phone", "Alice", "a@b.c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.uname, tt.email, tt.phone, false)
			assert.Error(t, err)
		})
	}
}

func TestUser_PasswordLifecycle(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com", "0600000001", false)
	require.NoError(t, err)

	hasher := fakeHasher{}

	assert.Error(t, u.SetPassword("short", hasher), "below minimum length")
	require.NoError(t, u.SetPassword("secret123", hasher))

	assert.NoError(t, u.VerifyPassword("secret123", hasher))
	assert.Error(t, u.VerifyPassword("wrong", hasher))

	assert.Error(t, u.ChangePassword("wrong", "newsecret", hasher))
	assert.Error(t, u.ChangePassword("secret123", "tiny", hasher))
	require.NoError(t, u.ChangePassword("secret123", "newsecret", hasher))
	assert.NoError(t, u.VerifyPassword("newsecret", hasher))
}

func TestUser_UpdateProfile_MergeSemantics(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com", "0600000001", false)
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("", "", "0700000002", ""))
	assert.Equal(t, "Alice", u.Name(), "absent field unchanged")
	assert.Equal(t, "alice@example.com", u.Email(), "absent field unchanged")
	assert.Equal(t, "0700000002", u.Phone())

	assert.Error(t, u.UpdateProfile("", "garbage", "", ""))
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("Alice", "alice@example.com", "0600000001", false)
	require.NoError(t, err)

	require.NoError(t, u.SetID(7))
	assert.Error(t, u.SetID(8), "ID is assigned once")
	assert.Equal(t, uint(7), u.ID())
}
