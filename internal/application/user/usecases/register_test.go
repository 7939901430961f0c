package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/user"
	apperrors "bugtrail/internal/shared/errors"
)

func TestRegisterUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(repo *mockUserRepo) *RegisterUseCase {
		return NewRegisterUseCase(repo, fakeHasher{}, &fakeTokenService{}, testLogger())
	}

	t.Run("register issues a token", func(t *testing.T) {
		repo := &mockUserRepo{}

		result, err := newUseCase(repo).Execute(ctx, RegisterCommand{
			Name:     "Alice",
			Email:    "alice@example.com",
			Phone:    "111",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotZero(t, result.User.ID())
		assert.Equal(t, "token-1", result.Token)
		assert.NotEqual(t, "secret123", result.User.PasswordHash())
	})

	t.Run("existing email or phone conflicts", func(t *testing.T) {
		repo := &mockUserRepo{
			existsByEmailOrPhoneFn: func(ctx context.Context, email, phone string) (bool, error) {
				return true, nil
			},
		}

		_, err := newUseCase(repo).Execute(ctx, RegisterCommand{
			Name:     "Alice",
			Email:    "alice@example.com",
			Phone:    "111",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("short password rejected", func(t *testing.T) {
		repo := &mockUserRepo{}

		_, err := newUseCase(repo).Execute(ctx, RegisterCommand{
			Name:     "Alice",
			Email:    "alice@example.com",
			Phone:    "111",
			Password: "12345",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("registered credentials log in", func(t *testing.T) {
		var stored *user.User
		repo := &mockUserRepo{
			saveFunc: func(ctx context.Context, u *user.User) error {
				stored = u
				return u.SetID(7)
			},
			findByEmailOrPhoneFunc: func(ctx context.Context, identifier string) (*user.User, error) {
				if stored != nil && (identifier == stored.Email() || identifier == stored.Phone()) {
					return stored, nil
				}
				return nil, nil
			},
		}

		_, err := newUseCase(repo).Execute(ctx, RegisterCommand{
			Name:     "Bob",
			Email:    "bob@example.com",
			Phone:    "222",
			Password: "secret123",
		})
		require.NoError(t, err)

		login := NewLoginUseCase(repo, fakeHasher{}, &fakeTokenService{}, testLogger())

		byEmail, err := login.Execute(ctx, LoginCommand{Username: "bob@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "token-7", byEmail.Token)

		byPhone, err := login.Execute(ctx, LoginCommand{Username: "222", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, byEmail.Token, byPhone.Token)
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("reset replaces the digest", func(t *testing.T) {
		existing := testUser("Carol", "carol@example.com", "333", "oldsecret")
		repo := &mockUserRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existing, nil
			},
		}
		uc := NewResetPasswordUseCase(repo, fakeHasher{}, testLogger())

		err := uc.Execute(ctx, ResetPasswordCommand{
			UserID:          1,
			CurrentPassword: "oldsecret",
			NewPassword:     "newsecret",
		})
		require.NoError(t, err)
		assert.NoError(t, existing.VerifyPassword("newsecret", fakeHasher{}))
	})

	t.Run("wrong current password rejected", func(t *testing.T) {
		existing := testUser("Carol", "carol@example.com", "333", "oldsecret")
		repo := &mockUserRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existing, nil
			},
		}
		uc := NewResetPasswordUseCase(repo, fakeHasher{}, testLogger())

		err := uc.Execute(ctx, ResetPasswordCommand{
			UserID:          1,
			CurrentPassword: "wrong",
			NewPassword:     "newsecret",
		})
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})

	t.Run("short new password rejected", func(t *testing.T) {
		existing := testUser("Carol", "carol@example.com", "333", "oldsecret")
		repo := &mockUserRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return existing, nil
			},
		}
		uc := NewResetPasswordUseCase(repo, fakeHasher{}, testLogger())

		err := uc.Execute(ctx, ResetPasswordCommand{
			UserID:          1,
			CurrentPassword: "oldsecret",
			NewPassword:     "short",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
