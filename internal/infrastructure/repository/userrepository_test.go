package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/user"
	shareddb "bugtrail/internal/shared/db"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return assert.AnError
	}
	return nil
}

func createTestUser(t *testing.T, name, email, phone string) *user.User {
	u, err := user.NewUser(name, email, phone, false)
	require.NoError(t, err)
	require.NoError(t, u.SetPassword("secret123", fakeHasher{}))
	return u
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("save assigns id", func(t *testing.T) {
		u := createTestUser(t, "Alice", "alice@example.com", "111")

		err := repo.Save(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		u := createTestUser(t, "Alice Clone", "alice@example.com", "222")

		err := repo.Save(ctx, u)
		assert.Error(t, err)
	})

	t.Run("duplicate phone fails", func(t *testing.T) {
		u := createTestUser(t, "Phone Clone", "clone@example.com", "111")

		err := repo.Save(ctx, u)
		assert.Error(t, err)
	})
}

func TestUserRepository_FindByEmailOrPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "Bob", "bob@example.com", "333")
	require.NoError(t, repo.Save(ctx, u))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmailOrPhone(ctx, "bob@example.com")
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("find by phone", func(t *testing.T) {
		found, err := repo.FindByEmailOrPhone(ctx, "333")
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("unknown identifier returns nil", func(t *testing.T) {
		found, err := repo.FindByEmailOrPhone(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_ExistsByEmailOrPhone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "Carol", "carol@example.com", "444")
	require.NoError(t, repo.Save(ctx, u))

	exists, err := repo.ExistsByEmailOrPhone(ctx, "carol@example.com", "999")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrPhone(ctx, "new@example.com", "444")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmailOrPhone(ctx, "new@example.com", "999")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, "Dave", "dave@example.com", "555")
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, u.UpdateProfile("David", "", "", "avatar.png"))
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.FindByID(ctx, u.ID())
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "David", found.Name())
	assert.Equal(t, "dave@example.com", found.Email())
	assert.Equal(t, "avatar.png", found.ProfileImage())
}

func TestUserRepository_SearchByPrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestUser(t, "Erin", "erin@example.com", "661")))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "Erik", "erik@example.com", "662")))
	require.NoError(t, repo.Save(ctx, createTestUser(t, "Frank", "frank@example.com", "663")))

	t.Run("prefix matches name", func(t *testing.T) {
		found, err := repo.SearchByPrefix(ctx, "Eri")
		assert.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("prefix matches email", func(t *testing.T) {
		found, err := repo.SearchByPrefix(ctx, "frank@")
		assert.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Frank", found[0].Name())
	})

	t.Run("no match", func(t *testing.T) {
		found, err := repo.SearchByPrefix(ctx, "zzz")
		assert.NoError(t, err)
		assert.Len(t, found, 0)
	})
}

func TestUserRepository_JoinsExternalTransaction(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewUserRepository(gormDB)

	t.Run("rollback discards save", func(t *testing.T) {
		tx := gormDB.Begin()
		require.NoError(t, tx.Error)

		ctx := shareddb.WithTx(context.Background(), tx)
		u := createTestUser(t, "Ghost", "ghost@example.com", "990")
		require.NoError(t, repo.Save(ctx, u))
		require.NoError(t, tx.Rollback().Error)

		found, err := repo.FindByEmailOrPhone(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("commit keeps save", func(t *testing.T) {
		tx := gormDB.Begin()
		require.NoError(t, tx.Error)

		ctx := shareddb.WithTx(context.Background(), tx)
		u := createTestUser(t, "Kept", "kept@example.com", "991")
		require.NoError(t, repo.Save(ctx, u))
		require.NoError(t, tx.Commit().Error)

		found, err := repo.FindByEmailOrPhone(context.Background(), "kept@example.com")
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Kept", found.Name())
	})
}
