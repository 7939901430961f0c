package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/project"
	vo "bugtrail/internal/domain/ticket/valueobjects"
)

func createTestProject(t *testing.T, ownerID uint, name string) *project.Project {
	p, err := project.NewProject(ownerID, name, "Test description", "")
	require.NoError(t, err)
	return p
}

func TestProjectRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := createTestProject(t, 1, "Test Project")

	err := repo.Save(ctx, p)
	assert.NoError(t, err)
	assert.NotZero(t, p.ID())

	found, err := repo.FindByID(ctx, p.ID())
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Test Project", found.Name())
	assert.Equal(t, uint(1), found.OwnerID())
}

func TestProjectRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	t.Run("update persists patched fields", func(t *testing.T) {
		p := createTestProject(t, 1, "Before")
		require.NoError(t, repo.Save(ctx, p))

		p.ApplyPatch("After", "new description", "")
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.FindByID(ctx, p.ID())
		assert.NoError(t, err)
		assert.Equal(t, "After", found.Name())
		assert.Equal(t, "new description", found.Description())
	})

	t.Run("supervisors keep insertion order across updates", func(t *testing.T) {
		p := createTestProject(t, 1, "Supervised")
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, p.AddSupervisor(30))
		require.NoError(t, p.AddSupervisor(10))
		require.NoError(t, p.AddSupervisor(20))
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.FindByID(ctx, p.ID())
		assert.NoError(t, err)
		assert.Equal(t, []uint{30, 10, 20}, found.Supervisors())

		require.NoError(t, found.RemoveSupervisor(10))
		require.NoError(t, found.AddSupervisor(40))
		require.NoError(t, repo.Update(ctx, found))

		again, err := repo.FindByID(ctx, p.ID())
		assert.NoError(t, err)
		assert.Equal(t, []uint{30, 20, 40}, again.Supervisors())
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	tickets := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("delete removes project and memberships", func(t *testing.T) {
		p := createTestProject(t, 1, "Doomed")
		require.NoError(t, repo.Save(ctx, p))
		require.NoError(t, p.AddSupervisor(5))
		require.NoError(t, repo.Update(ctx, p))

		err := repo.Delete(ctx, p.ID())
		assert.NoError(t, err)

		found, err := repo.FindByID(ctx, p.ID())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete leaves tickets behind", func(t *testing.T) {
		p := createTestProject(t, 1, "With Tickets")
		require.NoError(t, repo.Save(ctx, p))

		tk := createTestTicket(t, p.ID(), "Orphan Ticket", vo.PriorityHigh)
		require.NoError(t, tickets.Create(ctx, tk))

		require.NoError(t, repo.Delete(ctx, p.ID()))

		orphan, err := tickets.FindByID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.NotNil(t, orphan)
	})

	t.Run("delete non-existent project fails", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestProjectRepository_FindByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestProject(t, 1, "Mine A")))
	require.NoError(t, repo.Save(ctx, createTestProject(t, 1, "Mine B")))
	require.NoError(t, repo.Save(ctx, createTestProject(t, 2, "Theirs")))

	mine, err := repo.FindByOwner(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.FindByOwner(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, theirs, 1)
	assert.Equal(t, "Theirs", theirs[0].Name())
}
