package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bugtrail/internal/domain/ticket"
	vo "bugtrail/internal/domain/ticket/valueobjects"
	"bugtrail/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared and serializes
	// concurrent writers the way row locks would on MySQL.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.ProjectSupervisorModel{},
		&models.TicketModel{},
		&models.TicketSequenceModel{},
		&models.CommentModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, projectID uint, title string, priority vo.Priority) *ticket.Ticket {
	tk, err := ticket.NewTicket(projectID, 1, title, "Test description", priority)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("create assigns id and first index", func(t *testing.T) {
		tk := createTestTicket(t, 1, "First Ticket", vo.PriorityHigh)

		err := repo.Create(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
		assert.Equal(t, uint(1), tk.Index())
	})

	t.Run("indices increase within a project", func(t *testing.T) {
		tk2 := createTestTicket(t, 1, "Second Ticket", vo.PriorityMedium)
		tk3 := createTestTicket(t, 1, "Third Ticket", vo.PriorityLow)

		require.NoError(t, repo.Create(ctx, tk2))
		require.NoError(t, repo.Create(ctx, tk3))

		assert.Equal(t, uint(2), tk2.Index())
		assert.Equal(t, uint(3), tk3.Index())
	})

	t.Run("each project has its own sequence", func(t *testing.T) {
		tk := createTestTicket(t, 2, "Other Project Ticket", vo.PriorityHigh)

		require.NoError(t, repo.Create(ctx, tk))
		assert.Equal(t, uint(1), tk.Index())
	})
}

func TestTicketRepository_ConcurrentCreates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	indices := make(chan uint, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tk, err := ticket.NewTicket(1, 1, "Concurrent Ticket", "", vo.PriorityMedium)
			if err != nil {
				errs <- err
				return
			}
			if err := repo.Create(ctx, tk); err != nil {
				errs <- err
				return
			}
			indices <- tk.Index()
		}()
	}

	wg.Wait()
	close(indices)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	seen := make(map[uint]bool, n)
	for idx := range indices {
		assert.False(t, seen[idx], "index %d allocated twice", idx)
		seen[idx] = true
	}
	for i := uint(1); i <= n; i++ {
		assert.True(t, seen[i], "index %d was never allocated", i)
	}
}

func TestTicketRepository_IndexNeverReused(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk1 := createTestTicket(t, 1, "Ticket One", vo.PriorityHigh)
	require.NoError(t, repo.Create(ctx, tk1))
	require.Equal(t, uint(1), tk1.Index())

	require.NoError(t, repo.Delete(ctx, tk1.ID()))

	tk2 := createTestTicket(t, 1, "Ticket Two", vo.PriorityHigh)
	require.NoError(t, repo.Create(ctx, tk2))
	assert.Equal(t, uint(2), tk2.Index())
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("update persists patched fields", func(t *testing.T) {
		tk := createTestTicket(t, 1, "Original Title", vo.PriorityLow)
		require.NoError(t, repo.Create(ctx, tk))

		err := tk.ApplyPatch("Updated Title", "", vo.PriorityHigh, true)
		require.NoError(t, err)

		err = repo.Update(ctx, tk)
		assert.NoError(t, err)

		found, err := repo.FindByID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.Equal(t, "Updated Title", found.Title())
		assert.Equal(t, vo.PriorityHigh, found.Priority())
		assert.True(t, found.IsClosed())
		assert.Equal(t, tk.Index(), found.Index())
	})
}

func TestTicketRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("find existing ticket", func(t *testing.T) {
		tk := createTestTicket(t, 1, "Find Me", vo.PriorityMedium)
		require.NoError(t, repo.Create(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())
		assert.Equal(t, tk.Title(), found.Title())
	})

	t.Run("find non-existent ticket returns nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTicketRepository_FindByProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk1 := createTestTicket(t, 1, "Oldest", vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, tk1))
	time.Sleep(10 * time.Millisecond)
	tk2 := createTestTicket(t, 1, "Newest", vo.PriorityHigh)
	require.NoError(t, repo.Create(ctx, tk2))

	other := createTestTicket(t, 2, "Other Project", vo.PriorityHigh)
	require.NoError(t, repo.Create(ctx, other))

	tickets, err := repo.FindByProject(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Newest", tickets[0].Title())
	assert.Equal(t, "Oldest", tickets[1].Title())
}

func TestTicketRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("delete removes ticket and its comments", func(t *testing.T) {
		tk := createTestTicket(t, 1, "Doomed Ticket", vo.PriorityHigh)
		require.NoError(t, repo.Create(ctx, tk))

		c, err := ticket.NewComment(tk.ID(), tk.ProjectID(), 2, "a comment")
		require.NoError(t, err)
		require.NoError(t, comments.Save(ctx, c))

		err = repo.Delete(ctx, tk.ID())
		assert.NoError(t, err)

		found, err := repo.FindByID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.Nil(t, found)

		remaining, err := comments.FindByTicketID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.Len(t, remaining, 0)
	})

	t.Run("delete non-existent ticket fails", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
