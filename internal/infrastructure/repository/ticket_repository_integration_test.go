package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eduhub/internal/domain/ticket"
	vo "eduhub/internal/domain/ticket/valueobjects"
	"eduhub/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(
		&models.TicketModel{},
		&models.ReplyModel{},
		&models.UserModel{},
	))

	return database
}

func newTestTicket(t *testing.T, ownerID uint, subject string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ownerID, subject, "Test body content")
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := newTestTicket(t, 10, "Cannot open chapter 2")
	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, tk.Subject(), found.Subject())
	assert.Equal(t, uint(10), found.OwnerID())
	assert.True(t, found.Status().IsPending())
	assert.Nil(t, found.ClosedAt())
}

func TestTicketRepository_GetByID_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ticket.ErrTicketNotFound)
}

func TestTicketRepository_UpdateStatusRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := newTestTicket(t, 10, "Status lifecycle")
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.Answer())
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, found.Status().IsAnswered())

	require.NoError(t, found.Close())
	require.NoError(t, repo.Update(ctx, found))

	closed, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, closed.Status().IsClosed())
	require.NotNil(t, closed.ClosedAt())
}

func TestTicketRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, newTestTicket(t, 10, "Owner ten ticket")))
	}
	other := newTestTicket(t, 20, "Owner twenty ticket")
	require.NoError(t, repo.Save(ctx, other))
	require.NoError(t, other.Answer())
	require.NoError(t, repo.Update(ctx, other))

	t.Run("filter by owner", func(t *testing.T) {
		ownerID := uint(10)
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{OwnerID: &ownerID, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusAnswered
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Status: &status, Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tickets, 1)
		assert.Equal(t, uint(20), tickets[0].OwnerID())
	})

	t.Run("pagination", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, tickets, 2)
	})
}

func TestReplyRepository_ThreadOrdering(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	replyRepo := NewReplyRepository(database)
	ctx := context.Background()

	tk := newTestTicket(t, 10, "Ordering test")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	// Force identical created_at values so the id tiebreak is exercised.
	now := time.Now().UTC()
	bodies := []string{"first", "second", "third"}
	roles := []vo.AuthorRole{vo.AuthorStudent, vo.AuthorAdmin, vo.AuthorStudent}
	for i, body := range bodies {
		reply, err := ticket.ReconstructReply(uint(i+1), tk.ID(), 10, roles[i], body, now)
		require.NoError(t, err)
		model := models.ReplyModel{
			ID:         reply.ID(),
			TicketID:   reply.TicketID(),
			AuthorID:   reply.AuthorID(),
			AuthorRole: reply.AuthorRole().String(),
			Body:       reply.Body(),
			CreatedAt:  now.UnixMilli(),
		}
		require.NoError(t, database.Create(&model).Error)
	}

	replies, err := replyRepo.GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, replies, 3)
	for i, want := range bodies {
		assert.Equal(t, want, replies[i].Body())
	}
	assert.Equal(t, vo.AuthorAdmin, replies[1].AuthorRole())
}

func TestReplyRepository_SaveAssignsID(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	replyRepo := NewReplyRepository(database)
	ctx := context.Background()

	tk := newTestTicket(t, 10, "Reply save")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	reply, err := ticket.NewReply(tk.ID(), 10, vo.AuthorStudent, "hello")
	require.NoError(t, err)
	require.NoError(t, replyRepo.Save(ctx, reply))
	assert.NotZero(t, reply.ID())
}

func TestTicketRepository_DeleteCascadesReplies(t *testing.T) {
	database := setupTestDB(t)
	ticketRepo := NewTicketRepository(database)
	replyRepo := NewReplyRepository(database)
	ctx := context.Background()

	tk := newTestTicket(t, 10, "Delete cascade")
	require.NoError(t, ticketRepo.Save(ctx, tk))

	reply, err := ticket.NewReply(tk.ID(), 10, vo.AuthorStudent, "to be removed")
	require.NoError(t, err)
	require.NoError(t, replyRepo.Save(ctx, reply))

	require.NoError(t, ticketRepo.Delete(ctx, tk.ID()))

	_, err = ticketRepo.GetByID(ctx, tk.ID())
	assert.ErrorIs(t, err, ticket.ErrTicketNotFound)

	replies, err := replyRepo.GetByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, replies, "replies are removed with the ticket")
}
