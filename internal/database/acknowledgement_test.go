package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAckFixture(t *testing.T, db *DB) (*entity.Reminder, time.Time) {
	t.Helper()

	created := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	reminder := newTestReminder("U1", "C1", created)
	require.NoError(t, newReminderRepo(db.conn).Create(context.Background(), reminder))

	return reminder, created
}

func TestAcknowledgementRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newAcknowledgementRepo(db.conn)
	reminder, created := createAckFixture(t, db)

	ref := entity.MessageRef{Channel: "C1", Timestamp: "1704186000.000100"}
	ack := entity.NewAcknowledgement(reminder.ID, ref, created, 48*time.Hour)

	require.NoError(t, repo.Create(ctx, ack))
	assert.NotZero(t, ack.ID)

	t.Run("should get by id", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, ack.ID)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, reminder.ID, stored.ReminderID)
		assert.Equal(t, ref, stored.Message)
		assert.Equal(t, entity.AckPending, stored.Status)
		assert.True(t, stored.ExpiresAt.Equal(created.Add(48*time.Hour)))
		assert.Nil(t, stored.ResolvedAt)
		assert.Empty(t, stored.FailureReason)
	})

	t.Run("should get by message", func(t *testing.T) {
		stored, err := repo.GetByMessage(ctx, ref)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, ack.ID, stored.ID)
	})

	t.Run("should return nil for an untracked message", func(t *testing.T) {
		stored, err := repo.GetByMessage(ctx, entity.MessageRef{Channel: "C1", Timestamp: "1.2"})

		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should reject a second ack for the same message", func(t *testing.T) {
		dup := entity.NewAcknowledgement(reminder.ID, ref, created, 48*time.Hour)

		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("should not shorten a window opened mid-second", func(t *testing.T) {
		sentAt := created.Add(1500 * time.Millisecond)
		late := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1704186000.000200"}, sentAt, time.Hour)
		require.NoError(t, repo.Create(ctx, late))

		stored, err := repo.GetByID(ctx, late.ID)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.ExpiresAt.Equal(created.Add(time.Hour+2*time.Second)), "got %s", stored.ExpiresAt)
		assert.False(t, stored.ExpiresAt.Before(sentAt.Add(time.Hour)))
	})

	t.Run("should reject an ack without a reminder", func(t *testing.T) {
		orphan := entity.NewAcknowledgement(999, entity.MessageRef{Channel: "C1", Timestamp: "9.9"}, created, time.Hour)

		assert.Error(t, repo.Create(ctx, orphan))
	})
}

func TestAcknowledgementRepo_GetExpired(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newAcknowledgementRepo(db.conn)
	reminder, created := createAckFixture(t, db)

	short := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.1"}, created, time.Hour)
	long := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.2"}, created, 48*time.Hour)
	require.NoError(t, repo.Create(ctx, short))
	require.NoError(t, repo.Create(ctx, long))

	t.Run("should not return before expiry", func(t *testing.T) {
		acks, err := repo.GetExpired(ctx, created.Add(time.Hour-time.Second))

		require.NoError(t, err)
		assert.Empty(t, acks)
	})

	t.Run("should return exactly at expiry", func(t *testing.T) {
		acks, err := repo.GetExpired(ctx, created.Add(time.Hour))

		require.NoError(t, err)
		require.Len(t, acks, 1)
		assert.Equal(t, short.ID, acks[0].ID)
	})

	t.Run("should skip resolved acknowledgements", func(t *testing.T) {
		resolved := created.Add(30 * time.Minute)
		short.Status = entity.AckAcknowledged
		short.ResolvedAt = &resolved
		ok, err := repo.Transition(ctx, short, entity.AckPending)
		require.NoError(t, err)
		require.True(t, ok)

		acks, err := repo.GetExpired(ctx, created.Add(72*time.Hour))

		require.NoError(t, err)
		require.Len(t, acks, 1)
		assert.Equal(t, long.ID, acks[0].ID)
	})
}

func TestAcknowledgementRepo_Transition(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newAcknowledgementRepo(db.conn)
	reminder, created := createAckFixture(t, db)

	ack := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.1"}, created, time.Hour)
	require.NoError(t, repo.Create(ctx, ack))

	now := created.Add(time.Hour)
	require.NoError(t, ack.Expire(now))
	ok, err := repo.Transition(ctx, ack, entity.AckPending)
	require.NoError(t, err)
	require.True(t, ok)

	// a concurrent acknowledge loses the race
	late := *ack
	late.Status = entity.AckAcknowledged
	ok, err = repo.Transition(ctx, &late, entity.AckPending)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ack.FailEnforcement("not_in_channel"))
	ok, err = repo.Transition(ctx, ack, entity.AckExpired)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetByID(ctx, ack.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AckEnforcementFailed, stored.Status)
	assert.Equal(t, "not_in_channel", stored.FailureReason)
	require.NotNil(t, stored.ResolvedAt)
	assert.True(t, stored.ResolvedAt.Equal(now))
}

func TestAcknowledgementRepo_Deletes(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newAcknowledgementRepo(db.conn)
	reminder, created := createAckFixture(t, db)

	pending := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.1"}, created, time.Hour)
	old := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.2"}, created, time.Hour)
	recent := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "1.3"}, created, 100*time.Hour)
	for _, a := range []*entity.Acknowledgement{pending, old, recent} {
		require.NoError(t, repo.Create(ctx, a))
	}

	require.NoError(t, old.Acknowledge(created.Add(time.Minute)))
	_, err := repo.Transition(ctx, old, entity.AckPending)
	require.NoError(t, err)
	require.NoError(t, recent.Acknowledge(created.Add(72*time.Hour)))
	_, err = repo.Transition(ctx, recent, entity.AckPending)
	require.NoError(t, err)

	t.Run("should purge resolved acknowledgements before cutoff", func(t *testing.T) {
		n, err := repo.DeleteResolvedBefore(ctx, created.Add(24*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		acks, err := repo.ListByReminder(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Len(t, acks, 2)
	})

	t.Run("should delete only pending acknowledgements of the reminder", func(t *testing.T) {
		n, err := repo.DeletePendingByReminder(ctx, reminder.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		acks, err := repo.ListByReminder(ctx, reminder.ID)
		require.NoError(t, err)
		require.Len(t, acks, 1)
		assert.Equal(t, recent.ID, acks[0].ID)
	})

	t.Run("should count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, counts[entity.AckAcknowledged])
		assert.Equal(t, 0, counts[entity.AckPending])
	})
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)
	reminder, created := createAckFixture(t, db)

	t.Run("should roll back on error", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			ack := entity.NewAcknowledgement(reminder.ID, entity.MessageRef{Channel: "C1", Timestamp: "7.7"}, created, time.Hour)
			require.NoError(t, tx.Acknowledgement().Create(ctx, ack))
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		stored, err := dm.Acknowledgement().GetByMessage(ctx, entity.MessageRef{Channel: "C1", Timestamp: "7.7"})
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			_, err := tx.Reminder().MarkDeleted(ctx, reminder.ID)
			return err
		})

		require.NoError(t, err)
		stored, err := dm.Reminder().GetByID(ctx, reminder.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ReminderDeleted, stored.Status)
	})
}
