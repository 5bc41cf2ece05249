package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

const reminderColumns = `id, user_id, channel_id, team_id, created_by, message, frequency,
	anchor_at, next_due, status, ack_required, max_occurrences, occurrences, created_at, updated_at`

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

func scanReminder(row rowScanner) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	err := row.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.ChannelID,
		&reminder.TeamID,
		&reminder.CreatedBy,
		&reminder.Message,
		&reminder.Frequency,
		&reminder.Anchor,
		&reminder.NextDue,
		&reminder.Status,
		&reminder.AckRequired,
		&reminder.MaxOccurrences,
		&reminder.Occurrences,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepo) queryReminders(ctx context.Context, query string, args ...any) ([]*entity.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

func (r *reminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, channel_id, team_id, created_by, message, frequency,
			anchor_at, next_due, status, ack_required, max_occurrences, occurrences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := dbTime(time.Now())
	if reminder.Status == "" {
		reminder.Status = entity.ReminderActive
	}

	result, err := r.db.ExecContext(ctx, query,
		reminder.UserID,
		reminder.ChannelID,
		reminder.TeamID,
		reminder.CreatedBy,
		reminder.Message,
		reminder.Frequency,
		dbTime(reminder.Anchor),
		dbTime(reminder.NextDue),
		reminder.Status,
		reminder.AckRequired,
		reminder.MaxOccurrences,
		reminder.Occurrences,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id int64) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

func (r *reminderRepo) ListByChannel(ctx context.Context, channelID string) ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE channel_id = ? AND status != ?
		ORDER BY id ASC`

	reminders, err := r.queryReminders(ctx, query, channelID, entity.ReminderDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepo) CountOpenByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM reminders WHERE user_id = ? AND status IN (?, ?)`

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, entity.ReminderActive, entity.ReminderPaused).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reminders: %w", err)
	}
	return count, nil
}

// GetDue returns active reminders whose next due time is at or before now, by ascending id.
func (r *reminderRepo) GetDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE status = ? AND next_due <= ?
		ORDER BY id ASC`

	reminders, err := r.queryReminders(ctx, query, entity.ReminderActive, dbTime(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}
	return reminders, nil
}

// Advance persists an advanced reminder only if it is still active and still
// scheduled at expectedNextDue. A false result means another writer got there first.
func (r *reminderRepo) Advance(ctx context.Context, reminder *entity.Reminder, expectedNextDue time.Time) (bool, error) {
	query := `
		UPDATE reminders SET
			next_due = ?,
			occurrences = ?,
			status = ?,
			updated_at = ?
		WHERE id = ? AND status = ? AND next_due = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		dbTime(reminder.NextDue),
		reminder.Occurrences,
		reminder.Status,
		dbTime(time.Now()),
		reminder.ID,
		entity.ReminderActive,
		dbTime(expectedNextDue),
	)
	if err != nil {
		return false, fmt.Errorf("failed to advance reminder: %w", err)
	}

	return affected(result)
}

func (r *reminderRepo) UpdateStatus(ctx context.Context, id int64, from, to entity.ReminderStatus) (bool, error) {
	query := `
		UPDATE reminders SET
			status = ?,
			updated_at = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query, to, dbTime(time.Now()), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update reminder status: %w", err)
	}

	return affected(result)
}

func (r *reminderRepo) MarkDeleted(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE reminders SET
			status = ?,
			updated_at = ?
		WHERE id = ? AND status != ?
	`

	result, err := r.db.ExecContext(ctx, query, entity.ReminderDeleted, dbTime(time.Now()), id, entity.ReminderDeleted)
	if err != nil {
		return false, fmt.Errorf("failed to delete reminder: %w", err)
	}

	return affected(result)
}

func (r *reminderRepo) CountByStatus(ctx context.Context) (map[entity.ReminderStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM reminders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count reminders by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.ReminderStatus]int)
	for rows.Next() {
		var (
			status entity.ReminderStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan reminder count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
