package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

const acknowledgementColumns = `id, reminder_id, message_channel, message_ts, status,
	created_at, expires_at, resolved_at, failure_reason`

type acknowledgementRepo struct {
	db dbConn
}

func newAcknowledgementRepo(db dbConn) contract.AcknowledgementRepo {
	return &acknowledgementRepo{db: db}
}

func scanAcknowledgement(row rowScanner) (*entity.Acknowledgement, error) {
	var (
		ack           entity.Acknowledgement
		resolvedAt    sql.NullTime
		failureReason sql.NullString
	)

	err := row.Scan(
		&ack.ID,
		&ack.ReminderID,
		&ack.Message.Channel,
		&ack.Message.Timestamp,
		&ack.Status,
		&ack.CreatedAt,
		&ack.ExpiresAt,
		&resolvedAt,
		&failureReason,
	)
	if err != nil {
		return nil, err
	}

	if resolvedAt.Valid {
		ack.ResolvedAt = &resolvedAt.Time
	}
	ack.FailureReason = failureReason.String

	return &ack, nil
}

func (r *acknowledgementRepo) queryAcknowledgements(ctx context.Context, query string, args ...any) ([]*entity.Acknowledgement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var acks []*entity.Acknowledgement
	for rows.Next() {
		ack, err := scanAcknowledgement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan acknowledgement: %w", err)
		}
		acks = append(acks, ack)
	}

	return acks, rows.Err()
}

func (r *acknowledgementRepo) Create(ctx context.Context, ack *entity.Acknowledgement) error {
	query := `
		INSERT INTO acknowledgements (reminder_id, message_channel, message_ts, status,
			created_at, expires_at, resolved_at, failure_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if ack.Status == "" {
		ack.Status = entity.AckPending
	}

	result, err := r.db.ExecContext(ctx, query,
		ack.ReminderID,
		ack.Message.Channel,
		ack.Message.Timestamp,
		ack.Status,
		dbTime(ack.CreatedAt),
		dbTime(ack.ExpiresAt),
		nullTime(ack.ResolvedAt),
		nullStr(ack.FailureReason),
	)
	if err != nil {
		return fmt.Errorf("failed to create acknowledgement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	ack.ID = id
	return nil
}

func (r *acknowledgementRepo) GetByID(ctx context.Context, id int64) (*entity.Acknowledgement, error) {
	query := `SELECT ` + acknowledgementColumns + ` FROM acknowledgements WHERE id = ?`

	ack, err := scanAcknowledgement(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledgement: %w", err)
	}

	return ack, nil
}

// GetByMessage returns the acknowledgement tracking ref, or nil if the
// message is not tracked.
func (r *acknowledgementRepo) GetByMessage(ctx context.Context, ref entity.MessageRef) (*entity.Acknowledgement, error) {
	query := `SELECT ` + acknowledgementColumns + ` FROM acknowledgements
		WHERE message_channel = ? AND message_ts = ?`

	ack, err := scanAcknowledgement(r.db.QueryRowContext(ctx, query, ref.Channel, ref.Timestamp))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledgement by message: %w", err)
	}

	return ack, nil
}

func (r *acknowledgementRepo) GetExpired(ctx context.Context, now time.Time) ([]*entity.Acknowledgement, error) {
	query := `SELECT ` + acknowledgementColumns + ` FROM acknowledgements
		WHERE status = ? AND expires_at <= ?
		ORDER BY id ASC`

	acks, err := r.queryAcknowledgements(ctx, query, entity.AckPending, dbTime(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get expired acknowledgements: %w", err)
	}
	return acks, nil
}

func (r *acknowledgementRepo) ListByReminder(ctx context.Context, reminderID int64) ([]*entity.Acknowledgement, error) {
	query := `SELECT ` + acknowledgementColumns + ` FROM acknowledgements
		WHERE reminder_id = ?
		ORDER BY id DESC`

	acks, err := r.queryAcknowledgements(ctx, query, reminderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list acknowledgements: %w", err)
	}
	return acks, nil
}

// Transition writes ack's status, resolution time and failure reason, but only
// while the stored status is still from.
func (r *acknowledgementRepo) Transition(ctx context.Context, ack *entity.Acknowledgement, from entity.AckStatus) (bool, error) {
	query := `
		UPDATE acknowledgements SET
			status = ?,
			resolved_at = ?,
			failure_reason = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		ack.Status,
		nullTime(ack.ResolvedAt),
		nullStr(ack.FailureReason),
		ack.ID,
		from,
	)
	if err != nil {
		return false, fmt.Errorf("failed to transition acknowledgement: %w", err)
	}

	return affected(result)
}

func (r *acknowledgementRepo) DeletePendingByReminder(ctx context.Context, reminderID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM acknowledgements WHERE reminder_id = ? AND status = ?`,
		reminderID, entity.AckPending,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pending acknowledgements: %w", err)
	}

	return result.RowsAffected()
}

func (r *acknowledgementRepo) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM acknowledgements WHERE status != ? AND resolved_at IS NOT NULL AND resolved_at < ?`,
		entity.AckPending, dbTime(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete resolved acknowledgements: %w", err)
	}

	return result.RowsAffected()
}

func (r *acknowledgementRepo) CountByStatus(ctx context.Context) (map[entity.AckStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM acknowledgements GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count acknowledgements by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.AckStatus]int)
	for rows.Next() {
		var (
			status entity.AckStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan acknowledgement count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
