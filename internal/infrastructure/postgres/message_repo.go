package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aselbek/jobboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const messageColumns = `id, sender_id, receiver_id, body, job_id, status, sent_at`

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, receiver_id, body, job_id, status)
		VALUES ($1, $2, $3, $4, 'sent')
		RETURNING `+messageColumns,
		m.SenderID, m.ReceiverID, m.Body, m.JobID)
	return scanMessage(row)
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	return scanMessage(row)
}

// Thread marks everything still "sent" to the caller as "delivered", then
// returns the conversation. Both steps share a transaction so a poll
// observes the statuses it just produced.
func (r *MessageRepository) Thread(ctx context.Context, callerID, otherID string, jobID *string) ([]*domain.Message, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	deliver := `
		UPDATE messages SET status = 'delivered'
		WHERE receiver_id = $1 AND sender_id = $2 AND status = 'sent'`
	deliverArgs := []any{callerID, otherID}
	if jobID != nil {
		deliver += ` AND job_id = $3`
		deliverArgs = append(deliverArgs, *jobID)
	}
	if _, err = tx.Exec(ctx, deliver, deliverArgs...); err != nil {
		return nil, fmt.Errorf("mark delivered: %w", err)
	}

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))`
	args := []any{callerID, otherID}
	if jobID != nil {
		query += ` AND job_id = $3`
		args = append(args, *jobID)
	}
	query += ` ORDER BY sent_at ASC`

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query thread: %w", err)
	}

	var messages []*domain.Message
	for rows.Next() {
		m, scanErr := scanMessage(rows)
		if scanErr != nil {
			rows.Close()
			err = scanErr
			return nil, err
		}
		messages = append(messages, m)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate thread: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, callerID, otherID string, jobID *string) error {
	query := `
		UPDATE messages SET status = 'read'
		WHERE sender_id = $1 AND receiver_id = $2 AND status <> 'read'`
	args := []any{otherID, callerID}
	if jobID != nil {
		query += ` AND job_id = $3`
		args = append(args, *jobID)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func scanMessage(row rowScanner) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.JobID, &m.Status, &m.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return &m, nil
}
