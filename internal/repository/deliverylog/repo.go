package deliverylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

var ErrNoDeliveryLogs = errors.New("no delivery logs found")

// Repository provides access to the append-only delivery_logs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one delivery attempt.
func (r *Repository) Insert(ctx context.Context, entry model.DeliveryLogEntry) error {
	query := `
		INSERT INTO delivery_logs (
		    id, notification_id, channel, status, attempt_count,
		    error_message, delivered_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `

	_, err := r.db.ExecContext(
		ctx, query,
		entry.ID, entry.NotificationID, entry.Channel, entry.Status, entry.AttemptCount,
		entry.ErrorMessage, entry.DeliveredAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert delivery log: %w", err)
	}

	return nil
}

// ListByNotificationID returns every attempt for a notification, oldest first.
func (r *Repository) ListByNotificationID(ctx context.Context, notificationID string) ([]model.DeliveryLogEntry, error) {
	query := `
		SELECT id, notification_id, channel, status, attempt_count,
		       error_message, delivered_at, created_at, updated_at
		FROM delivery_logs
		WHERE notification_id = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}
	defer rows.Close()

	var entries []model.DeliveryLogEntry
	for rows.Next() {
		var e model.DeliveryLogEntry
		if err := rows.Scan(
			&e.ID, &e.NotificationID, &e.Channel, &e.Status, &e.AttemptCount,
			&e.ErrorMessage, &e.DeliveredAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery logs: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNoDeliveryLogs
	}

	return entries, nil
}
