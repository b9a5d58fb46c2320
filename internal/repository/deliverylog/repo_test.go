package deliverylog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

const listQuery = `
		SELECT id, notification_id, channel, status, attempt_count,
		       error_message, delivered_at, created_at, updated_at
		FROM delivery_logs
		WHERE notification_id = $1
		ORDER BY created_at;
    `

var columns = []string{
	"id", "notification_id", "channel", "status", "attempt_count",
	"error_message", "delivered_at", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestInsert(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	errMsg := "provider down"
	entry := model.DeliveryLogEntry{
		ID:             uuid.New(),
		NotificationID: "n-1",
		Channel:        model.ChannelEmail,
		Status:         model.DeliveryFailed,
		AttemptCount:   2,
		ErrorMessage:   &errMsg,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO delivery_logs (
		    id, notification_id, channel, status, attempt_count,
		    error_message, delivered_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `)).
		WithArgs(entry.ID, "n-1", "EMAIL", "FAILED", 2, errMsg, nil, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByNotificationID(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	id1, id2 := uuid.New(), uuid.New()

	rows := sqlmock.NewRows(columns).
		AddRow(id1.String(), "n-1", "EMAIL", "FAILED", 1, "provider down", nil, now, now).
		AddRow(id2.String(), "n-1", "EMAIL", "DELIVERED", 2, nil, now, now, now)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WithArgs("n-1").WillReturnRows(rows)

	list, err := repo.ListByNotificationID(context.Background(), "n-1")
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, model.DeliveryFailed, list[0].Status)
	assert.Equal(t, "provider down", *list[0].ErrorMessage)
	assert.Nil(t, list[0].DeliveredAt)
	assert.Equal(t, model.DeliveryDelivered, list[1].Status)
	assert.NotNil(t, list[1].DeliveredAt)
	assert.Equal(t, id2, list[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByNotificationID_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("n-404").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.ListByNotificationID(context.Background(), "n-404")
	assert.ErrorIs(t, err, ErrNoDeliveryLogs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
