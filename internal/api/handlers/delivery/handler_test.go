package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/api/dto"
	mocks "github.com/aliskhannn/notification-pipeline/internal/mocks/api/handlers/delivery"
	"github.com/aliskhannn/notification-pipeline/internal/model"
	"github.com/aliskhannn/notification-pipeline/internal/repository/deliverylog"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MocklogReader, *mocks.MockretryCounter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logs := mocks.NewMocklogReader(ctrl)
	retries := mocks.NewMockretryCounter(ctrl)

	return NewHandler(logs, retries), logs, retries
}

func newContext(id string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/deliveries/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}

	return c, w
}

func TestHandler_Get_Success(t *testing.T) {
	h, logs, retries := setupHandler(t)

	now := time.Now().UTC().Truncate(time.Second)
	entries := []model.DeliveryLogEntry{{
		ID:             uuid.New(),
		NotificationID: "n-1",
		Channel:        model.ChannelEmail,
		Status:         model.DeliveryDelivered,
		AttemptCount:   2,
		DeliveredAt:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}}

	logs.EXPECT().ListByNotificationID(gomock.Any(), "n-1").Return(entries, nil)
	retries.EXPECT().RetryCount(gomock.Any(), "n-1").Return(int64(1), nil)

	c, w := newContext("n-1")
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result dto.DeliveryResponse `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "n-1", resp.Result.NotificationID)
	assert.Equal(t, int64(1), resp.Result.RetryCount)
	require.Len(t, resp.Result.Entries, 1)
	assert.Equal(t, model.DeliveryDelivered, resp.Result.Entries[0].Status)
}

func TestHandler_Get_CounterUnavailable(t *testing.T) {
	h, logs, retries := setupHandler(t)

	logs.EXPECT().ListByNotificationID(gomock.Any(), "n-1").
		Return([]model.DeliveryLogEntry{{NotificationID: "n-1"}}, nil)
	retries.EXPECT().RetryCount(gomock.Any(), "n-1").Return(int64(0), errors.New("redis down"))

	c, w := newContext("n-1")
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, logs, _ := setupHandler(t)

	logs.EXPECT().ListByNotificationID(gomock.Any(), "n-404").Return(nil, deliverylog.ErrNoDeliveryLogs)

	c, w := newContext("n-404")
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Get_Error(t *testing.T) {
	h, logs, _ := setupHandler(t)

	logs.EXPECT().ListByNotificationID(gomock.Any(), "n-1").Return(nil, errors.New("db down"))

	c, w := newContext("n-1")
	h.Get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Get_MissingID(t *testing.T) {
	h, _, _ := setupHandler(t)

	c, w := newContext("")
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
