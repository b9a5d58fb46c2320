package status

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-pipeline/internal/broadcast"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

func TestHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	b := broadcast.NewRedisBroadcaster(client, broadcast.Destinations{
		UserPrefix: "notifications:user:",
		Broadcast:  "notifications:all",
		Metrics:    "notifications:metrics",
	})

	r := gin.New()
	r.GET("/api/status/stream", NewHandler(b).Stream)

	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/status/stream?userId=u-1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	msg := model.StatusMessage{
		NotificationID: "n-1",
		Channel:        model.ChannelEmail,
		Status:         model.DeliveryDelivered,
		Type:           model.MessageDeliveryStatus,
		Timestamp:      time.Now(),
	}
	require.NoError(t, b.SendToUser(context.Background(), "u-1", msg))

	lines := make(chan string, 64)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	timeout := time.After(3 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed before an event arrived")
			if strings.HasPrefix(line, "data:") {
				assert.Contains(t, line, `"notificationId":"n-1"`)
				assert.Contains(t, line, "DELIVERED")
				return
			}
		case <-timeout:
			t.Fatal("no event received")
		}
	}
}
