package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("TOKEN", WithBaseURL(srv.URL))

	err := c.Send(context.Background(), "42", "Order shipped", "Your order is on its way")
	require.NoError(t, err)

	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "Order shipped\n\nYour order is on its way", got.Text)
}

func TestClient_SendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("TOKEN", WithBaseURL(srv.URL))

	err := c.Send(context.Background(), "42", "", "hi")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
