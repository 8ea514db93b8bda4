package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoo-management/internal/ports/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got sendRequest
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		gotKey = r.Header.Get("X-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m-1"}`))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k", From: "zoo@zoo.test"})
	require.NoError(t, err)

	err = c.Send(context.Background(), notify.Message{
		To: "ops@zoo.test", Subject: "s", Body: "b", SenderTitle: "Zoo System",
	})
	require.NoError(t, err)
	assert.Equal(t, "k", gotKey)
	assert.Equal(t, "ops@zoo.test", got.To)
	assert.Equal(t, "Zoo System", got.FromName)
	assert.Equal(t, "zoo@zoo.test", got.From)
}

func TestClient_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	err = c.Send(context.Background(), notify.Message{To: "x@zoo.test"})
	assert.True(t, errors.Is(err, ErrRelayRejected))
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrRelayNotConfigured)
}
