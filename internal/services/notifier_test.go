package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"ministry/tender-engine/internal/models"
)

func TestWebhookNotifier_PostsJSON(t *testing.T) {
	received := make(chan notificationPayload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload notificationPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		received <- payload
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, 2*time.Second)
	err := notifier.Send(context.Background(), "v-1", "Award notification", "You won")
	assert.NoError(t, err)

	payload := <-received
	check.Equal(t, "v-1", payload.RecipientID)
	check.Equal(t, "Award notification", payload.Subject)
	check.Equal(t, "You won", payload.Body)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL, 2*time.Second)

	check.Error(t, notifier.Send(context.Background(), "v-1", "s", "b"))
}

func TestWebhookNotifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notifier := NewWebhookNotifier("http://127.0.0.1:1", time.Second)

	check.Error(t, notifier.Send(ctx, "v-1", "s", "b"))
}

func TestLogCollaborators(t *testing.T) {
	check.NoError(t, NewLogNotifier().Send(context.Background(), "v-1", "s", "b"))
	check.NoError(t, NewLogPublisher().Upsert(context.Background(), models.ListingEntry{ID: "tender:1", Kind: "tender"}))
}
