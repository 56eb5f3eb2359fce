package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"carexpress-dispatch/internal/adapters/kv"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/store"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	h.Publish(domain.Change{Kind: domain.LocationCreated, Key: "A"})

	select {
	case got := <-ch:
		if got.Kind != domain.LocationCreated || got.Key != "A" {
			t.Fatalf("got %+v", got)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for change")
	}

	h.Unsubscribe(ch)
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after unsubscribe")
	}
	h.Unsubscribe(ch)
	if h.Len() != 0 {
		t.Fatalf("subscribers = %d", h.Len())
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish(domain.Change{Kind: domain.OrderCreated})
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("buffered = %d, want %d", len(ch), subscriberBuffer)
	}
}

func TestServeWSStreamsStoreChanges(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemoryKeyValueStore())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	h := NewHub()
	detach := h.Attach(s)
	defer detach()

	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The subscription exists once the handler has upgraded.
	deadline := time.Now().Add(time.Second)
	for h.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := s.AddLocation(ctx, domain.Location{Name: "Depot"}); err != nil {
		t.Fatalf("add location: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got domain.Change
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Kind != domain.LocationCreated || got.Key != "Depot" {
		t.Fatalf("got %+v", got)
	}
}
