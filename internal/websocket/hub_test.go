package websocket

import (
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// waitForClients blocks until the hub's Run loop has registered n clients.
func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d clients (have %d)", n, hub.ClientCount())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHubBroadcastsToRegisteredClients(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	first := &Client{Hub: hub, Send: make(chan []byte, 1)}
	second := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- first
	hub.register <- second
	waitForClients(t, hub, 2)

	hub.Broadcast([]byte(`{"type":"chat.exchange"}`))

	for i, client := range []*Client{first, second} {
		select {
		case msg := <-client.Send:
			if string(msg) != `{"type":"chat.exchange"}` {
				t.Errorf("client %d received %q", i, msg)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %d did not receive broadcast", i)
		}
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	client := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.Send:
		if ok {
			t.Fatal("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}
