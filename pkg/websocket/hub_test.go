package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func receiveMessage(t *testing.T, client *Client) Message {
	t.Helper()

	select {
	case data, ok := <-client.send:
		if !ok {
			t.Fatal("send channel closed unexpectedly")
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("failed to decode message: %v", err)
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func TestHubRegisterSendsWelcome(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub, nil, primitive.NewObjectID())
	hub.register <- client

	msg := receiveMessage(t, client)
	if msg.Type != "welcome" {
		t.Errorf("expected welcome message, got %s", msg.Type)
	}
	if msg.AdminID != client.AdminID {
		t.Errorf("welcome must address the connecting admin")
	}

	if count := hub.ClientCount(); count != 1 {
		t.Errorf("expected 1 client, got %d", count)
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := NewClient(hub, nil, primitive.NewObjectID())
	second := NewClient(hub, nil, primitive.NewObjectID())

	hub.register <- first
	receiveMessage(t, first)
	hub.register <- second
	receiveMessage(t, second)

	hub.Broadcast("booking_updated", map[string]interface{}{"booking_id": "abc"})

	for _, client := range []*Client{first, second} {
		msg := receiveMessage(t, client)
		if msg.Type != "booking_updated" {
			t.Errorf("expected booking_updated, got %s", msg.Type)
		}
		if msg.Data["booking_id"] != "abc" {
			t.Errorf("unexpected payload: %v", msg.Data)
		}
	}
}

func TestHubUnregisterClosesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub, nil, primitive.NewObjectID())
	hub.register <- client
	receiveMessage(t, client)

	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	if count := hub.ClientCount(); count != 0 {
		t.Errorf("expected 0 clients, got %d", count)
	}
}
