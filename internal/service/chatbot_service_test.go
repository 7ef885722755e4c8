package service

import (
	"context"
	"fmt"
	"testing"

	"notably-be/internal/dto"
	"notably-be/internal/repository/memory"
)

func newTestChatbotService(limit int) (IChatbotService, *memory.SessionRepository) {
	sessionRepo := memory.NewSessionRepository()
	svc := NewChatbotService(
		memory.NewChatHistoryRepository(limit),
		sessionRepo,
		nil,
		"CHAT_EXCHANGE",
	)
	return svc, sessionRepo
}

func TestResolveReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "greeting",
			message: "hello",
			want:    "Hello! How can I assist you today?",
		},
		{
			name:    "greeting embedded in sentence",
			message: "well HELLO there",
			want:    "Hello! How can I assist you today?",
		},
		{
			name:    "pricing",
			message: "what is the price?",
			want:    "Our products start at $10.",
		},
		{
			name:    "help",
			message: "I need some help",
			want:    "Try asking about our products or say hello!",
		},
		{
			name:    "greeting wins over help",
			message: "hello, I need help",
			want:    "Hello! How can I assist you today?",
		},
		{
			name:    "echo fallback keeps original casing",
			message: "Tell me a JOKE",
			want:    "You said: Tell me a JOKE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveReply(tt.message)
			if got != tt.want {
				t.Errorf("resolveReply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestChatAppendsHistoryOldestFirst(t *testing.T) {
	svc, _ := newTestChatbotService(50)
	ctx := context.Background()

	for _, msg := range []string{"hello", "price", "something else"} {
		if _, err := svc.Chat(ctx, "", &dto.ChatRequest{Message: msg}); err != nil {
			t.Fatalf("Chat(%q) returned error: %v", msg, err)
		}
	}

	history := svc.History(ctx)
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[0].User != "hello" {
		t.Errorf("first history entry user = %q, want %q", history[0].User, "hello")
	}
	if history[2].Bot != "You said: something else" {
		t.Errorf("last history entry bot = %q, want %q", history[2].Bot, "You said: something else")
	}
}

func TestChatHistoryEvictsOldestBeyondCap(t *testing.T) {
	svc, _ := newTestChatbotService(50)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		msg := fmt.Sprintf("message %d", i)
		if _, err := svc.Chat(ctx, "", &dto.ChatRequest{Message: msg}); err != nil {
			t.Fatalf("Chat(%q) returned error: %v", msg, err)
		}
	}

	history := svc.History(ctx)
	if len(history) != 50 {
		t.Fatalf("history length = %d, want 50", len(history))
	}
	if history[0].User != "message 10" {
		t.Errorf("oldest surviving entry = %q, want %q", history[0].User, "message 10")
	}
	if history[49].User != "message 59" {
		t.Errorf("newest entry = %q, want %q", history[49].User, "message 59")
	}
}

func TestChatTracksSessionState(t *testing.T) {
	svc, sessionRepo := newTestChatbotService(50)
	ctx := context.Background()

	for _, msg := range []string{"hello", "price check"} {
		if _, err := svc.Chat(ctx, "session-1", &dto.ChatRequest{Message: msg}); err != nil {
			t.Fatalf("Chat(%q) returned error: %v", msg, err)
		}
	}
	if _, err := svc.Chat(ctx, "", &dto.ChatRequest{Message: "anonymous"}); err != nil {
		t.Fatalf("Chat without session returned error: %v", err)
	}

	session, found := sessionRepo.Get("session-1")
	if !found {
		t.Fatal("session-1 not found in session store")
	}
	if session.Messages != 2 {
		t.Errorf("session message count = %d, want 2", session.Messages)
	}
	if session.LastMessage != "price check" {
		t.Errorf("session last message = %q, want %q", session.LastMessage, "price check")
	}
}
