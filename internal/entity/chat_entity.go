package entity

// ChatExchange is one user/bot message pair in the in-memory history.
type ChatExchange struct {
	User string
	Bot  string
}

// ChatSession tracks per-conversation state in the TTL'd session store.
// Sessions exist only when the client sends an X-Session-Id header.
type ChatSession struct {
	ID          string
	Messages    int
	LastMessage string
}
