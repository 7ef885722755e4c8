package dto

import "encoding/json"

// Feed event types pushed over /ws/feed.
const (
	FeedEventChatExchange   = "chat.exchange"
	FeedEventProductCreated = "product.created"
)

// FeedEvent is the envelope written to websocket feed subscribers.
type FeedEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
