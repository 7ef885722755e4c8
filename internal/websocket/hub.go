package websocket

import (
	"context"
	"sync"

	"notably-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// feedChannel is the Redis pub/sub channel used to fan events out to
// other instances.
const feedChannel = "notably:feed"

// Hub tracks live feed connections and pushes event payloads to them.
// Connections are anonymous; there is no per-user addressing.
type Hub struct {
	// Registered clients.
	clients map[*Client]struct{}

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": count})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": count})
		}
	}
}

// ClientCount reports how many connections are currently registered.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast pushes a pre-serialized event to every connected client.
// When Redis is configured the payload goes through the feed channel so
// every instance (this one included) delivers it via its subscriber;
// otherwise delivery is local only.
func (h *Hub) Broadcast(data []byte) {
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), feedChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
			h.deliverLocal(data)
		}
		return
	}
	h.deliverLocal(data)
}

func (h *Hub) deliverLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, feedChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for msg := range ch {
		h.deliverLocal([]byte(msg.Payload))
	}
}
