package service

import (
	"context"
	"encoding/json"

	"notably-be/internal/dto"
	"notably-be/internal/pkg/logger"
	"notably-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IConsumerService drains the in-process event bus and fans events out to
// websocket feed subscribers.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	chatTopic    string
	productTopic string
	hub          *websocket.Hub
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	chatTopic string,
	productTopic string,
	hub *websocket.Hub,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		chatTopic:    chatTopic,
		productTopic: productTopic,
		hub:          hub,
		logger:       log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	chatMessages, err := s.subscriber.Subscribe(ctx, s.chatTopic)
	if err != nil {
		return err
	}
	productMessages, err := s.subscriber.Subscribe(ctx, s.productTopic)
	if err != nil {
		return err
	}

	for {
		select {
		case msg, ok := <-chatMessages:
			if !ok {
				return nil
			}
			s.forward(dto.FeedEventChatExchange, msg)
		case msg, ok := <-productMessages:
			if !ok {
				return nil
			}
			s.forward(dto.FeedEventProductCreated, msg)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *consumerService) forward(eventType string, msg *message.Message) {
	defer msg.Ack()

	payload, err := json.Marshal(dto.FeedEvent{
		Type: eventType,
		Data: json.RawMessage(msg.Payload),
	})
	if err != nil {
		s.logger.Error("Consumer", "Failed to marshal feed event", map[string]interface{}{
			"error": err.Error(),
			"type":  eventType,
		})
		return
	}

	if s.hub != nil {
		s.hub.Broadcast(payload)
	}
	s.logger.Info("Consumer", "Forwarded event to feed", map[string]interface{}{
		"type": eventType,
	})
}
