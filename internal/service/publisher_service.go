package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type publisherService struct {
	publisher message.Publisher
}

func NewPublisherService(publisher message.Publisher) IPublisherService {
	return &publisherService{
		publisher: publisher,
	}
}

func (s *publisherService) Publish(ctx context.Context, topic string, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.publisher.Publish(topic, msg)
}
