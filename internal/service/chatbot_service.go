package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"notably-be/internal/constant"
	"notably-be/internal/dto"
	"notably-be/internal/entity"
	"notably-be/internal/repository/memory"
)

type IChatbotService interface {
	Chat(ctx context.Context, sessionId string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context) []*dto.ChatHistoryItem
}

type chatbotService struct {
	historyRepo      *memory.ChatHistoryRepository
	sessionRepo      *memory.SessionRepository
	publisherService IPublisherService
	exchangeTopic    string
}

func NewChatbotService(
	historyRepo *memory.ChatHistoryRepository,
	sessionRepo *memory.SessionRepository,
	publisherService IPublisherService,
	exchangeTopic string,
) IChatbotService {
	return &chatbotService{
		historyRepo:      historyRepo,
		sessionRepo:      sessionRepo,
		publisherService: publisherService,
		exchangeTopic:    exchangeTopic,
	}
}

// resolveReply walks the keyword table in order; the first keyword contained
// in the lowercased message wins, otherwise the message is echoed back.
func resolveReply(message string) string {
	text := strings.ToLower(message)
	for _, rule := range constant.ChatKeywordRules {
		if strings.Contains(text, rule.Keyword) {
			return rule.Reply
		}
	}
	return fmt.Sprintf(constant.ChatReplyEchoFormat, message)
}

func (s *chatbotService) Chat(ctx context.Context, sessionId string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	bot := resolveReply(req.Message)

	s.historyRepo.Append(&entity.ChatExchange{
		User: req.Message,
		Bot:  bot,
	})

	if sessionId != "" {
		session, found := s.sessionRepo.Get(sessionId)
		if !found {
			session = &entity.ChatSession{ID: sessionId}
		}
		session.Messages++
		session.LastMessage = req.Message
		s.sessionRepo.Save(session)
	}

	if s.publisherService != nil {
		payload, err := json.Marshal(dto.ChatHistoryItem{User: req.Message, Bot: bot})
		if err == nil {
			// Feed delivery is best effort; the chat reply never fails on it.
			_ = s.publisherService.Publish(ctx, s.exchangeTopic, payload)
		}
	}

	return &dto.ChatResponse{Response: bot}, nil
}

func (s *chatbotService) History(ctx context.Context) []*dto.ChatHistoryItem {
	exchanges := s.historyRepo.All()
	items := make([]*dto.ChatHistoryItem, len(exchanges))
	for i, e := range exchanges {
		items[i] = &dto.ChatHistoryItem{
			User: e.User,
			Bot:  e.Bot,
		}
	}
	return items
}
