package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillsage/skillsage-service/internal/ai"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/validator"
)

type chatService struct {
	repo      repositories.Repository
	gateway   *ai.Gateway
	logger    *slog.Logger
	validator *validator.Validator
}

func NewChatService(repo repositories.Repository, gateway *ai.Gateway, logger *slog.Logger, v *validator.Validator) ChatService {
	return &chatService{repo: repo, gateway: gateway, logger: logger, validator: v}
}

func (s *chatService) History(ctx context.Context, userID, sessionID string) ([]*models.ChatMessage, error) {
	history, err := s.repo.Chat().ListByUser(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}
	return history, nil
}

// Send stores the user's message, asks the mentor gateway for a reply
// with the session history as context, and stores the reply. The gateway
// never fails, so a provider outage still produces a stored AI message.
func (s *chatService) Send(ctx context.Context, req *validator.ChatSendRequest) (*ChatSendResult, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve chat user: %w", err)
	}

	history, err := s.repo.Chat().ListByUser(ctx, req.UserID, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}

	userMsg, err := s.repo.Chat().Create(ctx, &models.ChatMessage{
		UserID:    req.UserID,
		Content:   req.Content,
		IsAI:      false,
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	reply := s.gateway.ChatReply(ctx, req.Content, history)

	aiMsg, err := s.repo.Chat().Create(ctx, &models.ChatMessage{
		UserID:    req.UserID,
		Content:   reply,
		IsAI:      true,
		SessionID: req.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("store ai message: %w", err)
	}

	return &ChatSendResult{UserMessage: userMsg, AIMessage: aiMsg}, nil
}
