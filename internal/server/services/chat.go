package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/repomanager"
)

// FallbackReply is returned verbatim when the text-generation service is
// unreachable or misbehaves. The chat path is best-effort only.
const FallbackReply = "I'm having trouble reaching the assistant right now. Please try again in a moment."

const addTrigger = "add"

// TextGenerator produces a reply for a prompt. Implemented by genai.Client.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService forwards user messages to an external text-generation service
// and stores the exchange in the caller's conversation. When the message
// contains the add-trigger phrase, a task owned by the caller is appended as
// a side effect. The caller identity always comes from the same token
// resolution path as the task endpoints; the chat path has no identity
// model of its own.
type ChatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   TextGenerator
	logger      logging.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(db *sql.DB, m repomanager.RepositoryManager, g TextGenerator, l logging.Logger) *ChatService {
	return &ChatService{
		db:          db,
		repomanager: m,
		generator:   g,
		logger:      l.With("module", "chat_service"),
	}
}

// triggerTitle extracts a task title from a message containing the trigger
// phrase, or returns "" when the trigger is absent or leaves no title.
func triggerTitle(message string) string {
	lower := strings.ToLower(message)
	idx := strings.Index(lower, addTrigger)
	if idx < 0 {
		return ""
	}
	rest := message[:idx] + message[idx+len(addTrigger):]
	return strings.TrimSpace(rest)
}

// Respond handles one chat message for the given user: generates a reply
// (falling back to FallbackReply on any generator failure), optionally
// appends a task, and persists both sides of the exchange transactionally.
func (s *ChatService) Respond(ctx context.Context, userID int64, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", common.ErrorValidation
	}

	prompt := fmt.Sprintf("User wants help with tasks. User message: %s. Give a helpful short reply.", message)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn(ctx, "text generation failed, using fallback", "error", err.Error())
		reply = FallbackReply
	}

	title := triggerTitle(message)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if title != "" {
			taskRepo := s.repomanager.Tasks(tx)
			if _, err := taskRepo.Create(ctx, &models.Task{UserID: userID, Title: title}); err != nil {
				return err
			}
			reply = "Added to your list! " + reply
		}

		chatRepo := s.repomanager.Chats(tx)
		conv, err := chatRepo.GetOrCreateConversation(ctx, userID)
		if err != nil {
			return err
		}

		if _, err := chatRepo.AddMessage(ctx, &models.Message{
			ConversationID: conv.ID, Role: models.MessageRoleUser, Content: message,
		}); err != nil {
			return err
		}
		if _, err := chatRepo.AddMessage(ctx, &models.Message{
			ConversationID: conv.ID, Role: models.MessageRoleAssistant, Content: reply,
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error saving chat exchange: %w", err)
	}

	return reply, nil
}
