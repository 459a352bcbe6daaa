package chats

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	GetOrCreateConversation(ctx context.Context, userID int64) (*models.Conversation, error)
	AddMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
}
