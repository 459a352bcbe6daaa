// Package chats provides PostgreSQL-backed storage for chat conversations
// and their messages.
package chats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskhub/internal/dbx"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

// PostgresRepository implements chat storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetOrCreateConversation returns the user's most recent conversation,
// creating one if none exists yet.
func (r *PostgresRepository) GetOrCreateConversation(ctx context.Context, userID int64) (*models.Conversation, error) {
	query :=
		`SELECT id, user_id, created_at FROM conversations
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1
		 `

	conv := &models.Conversation{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&conv.ID, &conv.UserID, &conv.CreatedAt)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	insert :=
		`INSERT INTO conversations (user_id)
		 VALUES ($1)
		 RETURNING id, user_id, created_at
		 `

	if err := r.db.QueryRowContext(ctx, insert, userID).Scan(&conv.ID, &conv.UserID, &conv.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return conv, nil
}

// AddMessage appends a message to a conversation.
func (r *PostgresRepository) AddMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (conversation_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.ConversationID, msg.Role, msg.Content).Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}
