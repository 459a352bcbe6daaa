package models

import "time"

// Conversation groups chat messages for one user.
type Conversation struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
}

// Message roles as stored in the messages table.
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message is a single chat message inside a conversation.
type Message struct {
	ID             int64
	ConversationID int64
	Role           string
	Content        string
	CreatedAt      time.Time
}
