package domain

import "time"

// ConversationTurn is one past question/answer pair. Turns are created
// server-side and fetched read-only.
type ConversationTurn struct {
	ID        int64
	CreatedAt time.Time
	Question  string
	Response  string
}
