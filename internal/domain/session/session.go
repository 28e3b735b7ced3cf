package session

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced an entry in a conversation history.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Entry is one appended line of conversation history. The session id is
// an opaque caller-supplied token; agents pass it through unchanged and
// never interpret it.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewEntry(sessionID string, role Role, content string) Entry {
	return Entry{
		ID:        uuid.New(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// NewSessionID mints an id for callers that did not supply one.
func NewSessionID() string { return uuid.NewString() }
