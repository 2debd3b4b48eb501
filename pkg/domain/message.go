package domain

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in the conversation log.
// Messages are immutable once appended; append order is display order.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Recommendations holds catalog snapshots attached to assistant turns.
	// Empty for plain text messages.
	Recommendations []RecommendationBlock `json:"recommendations,omitempty"`
}
