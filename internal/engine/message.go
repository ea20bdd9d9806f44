package engine

import (
	"time"

	"github.com/google/uuid"
)

// Role is the author of a chat Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn as clients render it.
type Message struct {
	ID        string           `json:"id"`
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Sources   []string         `json:"sources,omitempty"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// MessageMetadata carries the answer diagnostics shown alongside a reply.
type MessageMetadata struct {
	Confidence       float64  `json:"confidence,omitempty"`
	ProcessingTime   int64    `json:"processingTime,omitempty"`
	QueryType        Category `json:"queryType,omitempty"`
	RelevantSections []string `json:"relevantSections,omitempty"`
}

// AssistantMessage wraps an answer as an assistant chat turn.
func AssistantMessage(resp Response, cat Category, processingMs int64, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   resp.Answer,
		Timestamp: at,
		Sources:   resp.Sources,
		Metadata: &MessageMetadata{
			Confidence:       resp.Confidence,
			ProcessingTime:   processingMs,
			QueryType:        cat,
			RelevantSections: resp.RelevantSections,
		},
	}
}
