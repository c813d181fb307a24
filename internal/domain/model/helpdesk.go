package model

import "time"

// ConversationStatus is the lifecycle state of a help-desk thread.
type ConversationStatus string

const (
	ConversationOpen   ConversationStatus = "open"
	ConversationClosed ConversationStatus = "closed"
)

// Conversation is a help-desk thread opened by a student.
type Conversation struct {
	ID          string             `json:"_id"`
	Subject     string             `json:"subject"`
	StudentID   string             `json:"student"`
	StudentName string             `json:"studentName,omitempty"`
	Status      ConversationStatus `json:"status"`
	Messages    []HelpDeskMessage  `json:"messages,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitzero"`
}

// HelpDeskMessage is one entry in a conversation.
type HelpDeskMessage struct {
	Author    string    `json:"author"`
	Text      string    `json:"message"`
	FromAdmin bool      `json:"fromAdmin"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ReplyRequest is the body for answering a conversation.
type ReplyRequest struct {
	Text string `json:"message"`
}
