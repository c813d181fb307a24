package model

import "time"

// ChatGroup is a community chat room.
type ChatGroup struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Image       string    `json:"image,omitempty"`
	Members     int       `json:"membersCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// CreateChatGroupRequest describes a new group. Icon is optional.
type CreateChatGroupRequest struct {
	Name        string
	Description string
	Subject     string
	Icon        *Document
}

// ChatMessage is one message posted to a group.
type ChatMessage struct {
	ID         string    `json:"_id"`
	Group      string    `json:"group"`
	SenderID   string    `json:"sender"`
	SenderName string    `json:"senderName,omitempty"`
	Text       string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
}

// SendChatMessageRequest is the body for posting into a group.
type SendChatMessageRequest struct {
	Text string `json:"message"`
}
