//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Subject is a course subject offered on the platform.
type Subject struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Level       string    `json:"level"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// CreateSubjectRequest is the body for creating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name"`
	Level       string `json:"level"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// UpdateSubjectRequest carries the fields to change; nil fields are left as-is.
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Level       *string `json:"level,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}
