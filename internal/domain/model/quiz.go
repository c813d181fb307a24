package model

import "time"

// Quiz is an end-of-lesson quiz.
type Quiz struct {
	ID        string     `json:"_id"`
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	Lesson    string     `json:"lesson,omitempty"`
	Questions []Question `json:"questions,omitempty"`
	CreatedAt time.Time  `json:"createdAt,omitzero"`
}

// CreateQuizRequest is the body for creating a quiz.
type CreateQuizRequest struct {
	Title     string     `json:"title"`
	Subject   string     `json:"subject"`
	Lesson    string     `json:"lesson,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

// UpdateQuizRequest carries the fields to change.
type UpdateQuizRequest struct {
	Title     *string    `json:"title,omitempty"`
	Lesson    *string    `json:"lesson,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}
