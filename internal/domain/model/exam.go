package model

import "time"

// Exam is a timed assessment attached to a subject.
type Exam struct {
	ID              string     `json:"_id"`
	Title           string     `json:"title"`
	Subject         string     `json:"subject"`
	Description     string     `json:"description,omitempty"`
	DurationMinutes int        `json:"duration,omitempty"`
	TotalMarks      int        `json:"totalMarks,omitempty"`
	Questions       []Question `json:"questions,omitempty"`
	ScheduledAt     time.Time  `json:"scheduledAt,omitzero"`
	CreatedAt       time.Time  `json:"createdAt,omitzero"`
}

// Question is a multiple choice question shared by exams and quizzes.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Marks         int      `json:"marks,omitempty"`
}

// CreateExamRequest is the body for creating an exam.
type CreateExamRequest struct {
	Title           string     `json:"title"`
	Subject         string     `json:"subject"`
	Description     string     `json:"description,omitempty"`
	DurationMinutes int        `json:"duration,omitempty"`
	TotalMarks      int        `json:"totalMarks,omitempty"`
	Questions       []Question `json:"questions,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
}

// UpdateExamRequest carries the fields to change.
type UpdateExamRequest struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	DurationMinutes *int       `json:"duration,omitempty"`
	TotalMarks      *int       `json:"totalMarks,omitempty"`
	Questions       []Question `json:"questions,omitempty"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
}

// TopStudent is one row of an exam leaderboard.
type TopStudent struct {
	StudentID string  `json:"studentId"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	Rank      int     `json:"rank,omitempty"`
}
