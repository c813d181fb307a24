package model

// Dashboard is the landing page summary.
type Dashboard struct {
	Subjects          []Subject
	Exams             []Exam
	Books             []Book
	OpenConversations []Conversation
}
