package model

import "time"

// Book is a library book with an attached document.
type Book struct {
	ID             string    `json:"_id"`
	Title          string    `json:"title"`
	AuthorFullName string    `json:"authorFullName"`
	Subject        string    `json:"subject,omitempty"`
	Level          string    `json:"level,omitempty"`
	Description    string    `json:"description,omitempty"`
	CoverImage     string    `json:"coverImage,omitempty"`
	FileURL        string    `json:"fileUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// CreateBookRequest is the JSON body for creating a book whose document
// already lives in the blob store.
type CreateBookRequest struct {
	Title          string `json:"title"`
	AuthorFullName string `json:"authorFullName"`
	Subject        string `json:"subject,omitempty"`
	Level          string `json:"level,omitempty"`
	Description    string `json:"description,omitempty"`
	CoverImage     string `json:"coverImage,omitempty"`
	FileURL        string `json:"fileUrl,omitempty"`
}

// UpdateBookRequest carries the fields to change.
type UpdateBookRequest struct {
	Title          *string `json:"title,omitempty"`
	AuthorFullName *string `json:"authorFullName,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	Level          *string `json:"level,omitempty"`
	Description    *string `json:"description,omitempty"`
	CoverImage     *string `json:"coverImage,omitempty"`
	FileURL        *string `json:"fileUrl,omitempty"`
}

// Document is an uploaded binary with its metadata.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadBookRequest sends the book metadata and its document in one multipart call.
type UploadBookRequest struct {
	Book     CreateBookRequest
	Document Document
}
