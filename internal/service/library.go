package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
	"github.com/learnhub/admin-console/internal/ports"
)

const (
	libraryBasePath = "/library-book"

	// The upload route historically read the document from "pdf".
	bookFileField       = "file"
	bookLegacyFileField = "pdf"
)

// LibraryServiceOptions groups dependencies for LibraryService.
type LibraryServiceOptions struct {
	Requester core.Requester  // Required
	Blobs     ports.BlobStore // Optional: required only by Publish
}

// LibraryService is the client for library books.
type LibraryService struct {
	books resource[model.Book, *model.CreateBookRequest, *model.UpdateBookRequest]
	blobs ports.BlobStore
}

// NewLibraryService constructs a new LibraryService.
func NewLibraryService(opts LibraryServiceOptions) *LibraryService {
	return &LibraryService{
		books: newResource[model.Book, *model.CreateBookRequest, *model.UpdateBookRequest](
			opts.Requester, libraryBasePath, "book", "books"),
		blobs: opts.Blobs,
	}
}

// List returns every book.
func (s *LibraryService) List(ctx context.Context) ([]model.Book, error) {
	return s.books.list(ctx)
}

// ListBySubject returns the books filed under a subject.
func (s *LibraryService) ListBySubject(ctx context.Context, subjectID string) ([]model.Book, error) {
	return s.books.listAt(ctx, "/subject"+idPath(subjectID))
}

// Get returns a book by id.
func (s *LibraryService) Get(ctx context.Context, id string) (*model.Book, error) {
	return s.books.get(ctx, id)
}

// Create creates a book whose document already has a URL.
func (s *LibraryService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	return s.books.create(ctx, req)
}

// Update changes a book.
func (s *LibraryService) Update(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error) {
	return s.books.update(ctx, id, req)
}

// Delete deletes a book.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	return s.books.remove(ctx, id)
}

// Upload sends the book metadata and document as one multipart form.
func (s *LibraryService) Upload(ctx context.Context, req *model.UploadBookRequest) (*model.Book, error) {
	form := bookForm(req)
	return call[*model.Book](ctx, s.books.requester, libraryBasePath,
		apiclient.Upload(http.MethodPost, "/upload", form, "Failed to upload book"))
}

func bookForm(req *model.UploadBookRequest) *apiclient.Form {
	b := req.Book
	return apiclient.NewForm().
		Field("title", b.Title).
		Field("authorFullName", b.AuthorFullName).
		OptionalField("subject", b.Subject).
		OptionalField("level", b.Level).
		OptionalField("description", b.Description).
		OptionalField("coverImage", b.CoverImage).
		File(bookFileField, apiclient.File{
			Filename:    req.Document.Filename,
			ContentType: req.Document.ContentType,
			Data:        req.Document.Data,
		}, bookLegacyFileField)
}

// Publish stores the document in the blob store and creates the book
// pointing at the returned public URL.
func (s *LibraryService) Publish(ctx context.Context, req *model.CreateBookRequest, doc model.Document) (*model.Book, error) {
	if s.blobs == nil {
		return nil, svcerrors.New(svcerrors.KindUnknown, "Failed to upload book file: no blob store configured")
	}

	url, err := s.blobs.Put(ctx, doc.Data, doc.ContentType)
	if err != nil {
		return nil, svcerrors.Wrap(fmt.Errorf("put document: %w", err), svcerrors.KindUnknown, "Failed to upload book file")
	}

	body := *req
	body.FileURL = url
	return s.books.create(ctx, &body)
}
