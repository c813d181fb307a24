package service

import (
	"context"

	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const subjectBasePath = "/subject"

// SubjectServiceOptions groups dependencies for SubjectService.
type SubjectServiceOptions struct {
	Requester core.Requester // Required
}

// SubjectService is the client for the subject collection.
type SubjectService struct {
	subjects resource[model.Subject, *model.CreateSubjectRequest, *model.UpdateSubjectRequest]
}

// NewSubjectService constructs a new SubjectService.
func NewSubjectService(opts SubjectServiceOptions) *SubjectService {
	return &SubjectService{
		subjects: newResource[model.Subject, *model.CreateSubjectRequest, *model.UpdateSubjectRequest](
			opts.Requester, subjectBasePath, "subject", "subjects"),
	}
}

// List returns every subject.
func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	return s.subjects.list(ctx)
}

// ListByLevel returns the subjects offered at level.
func (s *SubjectService) ListByLevel(ctx context.Context, level string) ([]model.Subject, error) {
	return s.subjects.listAt(ctx, "/level"+idPath(level))
}

// Get returns a subject by id.
func (s *SubjectService) Get(ctx context.Context, id string) (*model.Subject, error) {
	return s.subjects.get(ctx, id)
}

// Create creates a subject.
func (s *SubjectService) Create(ctx context.Context, req *model.CreateSubjectRequest) (*model.Subject, error) {
	return s.subjects.create(ctx, req)
}

// Update changes a subject.
func (s *SubjectService) Update(ctx context.Context, id string, req *model.UpdateSubjectRequest) (*model.Subject, error) {
	return s.subjects.update(ctx, id, req)
}

// Delete deletes a subject.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	return s.subjects.remove(ctx, id)
}
