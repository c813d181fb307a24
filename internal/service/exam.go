package service

import (
	"context"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const examBasePath = "/exam"

// ExamServiceOptions groups dependencies for ExamService.
type ExamServiceOptions struct {
	Requester core.Requester // Required
}

// ExamService is the client for exams and their leaderboards.
type ExamService struct {
	exams resource[model.Exam, *model.CreateExamRequest, *model.UpdateExamRequest]
}

// NewExamService constructs a new ExamService.
func NewExamService(opts ExamServiceOptions) *ExamService {
	return &ExamService{
		exams: newResource[model.Exam, *model.CreateExamRequest, *model.UpdateExamRequest](
			opts.Requester, examBasePath, "exam", "exams"),
	}
}

// List returns every exam.
func (s *ExamService) List(ctx context.Context) ([]model.Exam, error) {
	return s.exams.list(ctx)
}

// ListBySubject returns the exams for a subject.
func (s *ExamService) ListBySubject(ctx context.Context, subjectID string) ([]model.Exam, error) {
	return s.exams.listAt(ctx, "/subject"+idPath(subjectID))
}

// Get returns an exam by id.
func (s *ExamService) Get(ctx context.Context, id string) (*model.Exam, error) {
	return s.exams.get(ctx, id)
}

// Create creates an exam.
func (s *ExamService) Create(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error) {
	return s.exams.create(ctx, req)
}

// Update changes an exam.
func (s *ExamService) Update(ctx context.Context, id string, req *model.UpdateExamRequest) (*model.Exam, error) {
	return s.exams.update(ctx, id, req)
}

// DeleteByID deletes an exam.
func (s *ExamService) DeleteByID(ctx context.Context, id string) error {
	return s.exams.remove(ctx, id)
}

// TopStudents returns the leaderboard for an exam.
func (s *ExamService) TopStudents(ctx context.Context, examID string) ([]model.TopStudent, error) {
	return call[[]model.TopStudent](ctx, s.exams.requester, examBasePath,
		apiclient.Get(idPath(examID)+"/top-students", "Failed to retrieve top students"))
}
