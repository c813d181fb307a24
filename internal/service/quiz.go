package service

import (
	"context"

	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const quizBasePath = "/end-lesson-quiz"

// QuizServiceOptions groups dependencies for QuizService.
type QuizServiceOptions struct {
	Requester core.Requester // Required
}

// QuizService is the client for end-of-lesson quizzes.
type QuizService struct {
	quizzes resource[model.Quiz, *model.CreateQuizRequest, *model.UpdateQuizRequest]
}

// NewQuizService constructs a new QuizService.
func NewQuizService(opts QuizServiceOptions) *QuizService {
	return &QuizService{
		quizzes: newResource[model.Quiz, *model.CreateQuizRequest, *model.UpdateQuizRequest](
			opts.Requester, quizBasePath, "quiz", "quizzes"),
	}
}

func (s *QuizService) List(ctx context.Context) ([]model.Quiz, error) {
	return s.quizzes.list(ctx)
}

func (s *QuizService) ListBySubject(ctx context.Context, subjectID string) ([]model.Quiz, error) {
	return s.quizzes.listAt(ctx, "/subject"+idPath(subjectID))
}

func (s *QuizService) Get(ctx context.Context, id string) (*model.Quiz, error) {
	return s.quizzes.get(ctx, id)
}

func (s *QuizService) Create(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error) {
	return s.quizzes.create(ctx, req)
}

func (s *QuizService) Update(ctx context.Context, id string, req *model.UpdateQuizRequest) (*model.Quiz, error) {
	return s.quizzes.update(ctx, id, req)
}

func (s *QuizService) Delete(ctx context.Context, id string) error {
	return s.quizzes.remove(ctx, id)
}
