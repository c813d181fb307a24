package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Requester core.Requester // Required
}

// DashboardService assembles the landing page summary from several collections.
type DashboardService struct {
	subjects *SubjectService
	exams    *ExamService
	library  *LibraryService
	helpDesk *HelpDeskService
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		subjects: NewSubjectService(SubjectServiceOptions{Requester: opts.Requester}),
		exams:    NewExamService(ExamServiceOptions{Requester: opts.Requester}),
		library:  NewLibraryService(LibraryServiceOptions{Requester: opts.Requester}),
		helpDesk: NewHelpDeskService(HelpDeskServiceOptions{Requester: opts.Requester}),
	}
}

// Load fetches subjects, exams, books and open conversations concurrently.
// The first failure cancels the remaining calls and is returned unchanged.
func (s *DashboardService) Load(ctx context.Context) (*model.Dashboard, error) {
	var out model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		subjects, err := s.subjects.List(gctx)
		out.Subjects = subjects
		return err
	})

	g.Go(func() error {
		exams, err := s.exams.List(gctx)
		out.Exams = exams
		return err
	})

	g.Go(func() error {
		books, err := s.library.List(gctx)
		out.Books = books
		return err
	})

	g.Go(func() error {
		conversations, err := s.helpDesk.ListConversations(gctx, model.ConversationOpen)
		out.OpenConversations = conversations
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
