package main

import (
	"errors"
	"strconv"

	"github.com/learnhub/admin-console/internal/domain/model"
)

func requireID(args []string, what string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errors.New(what + " id is required")
	}
	return args[0], nil
}

func runSubjects(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		level  string
	)
	fs := newFlagSet("subjects", &asJSON)
	fs.StringVar(&level, "level", "", "Only subjects at this level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := cmdCtx.Services.Subjects
	var (
		subjects []model.Subject
		err      error
	)
	if level != "" {
		subjects, err = svc.ListByLevel(cmdCtx.Ctx, level)
	} else {
		subjects, err = svc.List(cmdCtx.Ctx)
	}
	if err != nil {
		return err
	}

	return render(cmdCtx.Out, asJSON, subjects, []string{"ID", "NAME", "LEVEL"}, func() [][]string {
		rows := make([][]string, 0, len(subjects))
		for _, s := range subjects {
			rows = append(rows, []string{s.ID, s.Name, orDash(s.Level)})
		}
		return rows
	})
}

func runSubjectCreate(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		req    model.CreateSubjectRequest
	)
	fs := newFlagSet("subject-create", &asJSON)
	fs.StringVar(&req.Name, "name", "", "Subject name")
	fs.StringVar(&req.Level, "level", "", "Level")
	fs.StringVar(&req.Description, "description", "", "Description")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Name == "" {
		return errors.New("--name is required")
	}

	subject, err := cmdCtx.Services.Subjects.Create(cmdCtx.Ctx, &req)
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, subject, "Created subject", func(s model.Subject) string { return s.ID })
}

func runSubjectDelete(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "subject")
	if err != nil {
		return err
	}
	if err := cmdCtx.Services.Subjects.Delete(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Deleted subject %s\n", id)
}

func runExams(cmdCtx *commandContext, args []string) error {
	var (
		asJSON  bool
		subject string
	)
	fs := newFlagSet("exams", &asJSON)
	fs.StringVar(&subject, "subject", "", "Only exams of this subject id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := cmdCtx.Services.Exams
	var (
		exams []model.Exam
		err   error
	)
	if subject != "" {
		exams, err = svc.ListBySubject(cmdCtx.Ctx, subject)
	} else {
		exams, err = svc.List(cmdCtx.Ctx)
	}
	if err != nil {
		return err
	}

	return render(cmdCtx.Out, asJSON, exams, []string{"ID", "TITLE", "SUBJECT", "QUESTIONS", "SCHEDULED"}, func() [][]string {
		rows := make([][]string, 0, len(exams))
		for _, e := range exams {
			rows = append(rows, []string{e.ID, e.Title, orDash(e.Subject), strconv.Itoa(len(e.Questions)), formatTime(e.ScheduledAt)})
		}
		return rows
	})
}

func runExamDelete(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "exam")
	if err != nil {
		return err
	}
	if err := cmdCtx.Services.Exams.DeleteByID(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Deleted exam %s\n", id)
}

func runExamTop(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("exam-top", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requireID(fs.Args(), "exam")
	if err != nil {
		return err
	}

	top, err := cmdCtx.Services.Exams.TopStudents(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}
	return render(cmdCtx.Out, asJSON, top, []string{"RANK", "STUDENT", "SCORE"}, func() [][]string {
		rows := make([][]string, 0, len(top))
		for i, s := range top {
			rank := s.Rank
			if rank == 0 {
				rank = i + 1
			}
			rows = append(rows, []string{strconv.Itoa(rank), orDash(s.Name), strconv.FormatFloat(s.Score, 'f', -1, 64)})
		}
		return rows
	})
}

func runQuizzes(cmdCtx *commandContext, args []string) error {
	var (
		asJSON  bool
		subject string
	)
	fs := newFlagSet("quizzes", &asJSON)
	fs.StringVar(&subject, "subject", "", "Only quizzes of this subject id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := cmdCtx.Services.Quizzes
	var (
		quizzes []model.Quiz
		err     error
	)
	if subject != "" {
		quizzes, err = svc.ListBySubject(cmdCtx.Ctx, subject)
	} else {
		quizzes, err = svc.List(cmdCtx.Ctx)
	}
	if err != nil {
		return err
	}

	return render(cmdCtx.Out, asJSON, quizzes, []string{"ID", "TITLE", "SUBJECT", "LESSON", "QUESTIONS"}, func() [][]string {
		rows := make([][]string, 0, len(quizzes))
		for _, q := range quizzes {
			rows = append(rows, []string{q.ID, q.Title, orDash(q.Subject), orDash(q.Lesson), strconv.Itoa(len(q.Questions))})
		}
		return rows
	})
}

func runQuizDelete(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "quiz")
	if err != nil {
		return err
	}
	if err := cmdCtx.Services.Quizzes.Delete(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Deleted quiz %s\n", id)
}

func runBooks(cmdCtx *commandContext, args []string) error {
	var (
		asJSON  bool
		subject string
	)
	fs := newFlagSet("books", &asJSON)
	fs.StringVar(&subject, "subject", "", "Only books of this subject id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := cmdCtx.Services.Library
	var (
		books []model.Book
		err   error
	)
	if subject != "" {
		books, err = svc.ListBySubject(cmdCtx.Ctx, subject)
	} else {
		books, err = svc.List(cmdCtx.Ctx)
	}
	if err != nil {
		return err
	}

	return render(cmdCtx.Out, asJSON, books, []string{"ID", "TITLE", "AUTHOR", "LEVEL", "FILE"}, func() [][]string {
		rows := make([][]string, 0, len(books))
		for _, b := range books {
			rows = append(rows, []string{b.ID, b.Title, orDash(b.AuthorFullName), orDash(b.Level), orDash(b.FileURL)})
		}
		return rows
	})
}

type bookOptions struct {
	Book   model.CreateBookRequest
	File   string
	AsJSON bool
}

func parseBookFlags(name string, args []string) (bookOptions, error) {
	var opts bookOptions
	fs := newFlagSet(name, &opts.AsJSON)
	fs.StringVar(&opts.Book.Title, "title", "", "Book title")
	fs.StringVar(&opts.Book.AuthorFullName, "author", "", "Author full name")
	fs.StringVar(&opts.Book.Subject, "subject", "", "Subject id")
	fs.StringVar(&opts.Book.Level, "level", "", "Level")
	fs.StringVar(&opts.Book.Description, "description", "", "Description")
	fs.StringVar(&opts.File, "file", "", "Path to the book document")
	if err := fs.Parse(args); err != nil {
		return bookOptions{}, err
	}
	if opts.Book.Title == "" || opts.Book.AuthorFullName == "" || opts.File == "" {
		return bookOptions{}, errors.New("--title, --author and --file are required")
	}
	return opts, nil
}

func bookID(b model.Book) string { return b.ID }

func runBookUpload(cmdCtx *commandContext, args []string) error {
	opts, err := parseBookFlags("book-upload", args)
	if err != nil {
		return err
	}
	doc, err := readDocument(opts.File)
	if err != nil {
		return err
	}

	book, err := cmdCtx.Services.Library.Upload(cmdCtx.Ctx, &model.UploadBookRequest{Book: opts.Book, Document: doc})
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, opts.AsJSON, book, "Uploaded book", bookID)
}

func runBookPublish(cmdCtx *commandContext, args []string) error {
	opts, err := parseBookFlags("book-publish", args)
	if err != nil {
		return err
	}
	doc, err := readDocument(opts.File)
	if err != nil {
		return err
	}

	book, err := cmdCtx.Services.Library.Publish(cmdCtx.Ctx, &opts.Book, doc)
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, opts.AsJSON, book, "Published book", func(b model.Book) string {
		return b.ID + " at " + orDash(b.FileURL)
	})
}

func runBookDelete(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "book")
	if err != nil {
		return err
	}
	if err := cmdCtx.Services.Library.Delete(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Deleted book %s\n", id)
}
