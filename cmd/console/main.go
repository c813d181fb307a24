package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/learnhub/admin-console/config"
	"github.com/learnhub/admin-console/internal/bootstrap"
	svcerrors "github.com/learnhub/admin-console/internal/errors"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   config.AppConfig
	Services *bootstrap.ServiceContainer
	Out      io.Writer
	In       io.Reader
}

func main() {
	os.Exit(run(os.Args[1:])) //nolint:forbidigo // CLI must report failures through its exit status
}

func run(args []string) int {
	if len(args) < 1 {
		if err := printUsage(os.Stdout); err != nil {
			slog.Error("print usage failed", "error", err)
		}
		return 2
	}

	cmdName := args[0]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			slog.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			slog.Error("print usage failed", "error", err)
		}
		return 2
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		return 1
	}
	logger := bootstrap.InitLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "initialize console", "error", err)
		return 1
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.Warn("close console resources failed", "error", cerr)
		}
	}()

	cmdCtx := &commandContext{
		Ctx:      ctx,
		Logger:   logger,
		Config:   cfg,
		Services: app.ServiceContainer,
		Out:      os.Stdout,
		In:       os.Stdin,
	}
	if runErr := cmd.run(cmdCtx, args[1:]); runErr != nil {
		if errors.Is(runErr, flag.ErrHelp) {
			return 0
		}
		if reportErr := reportError(os.Stderr, runErr); reportErr != nil {
			logger.Error("report error failed", "error", reportErr)
		}
		logger.DebugContext(ctx, "command failed", "command", cmdName, "error", runErr)
		return 1
	}
	return 0
}

func commands() map[string]command {
	list := []command{
		{"login", "Sign in and store the session", runLogin},
		{"logout", "Drop the stored session", runLogout},
		{"whoami", "Show the signed-in admin", runWhoAmI},
		{"admins", "List admin accounts", runAdmins},
		{"admin-create", "Create an admin account", runAdminCreate},
		{"subjects", "List subjects, optionally by level", runSubjects},
		{"subject-create", "Create a subject", runSubjectCreate},
		{"subject-delete", "Delete a subject", runSubjectDelete},
		{"exams", "List exams, optionally by subject", runExams},
		{"exam-delete", "Delete an exam", runExamDelete},
		{"exam-top", "Show the top students of an exam", runExamTop},
		{"quizzes", "List end-of-lesson quizzes", runQuizzes},
		{"quiz-delete", "Delete a quiz", runQuizDelete},
		{"books", "List library books", runBooks},
		{"book-upload", "Upload a book with its document", runBookUpload},
		{"book-publish", "Store a document in the blob store and create the book", runBookPublish},
		{"book-delete", "Delete a library book", runBookDelete},
		{"chat-groups", "List community chat groups", runChatGroups},
		{"chat-group-create", "Create a community chat group", runChatGroupCreate},
		{"chat-messages", "List messages of a chat group", runChatMessages},
		{"chat-send", "Post a message to a chat group", runChatSend},
		{"help-desk", "List help-desk conversations", runHelpDesk},
		{"help-desk-reply", "Reply to a help-desk conversation", runHelpDeskReply},
		{"help-desk-close", "Close a help-desk conversation", runHelpDeskClose},
		{"wallets", "List wallets", runWallets},
		{"wallet-transactions", "List the transactions of a wallet", runWalletTransactions},
		{"wallet-credit", "Credit a user's wallet", runWalletCredit},
		{"dashboard", "Show the landing summary", runDashboard},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: console <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-22s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

// reportError prints a service failure the way an operator needs to read it.
func reportError(w io.Writer, err error) error {
	svcErr, ok := svcerrors.As(err)
	if !ok {
		return writef(w, "error: %v\n", err)
	}

	if err := writef(w, "error: %s\n", svcErr.Message); err != nil {
		return err
	}
	switch svcErr.Kind {
	case svcerrors.KindUnauthorized:
		return writeln(w, "You are signed out. Run `console login` to continue.")
	case svcerrors.KindValidation:
		if svcErr.Details != nil {
			return printJSON(w, svcErr.Details)
		}
	case svcerrors.KindNetwork:
		return writeln(w, "The backend could not be reached. Check API_BASE_URL and your connection.")
	}
	return nil
}
