package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/learnhub/admin-console/internal/domain/model"
)

func runChatGroups(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("chat-groups", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}

	groups, err := cmdCtx.Services.Chat.ListGroups(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	return render(cmdCtx.Out, asJSON, groups, []string{"ID", "NAME", "SUBJECT", "MEMBERS"}, func() [][]string {
		rows := make([][]string, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, []string{g.ID, g.Name, orDash(g.Subject), strconv.Itoa(g.Members)})
		}
		return rows
	})
}

func runChatGroupCreate(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		req    model.CreateChatGroupRequest
		icon   string
	)
	fs := newFlagSet("chat-group-create", &asJSON)
	fs.StringVar(&req.Name, "name", "", "Group name")
	fs.StringVar(&req.Description, "description", "", "Description")
	fs.StringVar(&req.Subject, "subject", "", "Subject id")
	fs.StringVar(&icon, "icon", "", "Path to the group icon image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Name == "" {
		return errors.New("--name is required")
	}
	if icon != "" {
		doc, err := readDocument(icon)
		if err != nil {
			return err
		}
		req.Icon = &doc
	}

	group, err := cmdCtx.Services.Chat.CreateGroup(cmdCtx.Ctx, &req)
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, group, "Created chat group", func(g model.ChatGroup) string { return g.ID })
}

func runChatMessages(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("chat-messages", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}
	groupID, err := requireID(fs.Args(), "group")
	if err != nil {
		return err
	}

	messages, err := cmdCtx.Services.Chat.ListMessages(cmdCtx.Ctx, groupID)
	if err != nil {
		return err
	}
	return render(cmdCtx.Out, asJSON, messages, []string{"ID", "WHEN", "FROM", "MESSAGE"}, func() [][]string {
		rows := make([][]string, 0, len(messages))
		for _, m := range messages {
			from := m.SenderName
			if from == "" {
				from = m.SenderID
			}
			rows = append(rows, []string{m.ID, formatTime(m.CreatedAt), orDash(from), m.Text})
		}
		return rows
	})
}

func runChatSend(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("chat-send", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return errors.New("usage: chat-send <group-id> <message>")
	}

	msg, err := cmdCtx.Services.Chat.SendMessage(cmdCtx.Ctx, rest[0], &model.SendChatMessageRequest{
		Text: strings.Join(rest[1:], " "),
	})
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, msg, "Sent message", func(m model.ChatMessage) string { return m.ID })
}

func runHelpDesk(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		status string
		id     string
	)
	fs := newFlagSet("help-desk", &asJSON)
	fs.StringVar(&status, "status", "", "Filter by status: open|closed")
	fs.StringVar(&id, "id", "", "Show one conversation with its messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if id != "" {
		conv, err := cmdCtx.Services.HelpDesk.GetConversation(cmdCtx.Ctx, id)
		if err != nil {
			return err
		}
		if asJSON || conv == nil {
			return printJSON(cmdCtx.Out, conv)
		}
		return printConversation(cmdCtx, conv)
	}

	filter := model.ConversationStatus(strings.ToLower(status))
	if filter != "" && filter != model.ConversationOpen && filter != model.ConversationClosed {
		return fmt.Errorf("invalid --status %q", status)
	}

	convs, err := cmdCtx.Services.HelpDesk.ListConversations(cmdCtx.Ctx, filter)
	if err != nil {
		return err
	}
	return render(cmdCtx.Out, asJSON, convs, []string{"ID", "STATUS", "STUDENT", "SUBJECT", "UPDATED"}, func() [][]string {
		rows := make([][]string, 0, len(convs))
		for _, c := range convs {
			student := c.StudentName
			if student == "" {
				student = c.StudentID
			}
			rows = append(rows, []string{c.ID, string(c.Status), orDash(student), c.Subject, formatTime(c.UpdatedAt)})
		}
		return rows
	})
}

func printConversation(cmdCtx *commandContext, conv *model.Conversation) error {
	if err := writef(cmdCtx.Out, "%s [%s] %s\n\n", conv.ID, conv.Status, conv.Subject); err != nil {
		return err
	}
	rows := make([][]string, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		author := m.Author
		if m.FromAdmin {
			author += " (admin)"
		}
		rows = append(rows, []string{formatTime(m.CreatedAt), orDash(author), m.Text})
	}
	if len(rows) == 0 {
		return writeln(cmdCtx.Out, "(no messages)")
	}
	return table(cmdCtx.Out, []string{"WHEN", "FROM", "MESSAGE"}, rows)
}

func runHelpDeskReply(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("help-desk-reply", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return errors.New("usage: help-desk-reply <conversation-id> <message>")
	}

	conv, err := cmdCtx.Services.HelpDesk.Reply(cmdCtx.Ctx, rest[0], &model.ReplyRequest{Text: strings.Join(rest[1:], " ")})
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, conv, "Replied to conversation", func(c model.Conversation) string { return c.ID })
}

func runHelpDeskClose(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "conversation")
	if err != nil {
		return err
	}
	if _, err := cmdCtx.Services.HelpDesk.Close(cmdCtx.Ctx, id); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "Closed conversation %s\n", id)
}

func runWallets(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		user   string
	)
	fs := newFlagSet("wallets", &asJSON)
	fs.StringVar(&user, "user", "", "Only the wallet of this user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var wallets []model.Wallet
	if user != "" {
		w, err := cmdCtx.Services.Wallet.GetByUser(cmdCtx.Ctx, user)
		if err != nil {
			return err
		}
		if w != nil {
			wallets = append(wallets, *w)
		}
	} else {
		list, err := cmdCtx.Services.Wallet.List(cmdCtx.Ctx)
		if err != nil {
			return err
		}
		wallets = list
	}

	return render(cmdCtx.Out, asJSON, wallets, []string{"ID", "USER", "BALANCE", "UPDATED"}, func() [][]string {
		rows := make([][]string, 0, len(wallets))
		for _, w := range wallets {
			rows = append(rows, []string{w.ID, w.UserID, formatAmount(w.Balance, w.Currency), formatTime(w.UpdatedAt)})
		}
		return rows
	})
}

func runWalletTransactions(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("wallet-transactions", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}
	walletID, err := requireID(fs.Args(), "wallet")
	if err != nil {
		return err
	}

	txs, err := cmdCtx.Services.Wallet.Transactions(cmdCtx.Ctx, walletID)
	if err != nil {
		return err
	}
	return render(cmdCtx.Out, asJSON, txs, []string{"ID", "WHEN", "TYPE", "AMOUNT", "NOTE"}, func() [][]string {
		rows := make([][]string, 0, len(txs))
		for _, t := range txs {
			rows = append(rows, []string{t.ID, formatTime(t.CreatedAt), t.Type, formatAmount(t.Amount, ""), orDash(t.Note)})
		}
		return rows
	})
}

func runWalletCredit(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		req    model.CreditRequest
	)
	fs := newFlagSet("wallet-credit", &asJSON)
	fs.StringVar(&req.UserID, "user", "", "User id")
	fs.Float64Var(&req.Amount, "amount", 0, "Amount to credit")
	fs.StringVar(&req.Note, "note", "", "Note recorded on the transaction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.UserID == "" {
		return errors.New("--user is required")
	}
	if req.Amount <= 0 {
		return errors.New("--amount must be greater than zero")
	}

	tx, err := cmdCtx.Services.Wallet.Credit(cmdCtx.Ctx, &req)
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, tx, "Credited wallet", func(t model.Transaction) string {
		return fmt.Sprintf("(transaction %s, %s)", t.ID, formatAmount(t.Amount, ""))
	})
}

func runDashboard(cmdCtx *commandContext, args []string) error {
	var asJSON bool
	fs := newFlagSet("dashboard", &asJSON)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dash, err := cmdCtx.Services.Dashboard.Load(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(cmdCtx.Out, dash)
	}
	return table(cmdCtx.Out, []string{"COLLECTION", "COUNT"}, [][]string{
		{"Subjects", strconv.Itoa(len(dash.Subjects))},
		{"Exams", strconv.Itoa(len(dash.Exams))},
		{"Library books", strconv.Itoa(len(dash.Books))},
		{"Open conversations", strconv.Itoa(len(dash.OpenConversations))},
	})
}
