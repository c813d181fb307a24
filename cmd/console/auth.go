package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	domainauth "github.com/learnhub/admin-console/internal/domain/auth"
	"github.com/learnhub/admin-console/internal/domain/model"
)

type loginOptions struct {
	Email         string
	Password      string
	PasswordStdin bool
}

func parseLoginFlags(args []string) (loginOptions, error) {
	var asJSON bool
	fs := newFlagSet("login", &asJSON)

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Admin email address")
	fs.StringVar(&opts.Password, "password", "", "Admin password (prefer --password-stdin)")
	fs.BoolVar(&opts.PasswordStdin, "password-stdin", false, "Read the password from stdin")

	if err := fs.Parse(args); err != nil {
		return loginOptions{}, err
	}
	opts.Email = strings.TrimSpace(opts.Email)
	if opts.Email == "" {
		return loginOptions{}, errors.New("--email is required")
	}
	if opts.Password != "" && opts.PasswordStdin {
		return loginOptions{}, errors.New("--password and --password-stdin are mutually exclusive")
	}
	if opts.Password == "" && !opts.PasswordStdin {
		return loginOptions{}, errors.New("one of --password or --password-stdin is required")
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	password := opts.Password
	if opts.PasswordStdin {
		line, readErr := bufio.NewReader(cmdCtx.In).ReadString('\n')
		if readErr != nil && line == "" {
			return fmt.Errorf("read password from stdin: %w", readErr)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	res, err := cmdCtx.Services.Auth.Login(cmdCtx.Ctx, &model.LoginRequest{Email: opts.Email, Password: password})
	if err != nil {
		return err
	}

	if res.Session.Identity == nil {
		return writef(cmdCtx.Out, "Signed in as %s\n", opts.Email)
	}
	return writef(cmdCtx.Out, "Signed in as %s\n", describeIdentity(*res.Session.Identity))
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	if err := cmdCtx.Services.Auth.Logout(cmdCtx.Ctx); err != nil {
		return err
	}
	return writeln(cmdCtx.Out, "Signed out")
}

func runWhoAmI(cmdCtx *commandContext, args []string) error {
	var (
		asJSON  bool
		refresh bool
	)
	fs := newFlagSet("whoami", &asJSON)
	fs.BoolVar(&refresh, "refresh", false, "Fetch the profile from the backend instead of the stored session")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if refresh {
		admin, err := cmdCtx.Services.Auth.Me(cmdCtx.Ctx)
		if err != nil {
			return err
		}
		if asJSON || admin == nil {
			return printJSON(cmdCtx.Out, admin)
		}
		return writeln(cmdCtx.Out, describeIdentity(*admin.Identity()))
	}

	snap := cmdCtx.Services.Sessions.Snapshot()
	if asJSON {
		return printJSON(cmdCtx.Out, snap.Identity)
	}
	switch {
	case snap.Credential == "":
		return writeln(cmdCtx.Out, "Not signed in")
	case snap.Identity == nil:
		return writeln(cmdCtx.Out, "Signed in (identity unknown, try --refresh)")
	default:
		return writeln(cmdCtx.Out, describeIdentity(*snap.Identity))
	}
}

func describeIdentity(id domainauth.Identity) string {
	name := orDash(id.DisplayName)
	if id.Email != "" {
		name = fmt.Sprintf("%s <%s>", name, id.Email)
	}
	if id.Role != "" {
		name = fmt.Sprintf("%s [%s]", name, id.Role)
	}
	return name
}

func runAdmins(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		email  string
	)
	fs := newFlagSet("admins", &asJSON)
	fs.StringVar(&email, "email", "", "Look up a single admin by email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var admins []model.Admin
	if email != "" {
		admin, err := cmdCtx.Services.Auth.GetAdminByEmail(cmdCtx.Ctx, email)
		if err != nil {
			return err
		}
		if admin != nil {
			admins = append(admins, *admin)
		}
	} else {
		list, err := cmdCtx.Services.Auth.ListAdmins(cmdCtx.Ctx)
		if err != nil {
			return err
		}
		admins = list
	}

	return render(cmdCtx.Out, asJSON, admins, []string{"ID", "NAME", "EMAIL", "ROLE"}, func() [][]string {
		rows := make([][]string, 0, len(admins))
		for _, a := range admins {
			rows = append(rows, []string{a.ID, a.FullName, a.Email, orDash(string(a.Role))})
		}
		return rows
	})
}

func runAdminCreate(cmdCtx *commandContext, args []string) error {
	var (
		asJSON bool
		req    model.CreateAdminRequest
		role   string
	)
	fs := newFlagSet("admin-create", &asJSON)
	fs.StringVar(&req.FullName, "name", "", "Full name")
	fs.StringVar(&req.Email, "email", "", "Email address")
	fs.StringVar(&req.Password, "password", "", "Initial password")
	fs.StringVar(&role, "role", "", "Role: admin|super-admin|teacher")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return errors.New("--name, --email and --password are required")
	}
	req.Role = domainauth.Role(role)

	admin, err := cmdCtx.Services.Auth.CreateAdmin(cmdCtx.Ctx, &req)
	if err != nil {
		return err
	}
	return announce(cmdCtx.Out, asJSON, admin, "Created admin", func(a model.Admin) string { return a.ID })
}
