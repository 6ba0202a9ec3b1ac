// Package main is the admin console: list, inspect, add, edit and delete members.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"member-admin/config"
	"member-admin/internal/auth"
	"member-admin/internal/console"
	"member-admin/internal/entities"
	"member-admin/internal/repository"
	"member-admin/internal/usecase"
	"member-admin/pkg/logger"

	"go.uber.org/zap"
)

const usage = `usage: console <command> [flags]

commands:
  list                         show all members with role, department and team role
  whoami                       show the signed-in admin profile
  add    -email -password [-role -department -team-role]
  edit   -user [-role -department -team-role]
  delete -user [-yes]

The admin signs in with CONSOLE_EMAIL and CONSOLE_PASSWORD.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg.Postgres.AutoMigrate = false
	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, auth.NewTokens(cfg.Auth), cfg.HTTP.RequestTimeout)
	c := console.New(log, uc, console.NewFunctionsClient(cfg.Functions))

	if _, err := c.SignIn(ctx, os.Getenv("CONSOLE_EMAIL"), os.Getenv("CONSOLE_PASSWORD")); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	switch cmd {
	case "list":
		return list(ctx, c, os.Stdout)
	case "whoami":
		return whoami(ctx, c, os.Stdout)
	case "add":
		return add(ctx, c, args, os.Stdout)
	case "edit":
		return edit(ctx, c, args, os.Stdout)
	case "delete":
		return remove(ctx, log, c, args, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

func list(ctx context.Context, c *console.Console, out io.Writer) error {
	roster, err := c.Refresh(ctx)
	if err != nil {
		return err
	}
	if roster.State == console.RosterEmpty {
		fmt.Fprintln(out, "No members found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tUSERNAME\tEMAIL\tROLE\tDEPARTMENT\tTEAM ROLE")
	for _, m := range roster.Members {
		fmt.Fprintf(w, "%s\t@%s\t%s\t%s\t%s\t%s\n",
			m.UserID, m.DisplayName(), deref(m.Email), m.CurrentRole(), deref(m.Department), deref(m.TeamRole))
	}
	return w.Flush()
}

func whoami(ctx context.Context, c *console.Console, out io.Writer) error {
	p, err := c.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "@%s <%s> admin\n", deref(p.Username), deref(p.Email))
	return nil
}

func add(ctx context.Context, c *console.Console, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	email := fs.String("email", "", "member email")
	password := fs.String("password", "", "initial password")
	role := fs.String("role", string(entities.RoleMember), "admin or member")
	department := fs.String("department", "", "department")
	teamRole := fs.String("team-role", "", "team role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, err := c.AddMember(ctx, console.NewMember{
		Email:      strings.TrimSpace(*email),
		Password:   *password,
		Role:       entities.Role(*role),
		Department: *department,
		TeamRole:   *teamRole,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Member added: %s has been added as %s\n", *email, *role)
	return nil
}

func edit(ctx context.Context, c *console.Console, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	userID := fs.String("user", "", "account id")
	role := fs.String("role", "", "admin or member, empty keeps the current role")
	department := fs.String("department", "", "department, empty clears it")
	teamRole := fs.String("team-role", "", "team role, empty clears it")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := c.EditMember(ctx, *userID, entities.MemberEdit{
		Role:       entities.Role(*role),
		Department: *department,
		TeamRole:   *teamRole,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Member updated: @%s updated successfully.\n", m.DisplayName())
	return nil
}

func remove(ctx context.Context, log *zap.SugaredLogger, c *console.Console, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	userID := fs.String("user", "", "account id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	confirm := func(m entities.Member) bool {
		if *yes {
			return true
		}
		fmt.Fprintf(out, "Delete @%s permanently? This cannot be undone. [y/N] ", m.DisplayName())
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	m, err := c.RemoveMember(ctx, *userID, confirm)
	if errors.Is(err, console.ErrNotConfirmed) {
		log.Debugw("delete cancelled", "user_id", *userID)
		fmt.Fprintln(out, "Cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "User deleted: @%s has been removed from the system.\n", m.DisplayName())
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
