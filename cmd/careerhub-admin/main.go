package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/careerhub/portal/config"
	"github.com/careerhub/portal/internal/adapters/apiclient"
	"github.com/careerhub/portal/internal/bootstrap"
	domainauth "github.com/careerhub/portal/internal/domain/auth"
)

// tokenEnv names the variable holding the API bearer token the CLI acts with.
const tokenEnv = "CAREERHUB_ADMIN_TOKEN"

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Config  config.AppConfig
	API     *apiclient.Client
	Session domainauth.Session
	Out     io.Writer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmdCtx, err := newCommandContext(ctx, logger)
	if err != nil {
		logger.ErrorContext(ctx, "setup failed", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		stop()
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func newCommandContext(ctx context.Context, logger *slog.Logger) (*commandContext, error) {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}
	token := strings.TrimSpace(os.Getenv(tokenEnv))
	if token == "" {
		return nil, errors.New(tokenEnv + " is required")
	}
	api, err := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent + " (admin-cli)",
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return &commandContext{
		Ctx:     ctx,
		Logger:  logger,
		Config:  cfg,
		API:     api,
		Session: domainauth.Session{ID: "admin-cli", Role: domainauth.RoleAdmin, Token: token},
		Out:     os.Stdout,
	}, nil
}

func commands() map[string]command {
	return map[string]command{
		"jobs-list": {
			name:        "jobs-list",
			description: "List jobs in a table (pinned first)",
			run:         runJobsList,
		},
		"jobs-expired-report": {
			name:        "jobs-expired-report",
			description: "Count live and expired jobs and flag live jobs past their deadline",
			run:         runJobsExpiredReport,
		},
		"materials-list": {
			name:        "materials-list",
			description: "List study materials, optionally by type and category",
			run:         runMaterialsList,
		},
		"materials-import": {
			name:        "materials-import",
			description: "Create study materials from a JSON file of drafts",
			run:         runMaterialsImport,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: careerhub-admin <command> [flags]\n\n"); err != nil {
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
	slices.Sort(names)
	for _, name := range names {
		if err := writef(w, "  %-22s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return writef(w, "\nThe API token is read from %s.\n", tokenEnv)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
