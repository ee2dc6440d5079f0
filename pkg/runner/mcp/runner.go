package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/store"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Service *app.Service
	Name    string
	Version string
	Logger  *slog.Logger
	// Events, when set, triggers a reload whenever storage changes.
	Events <-chan store.Event
}

// NewServer builds the MCP server with every tool and resource registered.
func (r Runner) NewServer(svc *Service) *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "todos"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Manage a todo list: add, toggle, edit, remove, filter and search entries. Entry indices address the current filtered view."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do serves MCP over stdio until the client disconnects.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a service")
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc := NewService(r.Service)
	srv := r.NewServer(svc)

	followCtx, stopFollow := context.WithCancel(ctx)
	followed := make(chan struct{})
	go func() {
		defer close(followed)
		svc.Follow(followCtx, r.Events)
	}()
	defer func() {
		stopFollow()
		<-followed
	}()

	errLogger := slog.NewLogLogger(logger.Handler(), slog.LevelError)
	err := server.ServeStdio(srv, server.WithErrorLogger(errLogger))
	if cerr := svc.Close(ctx); cerr != nil {
		logger.Error("closing service", "error", cerr)
	}
	return err
}
