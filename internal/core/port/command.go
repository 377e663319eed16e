package port

import (
	"context"
	"moviemagnet/internal/core/domain"
	"time"
)

type Command interface {
	// Respond processes a given message within a specified timeout and responds to the originating chat.
	Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error
	// GetCommand retrieves the command kind handled by this command handler.
	GetCommand() domain.CommandKind
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its kind or returns an error if not found.
	Get(kind domain.CommandKind) (Command, error)
	// ListCommands returns a list of all command kinds currently registered in the command registry.
	ListCommands() []domain.CommandKind
}
