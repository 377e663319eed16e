package handler

import (
	"context"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/domain/command"
	"moviemagnet/internal/core/port"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

type Command struct {
	commandRegistry port.CommandRegistry
	timeout         time.Duration
	inFlight        sync.WaitGroup
}

func NewCommand(commandRegistry port.CommandRegistry, timeout time.Duration) *Command {
	return &Command{commandRegistry: commandRegistry, timeout: timeout}
}

// Handle classifies the update text and answers it in the background. Text that is not a known command is
// ignored.
func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	log.Debug().Str("message", update.Message.Text).Msg("received command")

	cmd, ok := command.Parse(update.Message.Text)
	if !ok {
		log.Debug().Str("text", update.Message.Text).Msg("not a known command, ignoring")
		return
	}

	commandHandler, err := c.commandRegistry.Get(cmd.Kind)
	if err != nil {
		log.Debug().Str("command", string(cmd.Kind)).Msg("no handler for command")
		return
	}

	message := &domain.Message{
		ID:       update.Message.ID,
		ChatID:   update.Message.Chat.ID,
		Username: getUserName(update.Message.From),
		Text:     update.Message.Text,
		Args:     cmd.Arg,
	}

	requestID, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate request id")
	}

	l := log.With().Str("requestId", requestID.String()).Logger()
	ctx = l.WithContext(context.WithoutCancel(ctx))

	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()

		err := commandHandler.Respond(ctx, c.timeout, message)
		if err != nil {
			l.Err(err).Str("command", string(cmd.Kind)).Msg("failed to respond to command")
		}
	}()
}

// Wait blocks until all responses started by Handle have finished.
func (c *Command) Wait() {
	c.inFlight.Wait()
}

func getUserName(user *models.User) string {
	if user == nil {
		return ""
	}

	if user.Username == "" {
		return user.FirstName
	}

	return user.Username
}
