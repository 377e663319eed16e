package command

import (
	"context"
	"fmt"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const genresHeader = "🎭 *Available Genres* 🎭\n\n"

type DisplayGenres struct {
	repository port.MovieRepository
	textSender port.TextSender
}

func NewDisplayGenres(repository port.MovieRepository, textSender port.TextSender) *DisplayGenres {
	return &DisplayGenres{repository: repository, textSender: textSender}
}

func (d *DisplayGenres) GetCommand() domain.CommandKind {
	return domain.CommandDisplayGenres
}

func (d *DisplayGenres) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := zerolog.Ctx(ctx).With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", string(d.GetCommand())).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	go d.textSender.SendChatAction(ctx, message.ChatID, domain.Typing)

	genres, err := d.repository.Genres(ctx)
	if err != nil {
		err = fmt.Errorf("error listing genres: %w", err)
		return d.textSender.NotifyAndReturnError(ctx, err, message)
	}

	l.Debug().Int("count", len(genres)).Msg("listing genres")

	err = d.textSender.SendText(ctx, message, genresHeader+strings.Join(genres, "\n"), domain.Markdown)
	if err != nil {
		return fmt.Errorf("error sending genres: %w", err)
	}

	return nil
}
