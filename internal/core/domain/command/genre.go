package command

import (
	"context"
	"errors"
	"fmt"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

type Genre struct {
	repository  port.MovieRepository
	presenter   Presenter
	photoSender port.PhotoSender
	textSender  port.TextSender
}

func NewGenre(repository port.MovieRepository,
	presenter Presenter,
	photoSender port.PhotoSender,
	textSender port.TextSender) *Genre {
	return &Genre{
		repository:  repository,
		presenter:   presenter,
		photoSender: photoSender,
		textSender:  textSender,
	}
}

func (g *Genre) GetCommand() domain.CommandKind {
	return domain.CommandGenre
}

func (g *Genre) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := zerolog.Ctx(ctx).With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", string(g.GetCommand())).
		Str("genre", message.Args).
		Logger()

	l.Info().Msg("handling request")

	if message.Args == "" {
		return errors.New("missing genre")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	go g.textSender.SendChatAction(ctx, message.ChatID, domain.SendingPhoto)

	movie, err := g.repository.RandomMovieByGenre(ctx, message.Args, domain.DefaultMovieFilter)
	if err != nil {
		err = fmt.Errorf("error fetching movie by genre: %w", err)
		return g.textSender.NotifyAndReturnError(ctx, err, message)
	}

	if movie == nil {
		l.Debug().Msg("no movie found for genre")

		err = g.textSender.SendText(ctx, message, domain.NoGenreMatchText, domain.PlainText)
		if err != nil {
			return fmt.Errorf("error sending no match response: %w", err)
		}

		return nil
	}

	l.Debug().Str("title", movie.Title).Msg("sending movie")

	return sendMovie(ctx, g.presenter, g.photoSender, g.textSender, message, movie)
}
