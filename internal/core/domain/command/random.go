package command

import (
	"context"
	"fmt"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

type RandomMovie struct {
	repository  port.MovieRepository
	presenter   Presenter
	photoSender port.PhotoSender
	textSender  port.TextSender
}

func NewRandomMovie(repository port.MovieRepository,
	presenter Presenter,
	photoSender port.PhotoSender,
	textSender port.TextSender) *RandomMovie {
	return &RandomMovie{
		repository:  repository,
		presenter:   presenter,
		photoSender: photoSender,
		textSender:  textSender,
	}
}

func (r *RandomMovie) GetCommand() domain.CommandKind {
	return domain.CommandRandomMovie
}

func (r *RandomMovie) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := zerolog.Ctx(ctx).With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", string(r.GetCommand())).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	go r.textSender.SendChatAction(ctx, message.ChatID, domain.SendingPhoto)

	movie, err := r.repository.RandomMovie(ctx, domain.DefaultMovieFilter)
	if err != nil {
		err = fmt.Errorf("error fetching random movie: %w", err)
		return r.textSender.NotifyAndReturnError(ctx, err, message)
	}

	if movie == nil {
		// no reply on an empty result, matching the original bot
		l.Debug().Msg("no movie matched default filter")
		return nil
	}

	l.Debug().Str("title", movie.Title).Msg("sending movie")

	return sendMovie(ctx, r.presenter, r.photoSender, r.textSender, message, movie)
}
