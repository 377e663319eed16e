package command

import (
	"context"
	"fmt"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
)

type Presenter interface {
	Present(movie *domain.Movie) (domain.Presentation, error)
}

// sendMovie formats a movie and sends it as a photo. Formatting failures are reported to the chat, send
// failures are only returned.
func sendMovie(ctx context.Context,
	presenter Presenter,
	photoSender port.PhotoSender,
	textSender port.TextSender,
	message *domain.Message,
	movie *domain.Movie) error {
	p, err := presenter.Present(movie)
	if err != nil {
		err = fmt.Errorf("error presenting movie: %w", err)
		return textSender.NotifyAndReturnError(ctx, err, message)
	}

	err = photoSender.SendPresentation(ctx, message, p)
	if err != nil {
		return fmt.Errorf("error sending movie: %w", err)
	}

	return nil
}
