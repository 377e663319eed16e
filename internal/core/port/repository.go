package port

import (
	"context"
	"moviemagnet/internal/core/domain"
)

type MovieRepository interface {
	// RandomMovie returns one movie sampled uniformly from those matching the filter, or nil if none match.
	RandomMovie(ctx context.Context, filter domain.MovieFilter) (*domain.Movie, error)
	// RandomMovieByGenre is RandomMovie further limited to movies having a genre that contains the given text,
	// case-insensitively.
	RandomMovieByGenre(ctx context.Context, genre string, filter domain.MovieFilter) (*domain.Movie, error)
	// Genres lists all distinct genres in store order.
	Genres(ctx context.Context) ([]string, error)
}
