package service

import (
	"fmt"
	"moviemagnet/internal/core/domain"
	"strings"
)

const (
	SummaryLimit = 270
	ellipsis     = "..."
)

const captionTemplate = `
🎬 *Title:*      *%s*

⭐️ *Rating:* %s
📅 *Year:* %s
🎭 *Genres:* %s
👤 *Actors:*
%s

📝 *Description:* %s

[[🎬 Watch Trailer](%s)]
`

// MoviePresenter turns a movie record into a Telegram photo payload. It holds no state.
type MoviePresenter struct{}

func NewMoviePresenter() *MoviePresenter {
	return &MoviePresenter{}
}

// Present builds caption, photo and one download button per row. Genres, actors and download must be present
// on the record, empty is fine.
func (p *MoviePresenter) Present(movie *domain.Movie) (domain.Presentation, error) {
	if movie == nil {
		return domain.Presentation{}, fmt.Errorf("%w: nil movie", domain.ErrMalformedRecord)
	}

	switch {
	case movie.Genres == nil:
		return domain.Presentation{}, fmt.Errorf("%w: %q has no genres field", domain.ErrMalformedRecord, movie.Title)
	case movie.Actors == nil:
		return domain.Presentation{}, fmt.Errorf("%w: %q has no actors field", domain.ErrMalformedRecord, movie.Title)
	case movie.Download == nil:
		return domain.Presentation{}, fmt.Errorf("%w: %q has no download field", domain.ErrMalformedRecord, movie.Title)
	}

	actors := make([]string, len(movie.Actors))
	for i, actor := range movie.Actors {
		actors[i] = fmt.Sprintf("%s as %s", actor.Name, actor.Role)
	}

	caption := fmt.Sprintf(captionTemplate,
		movie.Title,
		movie.Rating,
		movie.Year,
		strings.Join(movie.Genres, ", "),
		strings.Join(actors, "\n"),
		TruncateSummary(movie.Summary),
		movie.TrailerLink,
	)

	buttons := make([][]domain.Button, len(movie.Download))
	for i, d := range movie.Download {
		buttons[i] = []domain.Button{{Label: d.Quality, URL: d.Link}}
	}

	return domain.Presentation{
		Caption:  caption,
		PhotoURL: movie.ImageURL,
		Buttons:  buttons,
	}, nil
}

// TruncateSummary cuts summaries longer than SummaryLimit characters and marks the cut with an ellipsis.
func TruncateSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= SummaryLimit {
		return summary
	}

	return string(runes[:SummaryLimit]) + ellipsis
}
