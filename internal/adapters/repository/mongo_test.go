package repository

import (
	"context"
	"errors"
	"moviemagnet/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeCollection struct {
	docs        []any
	genres      []string
	err         error
	gotPipeline any
	gotField    string
}

func (f *fakeCollection) Aggregate(_ context.Context, pipeline any) (*mongo.Cursor, error) {
	f.gotPipeline = pipeline
	if f.err != nil {
		return nil, f.err
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

func (f *fakeCollection) Distinct(_ context.Context, field string) ([]string, error) {
	f.gotField = field
	return f.genres, f.err
}

func movieDoc() bson.M {
	return bson.M{
		"title":       "Heat",
		"rating":      "8.3",
		"year":        "2005",
		"genres":      bson.A{"crime", "drama"},
		"actors":      bson.A{bson.M{"name": "Al Pacino", "role": "Hanna"}},
		"summary":     "Bank robbers.",
		"trailerLink": "https://example.org/heat",
		"imageUrl":    "https://example.org/heat.jpg",
		"download":    bson.A{bson.M{"quality": "1080p", "link": "https://example.org/heat/1080"}},
	}
}

func TestRandomMovie(t *testing.T) {
	fc := &fakeCollection{docs: []any{movieDoc()}}
	repo := &Mongo{movies: fc}

	movie, err := repo.RandomMovie(t.Context(), domain.DefaultMovieFilter)
	require.NoError(t, err)
	require.NotNil(t, movie)

	assert.Equal(t, &domain.Movie{
		Title:       "Heat",
		Rating:      "8.3",
		Year:        "2005",
		Genres:      []string{"crime", "drama"},
		Actors:      []domain.Actor{{Name: "Al Pacino", Role: "Hanna"}},
		Summary:     "Bank robbers.",
		TrailerLink: "https://example.org/heat",
		ImageURL:    "https://example.org/heat.jpg",
		Download:    []domain.Download{{Quality: "1080p", Link: "https://example.org/heat/1080"}},
	}, movie)

	assert.Equal(t, mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "rating", Value: bson.D{{Key: "$gt", Value: "7"}}},
			{Key: "year", Value: bson.D{{Key: "$gte", Value: "2000"}}},
		}}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}, fc.gotPipeline)
}

func TestRandomMovieNoMatch(t *testing.T) {
	repo := &Mongo{movies: &fakeCollection{docs: []any{}}}

	movie, err := repo.RandomMovie(t.Context(), domain.DefaultMovieFilter)
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestRandomMovieStoreError(t *testing.T) {
	repo := &Mongo{movies: &fakeCollection{err: errors.New("server selection timeout")}}

	_, err := repo.RandomMovie(t.Context(), domain.DefaultMovieFilter)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestRandomMovieKeepsMissingAndEmptyListsApart(t *testing.T) {
	doc := movieDoc()
	delete(doc, "download")
	doc["actors"] = bson.A{}

	repo := &Mongo{movies: &fakeCollection{docs: []any{doc}}}

	movie, err := repo.RandomMovie(t.Context(), domain.DefaultMovieFilter)
	require.NoError(t, err)

	assert.Nil(t, movie.Download)
	assert.NotNil(t, movie.Actors)
	assert.Empty(t, movie.Actors)
}

func TestRandomMovieUndecodableRecord(t *testing.T) {
	doc := movieDoc()
	doc["genres"] = "not a list"

	repo := &Mongo{movies: &fakeCollection{docs: []any{doc}}}

	_, err := repo.RandomMovie(t.Context(), domain.DefaultMovieFilter)
	require.ErrorIs(t, err, domain.ErrMalformedRecord)
}

func TestRandomMovieByGenre(t *testing.T) {
	fc := &fakeCollection{docs: []any{movieDoc()}}
	repo := &Mongo{movies: fc}

	movie, err := repo.RandomMovieByGenre(t.Context(), "sci-fi (new)", domain.DefaultMovieFilter)
	require.NoError(t, err)
	require.NotNil(t, movie)

	pipeline, ok := fc.gotPipeline.(mongo.Pipeline)
	require.True(t, ok)
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{
		{Key: "genres", Value: bson.Regex{Pattern: `sci-fi \(new\)`, Options: "i"}},
		{Key: "rating", Value: bson.D{{Key: "$gt", Value: "7"}}},
		{Key: "year", Value: bson.D{{Key: "$gte", Value: "2000"}}},
	}}}, pipeline[0])
}

func TestRandomMovieByGenreNoMatch(t *testing.T) {
	repo := &Mongo{movies: &fakeCollection{}}

	movie, err := repo.RandomMovieByGenre(t.Context(), "noir", domain.DefaultMovieFilter)
	require.NoError(t, err)
	assert.Nil(t, movie)
}

func TestGenres(t *testing.T) {
	fc := &fakeCollection{genres: []string{"Comedy", "Drama", "Action"}}
	repo := &Mongo{movies: fc}

	genres, err := repo.Genres(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"Comedy", "Drama", "Action"}, genres)
	assert.Equal(t, "genres", fc.gotField)
}

func TestGenresStoreError(t *testing.T) {
	repo := &Mongo{movies: &fakeCollection{err: errors.New("no reachable servers")}}

	_, err := repo.Genres(t.Context())
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
