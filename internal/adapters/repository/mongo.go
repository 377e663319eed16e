package repository

import (
	"context"
	"errors"
	"fmt"
	"moviemagnet/internal/core/domain"
	"regexp"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// collection is the part of *mongo.Collection the repository needs.
type collection interface {
	Aggregate(ctx context.Context, pipeline any) (*mongo.Cursor, error)
	Distinct(ctx context.Context, field string) ([]string, error)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c mongoCollection) Aggregate(ctx context.Context, pipeline any) (*mongo.Cursor, error) {
	return c.coll.Aggregate(ctx, pipeline)
}

func (c mongoCollection) Distinct(ctx context.Context, field string) ([]string, error) {
	var values []string

	err := c.coll.Distinct(ctx, field, bson.D{}).Decode(&values)
	if err != nil {
		return nil, err
	}

	return values, nil
}

// Mongo reads movies from a collection. It shares the client's connection pool; each query checks out a
// connection for its own duration only.
type Mongo struct {
	movies collection
}

func NewMongo(client *mongo.Client, database, collectionName string) *Mongo {
	return &Mongo{movies: mongoCollection{coll: client.Database(database).Collection(collectionName)}}
}

func (m *Mongo) RandomMovie(ctx context.Context, filter domain.MovieFilter) (*domain.Movie, error) {
	return m.sample(ctx, matchStage(filter))
}

func (m *Mongo) RandomMovieByGenre(ctx context.Context, genre string, filter domain.MovieFilter) (*domain.Movie, error) {
	match := append(genreMatch(genre), matchStage(filter)...)
	return m.sample(ctx, match)
}

func (m *Mongo) Genres(ctx context.Context) ([]string, error) {
	genres, err := m.movies.Distinct(ctx, "genres")
	if err != nil {
		log.Error().Err(err).Msg("failed to list distinct genres")
		return nil, fmt.Errorf("%w: distinct genres: %w", domain.ErrStoreUnavailable, err)
	}

	return genres, nil
}

func (m *Mongo) sample(ctx context.Context, match bson.D) (*domain.Movie, error) {
	cursor, err := m.movies.Aggregate(ctx, samplePipeline(match))
	if err != nil {
		log.Error().Err(err).Msg("failed to run sample aggregation")
		return nil, fmt.Errorf("%w: aggregate: %w", domain.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := cursor.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("failed to close cursor")
		}
	}()

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("%w: read cursor: %w", domain.ErrStoreUnavailable, err)
		}
		return nil, nil
	}

	var movie domain.Movie
	if err := cursor.Decode(&movie); err != nil {
		return nil, errors.Join(domain.ErrMalformedRecord, fmt.Errorf("decode movie: %w", err))
	}

	return &movie, nil
}

// matchStage compares rating and year as strings, which is how they are stored.
func matchStage(filter domain.MovieFilter) bson.D {
	return bson.D{
		{Key: "rating", Value: bson.D{{Key: "$gt", Value: filter.MinRating}}},
		{Key: "year", Value: bson.D{{Key: "$gte", Value: filter.MinYear}}},
	}
}

func genreMatch(genre string) bson.D {
	return bson.D{
		{Key: "genres", Value: bson.Regex{Pattern: regexp.QuoteMeta(genre), Options: "i"}},
	}
}

func samplePipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
}
