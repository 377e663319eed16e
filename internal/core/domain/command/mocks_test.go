package command

import (
	"context"
	"moviemagnet/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockTextSender struct {
	mock.Mock
}

func (m *MockTextSender) SendText(ctx context.Context, message *domain.Message, text string,
	mode domain.ParseMode) error {
	args := m.Called(ctx, message, text, mode)
	return args.Error(0)
}

func (m *MockTextSender) SendChatAction(_ context.Context, _ int64, _ domain.Action) {
	// mocked
}

func (m *MockTextSender) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	m.Called(ctx, err, message)
	return err
}

type MockPhotoSender struct {
	mock.Mock
}

func (m *MockPhotoSender) SendPresentation(ctx context.Context, message *domain.Message,
	p domain.Presentation) error {
	args := m.Called(ctx, message, p)
	return args.Error(0)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) RandomMovie(ctx context.Context, filter domain.MovieFilter) (*domain.Movie, error) {
	args := m.Called(ctx, filter)
	movie, _ := args.Get(0).(*domain.Movie)
	return movie, args.Error(1)
}

func (m *MockRepository) RandomMovieByGenre(ctx context.Context, genre string,
	filter domain.MovieFilter) (*domain.Movie, error) {
	args := m.Called(ctx, genre, filter)
	movie, _ := args.Get(0).(*domain.Movie)
	return movie, args.Error(1)
}

func (m *MockRepository) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	genres, _ := args.Get(0).([]string)
	return genres, args.Error(1)
}

type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) Present(movie *domain.Movie) (domain.Presentation, error) {
	args := m.Called(movie)
	p, _ := args.Get(0).(domain.Presentation)
	return p, args.Error(1)
}
