package main

import (
	"context"
	"errors"
	"moviemagnet/internal/adapters/handler"
	"moviemagnet/internal/adapters/instance"
	"moviemagnet/internal/adapters/repository"
	"moviemagnet/internal/adapters/sender"
	"moviemagnet/internal/config"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/domain/command"
	"moviemagnet/internal/core/service"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Info().Msg("starting moviemagnet...")

	log.Info().Msg("reading config...")
	cfg, err := config.Load(config.New())
	if err != nil {
		if errors.Is(err, domain.ErrConfigMissing) {
			log.Fatal().Err(err).Msg("missing required configuration")
		}
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)

	lock := instance.NewLock(cfg.LockFile)
	acquired, err := lock.Acquire()
	if err != nil {
		log.Fatal().Err(err).Msg("failed checking for running instance")
	}
	if !acquired {
		log.Info().Str("lockFile", cfg.LockFile).Msg("bot is already running, exiting")
		os.Exit(0)
	}
	defer lock.Release()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoMaxPoolSize, cfg.MongoConnectLimit)
	if err != nil {
		log.Panic().Err(err).Msg("failed connecting to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed disconnecting from mongodb")
		}
	}()

	movies := repository.NewMongo(client, cfg.MongoDatabase, cfg.MongoCollection)

	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		log.Warn().Err(err).Msg("failed removing webhook")
	}

	s := sender.NewTelegram(b)
	presenter := service.NewMoviePresenter()

	commandRegistry := &command.Registry{}
	commandRegistry.Register(command.NewStart(s))
	commandRegistry.Register(command.NewAbout(s))
	commandRegistry.Register(command.NewHelp(s))
	commandRegistry.Register(command.NewRandomMovie(movies, presenter, s, s))
	commandRegistry.Register(command.NewDisplayGenres(movies, s))
	commandRegistry.Register(command.NewGenre(movies, presenter, s, s))

	commandHandler := handler.NewCommand(commandRegistry, cfg.HandlerTimeout)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)

	log.Info().Msg("bot listening")
	b.Start(ctx)

	log.Info().Msg("waiting for pending replies")
	commandHandler.Wait()
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
