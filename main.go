package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"eventstream/infrastructure/cache"
	"eventstream/infrastructure/configuration"
	"eventstream/infrastructure/logger"
	"eventstream/infrastructure/persistence"
	"eventstream/infrastructure/security"
	httpHandler "eventstream/interfaces/http"
	"eventstream/server"
	"eventstream/usecase"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// Env files are non-destructive; OS env still has precedence.
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Load()
	if err := configuration.C.Validate(); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Configuration invalid")
	}
	app := configuration.C.App

	psqlDb, err := persistence.NewPostgreSQLDB()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Cannot connect to PostgreSQL")
	}
	defer psqlDb.Close()
	logger.GetLogger().Info("Database connected.")

	statsCache := cache.NewStatsCache(configuration.C.RedisClient, time.Minute)
	if statsCache != nil {
		logger.GetLogger().Info("Redis statistics cache initialized.")
	}

	hasher := security.NewPasswordHasher(app.HashCost)
	tokens := security.NewTokenService(app.SecretKey, time.Duration(app.TokenTTLSeconds)*time.Second)

	userRepository := persistence.NewUserRepository(psqlDb)
	eventRepository := persistence.NewEventRepository(psqlDb)
	videoRepository := persistence.NewVideoRepository(psqlDb)
	videoViewRepository := persistence.NewVideoViewRepository(psqlDb)
	statisticsRepository := persistence.NewStatisticsRepository(psqlDb)

	authUsecase := usecase.NewAuthUsecase(userRepository, hasher, tokens)
	userUsecase := usecase.NewUserUsecase(userRepository, hasher)
	adminUserUsecase := usecase.NewAdminUserUsecase(userRepository, hasher)
	eventUsecase := usecase.NewEventUsecase(eventRepository)
	videoUsecase := usecase.NewVideoUsecase(videoRepository)
	playbackUsecase := usecase.NewPlaybackUsecase(videoViewRepository)
	statisticsUsecase := usecase.NewStatisticsUsecase(statisticsRepository, statsCache)

	router := server.InitiateRouter(server.Handlers{
		Auth:       httpHandler.NewAuthHandler(authUsecase),
		User:       httpHandler.NewUserHandler(userUsecase, playbackUsecase, eventUsecase),
		Event:      httpHandler.NewEventHandler(eventUsecase),
		Video:      httpHandler.NewVideoHandler(videoUsecase),
		AdminUser:  httpHandler.NewAdminUserHandler(adminUserUsecase),
		Statistics: httpHandler.NewStatisticsHandler(statisticsUsecase),
	}, tokens, psqlDb)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.GetLogger().WithField("port", app.Port).Info("Starting application")
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-interrupt:
			logger.GetLogger().Info("Application shutdown requested")
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(1)
	}
}
