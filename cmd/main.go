// Package main runs the mutation service hosting the privileged member functions.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"member-admin/config"
	"member-admin/internal/auth"
	"member-admin/internal/repository"
	"member-admin/internal/transport/http/server"
	"member-admin/internal/usecase"
	"member-admin/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, auth.NewTokens(cfg.Auth), cfg.HTTP.RequestTimeout)
	serv := server.New(log, cfg.HTTP, uc)

	go func() {
		log.Infow("mutation service listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown", "error", err, "timeout", cfg.Server.ShutdownTimeout)
	}
}
