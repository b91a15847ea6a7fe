package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veracourse/portal/internal/audit"
	"github.com/veracourse/portal/internal/auth"
	"github.com/veracourse/portal/internal/cache/redis"
	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/hdl/http"
	"github.com/veracourse/portal/internal/observability/metrics/prometheus"
	"github.com/veracourse/portal/internal/observability/tracing/jaeger"
	"github.com/veracourse/portal/internal/repo/db"
	"github.com/veracourse/portal/internal/repo/s3"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/veracourse/portal/internal/smtp"
	"go.uber.org/zap"
)

const configPath = "configs/local.config.yaml"
const shutdownTimeout = 10 * time.Second

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	storage := s3.New(conf.Minio)
	mailer := smtp.New(conf)

	au := auth.New(conf)
	auditor := audit.New(repo, mailer)
	bus := revocation.NewRedisBus(cache.Client())

	svc := ctrl.New(au, repo, cache, auditor, bus, storage)
	h := http.New(au, svc)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
