package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/dashboard/internal/api"
	"github.com/samandr77/microservices/dashboard/internal/repository"
	"github.com/samandr77/microservices/dashboard/internal/service"
	"github.com/samandr77/microservices/dashboard/pkg/broker"
	"github.com/samandr77/microservices/dashboard/pkg/config"
	"github.com/samandr77/microservices/dashboard/pkg/job"
	"github.com/samandr77/microservices/dashboard/pkg/logger"
	"github.com/samandr77/microservices/dashboard/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

type eventProducer interface {
	service.Events
	Close()
}

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	slog.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel)))

	var slots service.SlotStore = repository.NewMemorySlots()

	if cfg.PostgresDSN != "" {
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		err = postgres.UpMigrations(ctx, cfg.PostgresDSN)
		panicOnErr("up migrations", err)

		slots = repository.New(pool)
	}

	var producer eventProducer = broker.NopProducer{}

	if len(cfg.Kafka.Brokers) > 0 {
		producer = broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.FileEventsTopic)
	}
	defer producer.Close()

	s := service.New(
		repository.NewFileRepository(repository.SeedFiles()...),
		repository.NewBlobRepository(),
		producer,
		cfg.Upload.Latency,
		cfg.Upload.BlobTTL,
	)

	session, err := service.NewSession(repository.NewUserRepository(), slots, cfg.Session.Secret, cfg.Session.LoginLatency)
	panicOnErr("create session", err)

	err = session.Restore(ctx)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("restore session: %s", err))
	}

	jobs := job.NewRunner().
		Register("release_blobs", cfg.Upload.JobReleaseBlobsInterval, s.ReleaseExpiredBlobs)
	jobs.Start(ctx)

	handler := api.NewHandler(s, session)
	mw := api.NewMiddleware(session)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
