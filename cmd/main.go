// Package main wires the HTTP server for the project listing board.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pavankumarofficial1231/College-Connect/config"
	"github.com/pavankumarofficial1231/College-Connect/internal/seed"
	"github.com/pavankumarofficial1231/College-Connect/internal/store"
	"github.com/pavankumarofficial1231/College-Connect/internal/summary"
	"github.com/pavankumarofficial1231/College-Connect/internal/transport/http/middleware"
	handlers_fiber "github.com/pavankumarofficial1231/College-Connect/internal/transport/http/server/handlers-fiber"
	"github.com/pavankumarofficial1231/College-Connect/internal/usecase"
	"github.com/pavankumarofficial1231/College-Connect/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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

	seedProjects, err := seed.Load(cfg.Seed.File)
	if err != nil {
		log.Errorw("seed load error", "error", err)
		return
	}

	st, err := store.New(cfg.Store.Backend, log, seedProjects)
	if err != nil {
		log.Errorw("store initialization error", "error", err)
		return
	}
	if err := st.OnStart(ctx); err != nil {
		log.Errorw("store start error", "error", err)
		return
	}
	defer func() {
		_ = st.OnStop(context.Background())
	}()

	gen, err := summary.NewGeminiGenerator(ctx, cfg.Gemini)
	if err != nil {
		log.Errorw("summary generator initialization error", "error", err)
		return
	}
	drafter := summary.NewDrafter(log, gen, cfg.Gemini.Timeout)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, st, drafter, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterRoutes(serv, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
