// Skifree-server runs the game room behind a websocket endpoint at /ws.
//
// Settings come from .env and SKIFREE_* environment variables; flags override
// them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phanxgames/skifree/config"
	"github.com/phanxgames/skifree/course"
	"github.com/phanxgames/skifree/logging"
	"github.com/phanxgames/skifree/room"
	"github.com/phanxgames/skifree/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env", ".env", "dotenv file to load")
	host := flag.String("host", "", "listen host (overrides "+config.EnvHost+")")
	port := flag.Int("port", 0, "listen port (overrides "+config.EnvPort+")")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		if cfg.Port, err = config.ParsePort(fmt.Sprint(*port)); err != nil {
			return err
		}
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	var file io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		file = f
	}
	log := logging.New(os.Stderr, file, level)
	slog.SetDefault(log)

	var opts []room.Option
	opts = append(opts, room.WithLogger(log))
	if cfg.Seed != 0 {
		opts = append(opts, room.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	rm, err := room.New(course.DefaultParameters(), opts...)
	if err != nil {
		return err
	}
	log.Info("game room created")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.NewServeMux(server.NewHandler(rm, log, server.DefaultHandlerConfig())),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
