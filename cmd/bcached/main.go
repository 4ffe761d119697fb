// Command bcached runs the diagnostic HTTP server over a bounded store.
// All settings come from the environment (a .env file is honored when
// present):
//
//	PORT            listen port (default 8080)
//	CACHE_TOKEN     bearer token for /cache routes (empty = open)
//	MAX_ENTRIES     store capacity (default 10000)
//	DEFAULT_TTL     default entry TTL, Go duration (default none)
//	SWEEP_INTERVAL  expiry sweep period, Go duration (default 30s)
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"bcache"
	"bcache/internal/server"
)

func main() {
	_ = godotenv.Load()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := bcache.New(bcache.Config{
		MaxEntries:    getEnvInt("MAX_ENTRIES", 10000),
		DefaultTTL:    getEnvDuration("DEFAULT_TTL", 0),
		SweepInterval: getEnvDuration("SWEEP_INTERVAL", 30*time.Second),
	})
	if err != nil {
		log.Error("invalid store configuration", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	token := os.Getenv("CACHE_TOKEN")
	if token == "" {
		log.Warn("CACHE_TOKEN not set; /cache routes are open")
	}

	srv := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: server.New(server.Config{Token: token}, store).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
