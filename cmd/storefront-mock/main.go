package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vijayaragavan-dev/storefront/internal/logging"
	"github.com/vijayaragavan-dev/storefront/internal/mockapi"
)

func main() {
	host := flag.String("host", "127.0.0.1", "Listen host")
	port := flag.Int("port", 8080, "Listen port")
	latency := flag.Duration("latency", 0, "Delay added to every response")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "text", "Log format (text or json)")
	flag.Parse()

	logger := logging.Init(*logLevel, *logFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mockapi.New(
		mockapi.WithLatency(*latency),
		mockapi.WithLogger(logger),
	)
	addr := fmt.Sprintf("%s:%d", *host, *port)
	if *latency > 0 {
		logger.Info("adding response latency", "latency", latency.Round(time.Millisecond))
	}
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("shut down")
}
