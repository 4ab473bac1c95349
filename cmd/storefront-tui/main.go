package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vijayaragavan-dev/storefront/internal/app"
	"github.com/vijayaragavan-dev/storefront/internal/client"
	"github.com/vijayaragavan-dev/storefront/internal/config"
	"github.com/vijayaragavan-dev/storefront/internal/gateway"
	"github.com/vijayaragavan-dev/storefront/internal/logging"
	"github.com/vijayaragavan-dev/storefront/internal/overlay"
	"github.com/vijayaragavan-dev/storefront/internal/session"
	"github.com/vijayaragavan-dev/storefront/internal/toast"
	"github.com/vijayaragavan-dev/storefront/internal/views/debug"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to YAML config file")
	baseURL := flag.String("url", "", "Storefront API base URL (overrides config)")
	timeout := flag.Duration("timeout", 0, "Request timeout (overrides config)")
	ephemeral := flag.Bool("ephemeral", false, "Keep the session in memory only")
	logFile := flag.String("log", "", "Log file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.API.Timeout = *timeout
	}
	if *ephemeral {
		cfg.Session.Ephemeral = true
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	w, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer w.Close()

	base := logging.Init(cfg.Log.Level, cfg.Log.Format, w)
	sink := debug.NewSink(slog.LevelDebug)
	logger := slog.New(logging.Fanout(base.Handler(), sink))

	var store session.Store
	if cfg.Session.Ephemeral {
		store = session.NewMemoryStore()
	} else {
		fs, err := session.NewFileStore(cfg.Session.Dir)
		if err != nil {
			return err
		}
		logger.Info("session file", "path", fs.Path())
		store = fs
	}

	expiry := &app.Expiry{}
	gw := gateway.New(cfg.API.BaseURL, store,
		gateway.WithTimeout(cfg.API.Timeout),
		gateway.WithLogger(logger.With("component", "gateway")),
		gateway.OnSessionExpired(expiry.Notify),
	)

	m := app.New(app.Deps{
		API:     client.New(gw, store),
		Store:   store,
		Overlay: overlay.New(overlay.WithWatchdog(cfg.Overlay.Watchdog)),
		Toasts:  toast.New(toast.WithTTL(cfg.Toast.TTL), toast.WithExit(cfg.Toast.Exit)),
		Expiry:  expiry,
		Sink:    sink,
		Logger:  logger,
	})

	started := time.Now()
	logger.Info("starting storefront", "api", cfg.API.BaseURL, "timeout", gw.Timeout())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	logger.Info("exiting", "uptime", time.Since(started).Round(time.Second))
	return err
}
