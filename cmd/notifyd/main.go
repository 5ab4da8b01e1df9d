package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"notifyd/internal/common/fsutil"
	"notifyd/internal/config"
	"notifyd/internal/httpapi"
	"notifyd/internal/hub"
	"notifyd/internal/mediators"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("NOTIFYD_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Path to configuration file (yaml/json/toml)")
	logLevel := flag.String("log-level", "", "Log level: debug|info|warn|error (overrides config)")
	corsEnabled := flag.Bool("cors-enabled", false, "Enable CORS middleware")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins")
	auditInterests := flag.String("audit", "", "Comma-separated notification names for the audit-log mediator")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		p, err := fsutil.ExpandHome(*configPath)
		if err != nil {
			log.Fatalf("failed to resolve config path: %v", err)
		}
		if !fsutil.PathExists(p) {
			log.Fatalf("config file not found: %s", p)
		}
		cfg, err = config.Load(p)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	// Flags override file values
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *corsEnabled {
		cfg.CORSEnabled = true
	}
	if v := splitCSV(*corsOrigins); len(v) > 0 {
		cfg.CORSOrigins = v
	}
	if v := splitCSV(*auditInterests); len(v) > 0 {
		cfg.Audit.Enabled = true
		cfg.Audit.Interests = v
	}

	logger := newLogger(cfg.LogLevel)

	// The daemon is the single construction site for the process-wide hub.
	h, err := hub.NewSingleton(hub.HubConfig{Logger: &logger})
	if err != nil {
		log.Fatalf("failed to construct hub: %v", err)
	}
	if cfg.Audit.Enabled {
		h.RegisterMediator(mediators.NewAuditLog(logger, cfg.Audit.Interests, cfg.Audit.AsyncInterests))
	}

	httpapi.SetLogger(logger)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetDispatchTimeoutSeconds(cfg.DispatchTimeoutS)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{http.MethodGet, http.MethodPost}, []string{"Content-Type", "X-Log-Level"})

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(h)}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("notifyd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated flag value, trimming blanks.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
