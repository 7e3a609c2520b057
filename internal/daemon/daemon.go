package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trainquest/trainquest/internal/api"
	"github.com/trainquest/trainquest/internal/app/economy"
	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/health"
	_ "github.com/trainquest/trainquest/internal/infra/metrics" // Register Prometheus metrics
	"github.com/trainquest/trainquest/internal/infra/persist"
	"github.com/trainquest/trainquest/internal/infra/sqlite"
)

// Daemon is the core TrainQuest runtime. It wires together all services.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Writer  *persist.Writer
	Tracker *tracker.Service
	Server  *api.Server
	Health  *health.Checker
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	db, err := sqlite.Open(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Load persisted state. A missing or version-mismatched snapshot means
	// a fresh start — the tracker seeds an empty state itself.
	snap, err := db.LoadSnapshot()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		log.Printf("[daemon] no usable snapshot, starting fresh")
	}

	writer := persist.NewWriter(db)

	gachaCfg := economy.DefaultGachaConfig()
	gachaCfg.Enabled = cfg.Economy.EnableGacha
	gachaCfg.PityThreshold = cfg.Economy.PityThreshold
	gachaCfg.DuplicateCoins = cfg.Economy.DuplicateCoins

	trk := tracker.New(snap, writer, tracker.WithGachaConfig(gachaCfg))

	srv := api.NewServer(trk)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	checker := health.NewChecker(db, cfg.Data.Dir)
	srv.SetHealth(checker)

	if _, err := db.InstallID(); err != nil {
		log.Printf("[daemon] install id: %v", err)
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Writer:  writer,
		Tracker: trk,
		Server:  srv,
		Health:  checker,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		d.Writer.Close() // Flushes any pending snapshot
		_ = d.DB.Close()
	}()

	fmt.Printf("TrainQuest serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.Writer != nil {
		d.Writer.Close()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
