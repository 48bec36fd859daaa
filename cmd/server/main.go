package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	httpadapter "github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/http"
	pg "github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/postgres"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/sqlite"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/config"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/platform/logging"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/assessments"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/drafts"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/history"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/mitigations"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/workers/reminders"
)

// store is what both adapters provide.
type store interface {
	ports.AssessmentRepository
	ports.MitigationRepository
	ports.DraftRepository
	ports.ScheduleRepository
	Ping(ctx context.Context) error
}

func main() {
	cfg, cfgErr := config.Load()
	log := logging.New(cfg.LogFormat, cfg.LogLevel)
	if cfgErr != nil {
		log.Warn("config", "warning", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("db open failed", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	mit := mitigations.New(db, db, log)
	asm := assessments.New(questionbank.Default(), db, db, mit, log)
	srv := httpadapter.New(asm, history.New(db), mit, drafts.New(db), db.Ping, log)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.ReminderWorkers > 0 {
		g.Go(func() error {
			log.Info("reminder workers started", "workers", cfg.ReminderWorkers, "interval", cfg.ReminderInterval)
			reminders.Run(gctx, db, reminders.LogNotifier{Log: log}, log, cfg.ReminderWorkers, cfg.ReminderInterval)
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, db.Close, nil
	}
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = db.Close() }, nil
}
