package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/adapters/sqlite"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/config"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/platform/logging"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/questionbank"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/assessments"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/history"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/services/mitigations"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/workers/reminders"
)

// app holds what the subcommands share. The store is opened lazily so
// commands that never touch it (questions, score) work without a writable
// directory.
type app struct {
	dbPath    string
	logLevel  string
	jsonOut   bool
	licensed  bool
	noPrompt  bool
	session   reminders.Session
	now       func() time.Time
	log       *slog.Logger
	db        *sqlite.DB
	assess    *assessments.Service
	history   *history.Service
	mitigator *mitigations.Service
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{now: time.Now}
	defer a.close()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	cfg, _ := config.Load()
	root := &cobra.Command{
		Use:           "govassess",
		Short:         "AI governance maturity self-assessment",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logging.NewWriter(cmd.ErrOrStderr(), "text", a.logLevel)
			if a.noPrompt {
				a.session.DismissPrompt()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", cfg.SQLitePath, "path to the local assessment database")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print machine-readable JSON")
	root.PersistentFlags().BoolVar(&a.licensed, "licensed", false, "a valid professional license is installed")
	root.PersistentFlags().BoolVar(&a.noPrompt, "no-prompt", false, "do not show the reassessment check-in prompt")

	root.AddCommand(
		a.questionsCmd(),
		a.scoreCmd(),
		a.completeCmd(),
		a.historyCmd(),
		a.trendCmd(),
		a.mitigationsCmd(),
	)
	return root
}

// open connects the store on first use and delivers any reminders that
// came due since the last run.
func (a *app) open(cmd *cobra.Command) error {
	if a.db != nil {
		return nil
	}
	ctx := cmd.Context()
	db, err := sqlite.Open(ctx, a.dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", a.dbPath, err)
	}
	a.db = db
	a.mitigator = mitigations.New(db, db, a.log).WithClock(a.now)
	a.assess = assessments.New(questionbank.Default(), db, db, a.mitigator, a.log).WithClock(a.now)
	a.history = history.New(db)

	pending, err := db.PendingSchedules(ctx)
	if err != nil {
		a.log.WarnContext(ctx, "reading reminder schedules", "error", err)
		return nil
	}
	notifier := printNotifier{w: cmd.ErrOrStderr()}
	for _, s := range pending {
		if _, err := reminders.CheckDue(ctx, db, notifier, s.OrgKey, a.now()); err != nil {
			a.log.WarnContext(ctx, "delivering reminders", "org", s.OrgKey, "error", err)
		}
	}
	return nil
}

// checkIn shows the reassessment prompt for org once per session, for the
// latest milestone that has elapsed since its first completed assessment.
func (a *app) checkIn(cmd *cobra.Command, org string) {
	if a.session.PromptDismissed() {
		return
	}
	ctx := cmd.Context()
	sched, err := a.db.GetSchedule(ctx, org)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			a.log.WarnContext(ctx, "reading reminder schedule", "org", org, "error", err)
		}
		return
	}
	m, ok := reminders.ShouldPrompt(sched, a.now(), &a.session)
	if !ok {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Check-in: %d days have passed since %s was first assessed. Run `govassess complete` to measure your progress, or pass --no-prompt to hide this.\n", int(m), org)
	a.session.DismissPrompt()
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// printNotifier shows due reminders on the terminal.
type printNotifier struct{ w io.Writer }

func (n printNotifier) Notify(_ context.Context, r reminders.Reminder) error {
	_, err := fmt.Fprintf(n.w, "[%s] %s: %s\n", r.Title, r.OrgKey, r.Body)
	return err
}
