// Package reminders fires the 30/60/90 day follow-up reminders after an
// organization completes an assessment.
package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/metrics"
	"github.com/baltaguilar-tech/ai-governance-tool/internal/ports"
)

// Reminder is one message to deliver.
type Reminder struct {
	OrgKey    string
	Milestone domain.Milestone
	Title     string
	Body      string
}

var reminderBodies = map[domain.Milestone]string{
	domain.Milestone30: "30 days since your AI governance assessment. Time to check your mitigation progress and update your tracker.",
	domain.Milestone60: "60 days since your AI governance assessment. Review completed actions and close any remaining gaps.",
	domain.Milestone90: "90 days since your AI governance assessment. Consider running a new assessment to measure your improvement.",
}

// NewReminder builds the message for m.
func NewReminder(orgKey string, m domain.Milestone) Reminder {
	return Reminder{OrgKey: orgKey, Milestone: m, Title: "AI Governance Check-In", Body: reminderBodies[m]}
}

// Notifier delivers reminders.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// LogNotifier writes reminders to the structured log.
type LogNotifier struct{ Log *slog.Logger }

func (n LogNotifier) Notify(ctx context.Context, r Reminder) error {
	n.Log.InfoContext(ctx, r.Body, "title", r.Title, "org", r.OrgKey, "milestone", int(r.Milestone))
	return nil
}

type job struct {
	orgKey    string
	milestone domain.Milestone
}

// Run polls for due milestones and delivers them with concurrency workers.
// It blocks until ctx is cancelled and all workers have drained.
func Run(ctx context.Context, repo ports.ScheduleRepository, notifier Notifier, log *slog.Logger, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan job, concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				schedules, err := repo.PendingSchedules(ctx)
				if err != nil {
					log.ErrorContext(ctx, "listing reminder schedules", "error", err)
					continue
				}
				now := time.Now()
				for _, s := range schedules {
					for _, m := range s.Due(now) {
						select {
						case jobsCh <- job{orgKey: s.OrgKey, milestone: m}:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
	}()

	// workers
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for j := range jobsCh {
				if _, err := fire(ctx, repo, notifier, j.orgKey, j.milestone); err != nil {
					log.ErrorContext(ctx, "reminder failed", "worker", idx, "org", j.orgKey, "milestone", int(j.milestone), "error", err)
				}
			}
		}(i)
	}
	wg.Wait()
}

// CheckDue delivers every milestone of orgKey that is due at now, using the
// same claim logic as the background workers. It returns what was sent.
func CheckDue(ctx context.Context, repo ports.ScheduleRepository, notifier Notifier, orgKey string, now time.Time) ([]domain.Milestone, error) {
	s, err := repo.GetSchedule(ctx, orgKey)
	if err != nil {
		return nil, err
	}
	var sent []domain.Milestone
	for _, m := range s.Due(now) {
		ok, err := fire(ctx, repo, notifier, orgKey, m)
		if err != nil {
			return sent, err
		}
		if ok {
			sent = append(sent, m)
		}
	}
	return sent, nil
}

// fire claims the milestone before notifying, so a reminder is delivered at
// most once even with several workers.
func fire(ctx context.Context, repo ports.ScheduleRepository, notifier Notifier, orgKey string, m domain.Milestone) (bool, error) {
	ok, err := repo.ClaimMilestone(ctx, orgKey, m)
	if err != nil || !ok {
		return false, err
	}
	if err := notifier.Notify(ctx, NewReminder(orgKey, m)); err != nil {
		return true, fmt.Errorf("notifying: %w", err)
	}
	metrics.ObserveReminder(m)
	return true, nil
}
