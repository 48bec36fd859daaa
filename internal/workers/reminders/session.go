package reminders

import (
	"time"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

// Session is per-user-session UI state. Each session owns its own value.
type Session struct {
	promptDismissed bool
}

// DismissPrompt suppresses the check-in prompt for the rest of the session.
func (s *Session) DismissPrompt() { s.promptDismissed = true }

func (s *Session) PromptDismissed() bool { return s.promptDismissed }

// ShouldPrompt reports whether to show the in-app check-in prompt and for
// which milestone: the latest one that has elapsed, unless the session
// already dismissed it.
func ShouldPrompt(sched domain.ReminderSchedule, now time.Time, s *Session) (domain.Milestone, bool) {
	if s != nil && s.promptDismissed {
		return 0, false
	}
	var latest domain.Milestone
	for _, m := range domain.Milestones {
		if !now.Before(sched.ReferenceAt.Add(m.Duration())) {
			latest = m
		}
	}
	return latest, latest != 0
}
