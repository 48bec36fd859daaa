// Package metrics holds the Prometheus collectors for the assessment service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

var (
	// Labels: maturity
	evaluated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govassess",
		Name:      "assessments_evaluated_total",
		Help:      "Assessments scored, by declared maturity level",
	}, []string{"maturity"})

	completed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "govassess",
		Name:      "assessments_completed_total",
		Help:      "Assessments persisted as completed snapshots",
	})

	overallScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "govassess",
		Name:      "overall_score",
		Help:      "Distribution of weighted overall governance scores",
		Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	// Labels: milestone (days)
	remindersSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "govassess",
		Name:      "reminders_sent_total",
		Help:      "Follow-up reminders delivered, by milestone",
	}, []string{"milestone"})
)

// ObserveEvaluation records one scored assessment.
func ObserveEvaluation(level domain.MaturityLevel, overall int) {
	evaluated.WithLabelValues(string(level.Normalize())).Inc()
	overallScore.Observe(float64(overall))
}

func ObserveCompletion() { completed.Inc() }

func ObserveReminder(m domain.Milestone) {
	remindersSent.WithLabelValues(strconv.Itoa(int(m))).Inc()
}
