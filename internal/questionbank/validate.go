package questionbank

import (
	"errors"
	"fmt"

	"github.com/baltaguilar-tech/ai-governance-tool/internal/domain"
)

var (
	ErrUnknownQuestion = errors.New("response references a question that is not in the selected set")
	ErrInvalidOption   = errors.New("response value is not one of the question's options")
)

// ValidateResponses checks that every response answers a selected question
// with one of its declared option values. The scorer does not do this itself.
func ValidateResponses(responses []domain.Response, questions []domain.Question) error {
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	var errs []error
	for _, r := range responses {
		q, ok := byID[r.QuestionID]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownQuestion, r.QuestionID))
			continue
		}
		if !q.HasOption(r.Value) {
			errs = append(errs, fmt.Errorf("%w: %s=%d", ErrInvalidOption, r.QuestionID, r.Value))
		}
	}
	return errors.Join(errs...)
}

// Dedupe keeps the last answer for each question, in first-answered order.
func Dedupe(responses []domain.Response) []domain.Response {
	pos := make(map[string]int, len(responses))
	out := make([]domain.Response, 0, len(responses))
	for _, r := range responses {
		if i, ok := pos[r.QuestionID]; ok {
			out[i] = r
			continue
		}
		pos[r.QuestionID] = len(out)
		out = append(out, r)
	}
	return out
}
