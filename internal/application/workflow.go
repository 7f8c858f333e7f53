package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/kriju0726/HealiFy/internal/ports"
)

// Workflow drives one assessment run through its form, submitting and
// result phases. Exactly one run is live at a time; starting or
// resetting discards the previous one. The submitting phase itself is
// the mutual exclusion against concurrent submissions, and a
// generation counter guards against a late response mutating state for
// a run the user has already abandoned.
type Workflow struct {
	sessions *SessionStore
	remote   ports.RemoteService
	clock    ports.Clock

	mu         sync.Mutex
	active     bool
	typ        domain.AssessmentType
	questions  []domain.Question
	answers    map[string]int
	phase      domain.Phase
	result     *domain.PredictionResult
	generation int
	notices    []string
}

func NewWorkflow(sessions *SessionStore, remote ports.RemoteService, clock ports.Clock) *Workflow {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Workflow{
		sessions: sessions,
		remote:   remote,
		clock:    clock,
	}
}

// Start begins a run for the given questionnaire type, seeding every
// catalog question to zero. It fails with
// domain.ErrUnknownAssessmentType for types outside the catalog and
// with domain.ErrProfileIncomplete when the profile gate denies entry.
func (w *Workflow) Start(typ domain.AssessmentType) ([]domain.Question, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("start assessment %q: %w", typ, domain.ErrUnknownAssessmentType)
	}
	if !w.sessions.IsProfileComplete() {
		return nil, fmt.Errorf("start assessment %q: %w", typ, domain.ErrProfileIncomplete)
	}

	questions := domain.Questions(typ)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.active = true
	w.typ = typ
	w.questions = questions
	w.answers = seedAnswers(questions)
	w.phase = domain.PhaseForm
	w.result = nil
	w.generation++

	return questions, nil
}

// SetAnswer records one answer while the form is editable. Unknown
// question keys fail with domain.ErrValidation; out-of-range values are
// clamped into [AnswerMin, AnswerMax].
func (w *Workflow) SetAnswer(key string, value int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.active || w.phase != domain.PhaseForm {
		return fmt.Errorf("set answer outside the form phase: %w", domain.ErrInvalidState)
	}
	if _, known := w.answers[key]; !known {
		return fmt.Errorf("unknown question %q for %s: %w", key, w.typ, domain.ErrValidation)
	}

	w.answers[key] = clampAnswer(value)

	return nil
}

// Submit sends the answers to the scoring service. On success the run
// moves to the result phase; on any failure it returns to the editable
// form with the answers intact and exactly one notice recorded. A
// rejected credential additionally invalidates the whole session.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	if !w.active {
		w.mu.Unlock()
		return fmt.Errorf("submit without an active assessment: %w", domain.ErrInvalidState)
	}
	if w.phase == domain.PhaseSubmitting {
		w.mu.Unlock()
		return fmt.Errorf("submission already in flight: %w", domain.ErrInvalidState)
	}
	if w.phase != domain.PhaseForm {
		w.mu.Unlock()
		return fmt.Errorf("submit outside the form phase: %w", domain.ErrInvalidState)
	}
	if !hasSignal(w.answers) {
		w.mu.Unlock()
		return fmt.Errorf("all answers are zero: %w", domain.ErrValidation)
	}

	w.phase = domain.PhaseSubmitting
	generation := w.generation
	typ := w.typ
	answers := copyAnswers(w.answers)
	w.mu.Unlock()

	credential := w.sessions.Credential()

	result, err := w.remote.Score(ctx, credential, typ, answers)

	w.mu.Lock()
	if w.generation != generation {
		// The run was reset or replaced while the call was in flight.
		w.mu.Unlock()
		return nil
	}

	if err != nil {
		w.phase = domain.PhaseForm
		w.notices = append(w.notices, submitNotice(typ, err))
		unauthorized := errors.Is(err, domain.ErrUnauthorized)
		w.mu.Unlock()

		if unauthorized {
			_ = w.sessions.Logout(ctx)
		}

		return fmt.Errorf("score %s assessment: %w", typ, err)
	}

	domain.SortRiskFactors(result.RiskFactors)
	if result.CapturedAt.IsZero() {
		result.CapturedAt = w.clock.Now()
	}
	w.result = &result
	w.phase = domain.PhaseResult
	w.mu.Unlock()

	return nil
}

// Reset discards the current run. From the result or form phase it
// re-seeds for a fresh attempt of the same type; any in-flight response
// is discarded when it lands.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	if !w.active {
		return
	}

	w.answers = seedAnswers(w.questions)
	w.phase = domain.PhaseForm
	w.result = nil
}

func (w *Workflow) Phase() domain.Phase {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.active {
		return ""
	}

	return w.phase
}

func (w *Workflow) Type() domain.AssessmentType {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.typ
}

func (w *Workflow) Answers() map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return copyAnswers(w.answers)
}

// Result returns the prediction of the current run, if it reached the
// result phase.
func (w *Workflow) Result() (domain.PredictionResult, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.result == nil {
		return domain.PredictionResult{}, false
	}

	result := *w.result
	result.RiskFactors = append([]domain.RiskFactor(nil), w.result.RiskFactors...)

	return result, true
}

// DrainNotices returns and clears the accumulated failure notices, one
// per failed submission attempt.
func (w *Workflow) DrainNotices() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	notices := w.notices
	w.notices = nil

	return notices
}

func seedAnswers(questions []domain.Question) map[string]int {
	answers := make(map[string]int, len(questions))
	for _, question := range questions {
		answers[question.Key] = 0
	}

	return answers
}

func copyAnswers(answers map[string]int) map[string]int {
	out := make(map[string]int, len(answers))
	for key, value := range answers {
		out[key] = value
	}

	return out
}

func clampAnswer(value int) int {
	if value < domain.AnswerMin {
		return domain.AnswerMin
	}
	if value > domain.AnswerMax {
		return domain.AnswerMax
	}

	return value
}

func hasSignal(answers map[string]int) bool {
	for _, value := range answers {
		if value != 0 {
			return true
		}
	}

	return false
}

func submitNotice(typ domain.AssessmentType, err error) string {
	if errors.Is(err, domain.ErrUnauthorized) {
		return "Your session has expired. Please sign in again."
	}

	return fmt.Sprintf("Could not score the %s assessment: %v. Your answers were kept; try submitting again.", typ.Label(), err)
}
