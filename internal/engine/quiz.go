package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
)

// TimeoutAnswer is the sentinel submitted when a question's time limit
// expires. It is always wrong.
const TimeoutAnswer = -1

type QuizState string

const (
	StateAnswering       QuizState = "answering"
	StateShowingFeedback QuizState = "feedback"
	StateComplete        QuizState = "complete"
)

type QuizConfig struct {
	// MinPassingScore of 0 means the default: 75% of the question count,
	// rounded up.
	MinPassingScore    int
	MaxLives           int
	ShowHints          bool
	AllowRetry         bool
	RandomizeQuestions bool
	// TimeLimit is per question. Zero disables the countdown. The
	// countdown itself is host-side; expiry submits TimeoutAnswer.
	TimeLimit time.Duration
}

// QuizCompletionFunc receives the terminal result exactly once per attempt.
type QuizCompletionFunc func(score int, passed bool)

// QuizSession administers an ordered question set with a lives budget.
// Advancement past feedback is always an explicit Next, never automatic.
type QuizSession struct {
	questions  []models.QuizQuestion
	base       []models.QuizQuestion
	cfg        QuizConfig
	onComplete QuizCompletionFunc

	state    QuizState
	index    int
	score    int
	lives    int
	selected int
	showHint bool
	reported bool
}

func NewQuizSession(questions []models.QuizQuestion, cfg QuizConfig, onComplete QuizCompletionFunc) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidInput)
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if cfg.MaxLives <= 0 {
		cfg.MaxLives = 3
	}
	if cfg.MinPassingScore <= 0 {
		cfg.MinPassingScore = int(math.Ceil(float64(len(questions)) * 0.75))
	}

	s := &QuizSession{
		base:       questions,
		cfg:        cfg,
		onComplete: onComplete,
	}
	s.rewind()

	return s, nil
}

// rewind puts the session into a fresh initial state, reshuffling the
// question order when configured.
func (s *QuizSession) rewind() {
	s.questions = make([]models.QuizQuestion, len(s.base))
	copy(s.questions, s.base)
	if s.cfg.RandomizeQuestions {
		rand.Shuffle(len(s.questions), func(i, j int) {
			s.questions[i], s.questions[j] = s.questions[j], s.questions[i]
		})
	}

	s.state = StateAnswering
	s.index = 0
	s.score = 0
	s.lives = s.cfg.MaxLives
	s.selected = TimeoutAnswer
	s.showHint = false
	s.reported = false
}

// Answer submits an option index (or TimeoutAnswer) for the current
// question and moves the session into feedback. Lives decrement only on
// incorrect answers; the score only ever increases.
func (s *QuizSession) Answer(index int) error {
	if s.state != StateAnswering {
		return fmt.Errorf("cannot answer in state %q", s.state)
	}
	if index != TimeoutAnswer && (index < 0 || index >= len(s.questions[s.index].Options)) {
		return fmt.Errorf("%w: answer index %d out of range", ErrInvalidInput, index)
	}

	s.selected = index
	s.state = StateShowingFeedback

	if index == s.questions[s.index].Correct {
		s.score++
	} else {
		s.lives--
	}

	return nil
}

// Next acknowledges the feedback and either advances to the next question
// or terminates the session. A session can only end here: lives running
// out mid-question still waits for the explicit acknowledgment.
func (s *QuizSession) Next() error {
	if s.state != StateShowingFeedback {
		return fmt.Errorf("cannot advance in state %q", s.state)
	}

	if s.index+1 < len(s.questions) && s.lives > 0 {
		s.index++
		s.selected = TimeoutAnswer
		s.showHint = false
		s.state = StateAnswering
		return nil
	}

	s.finish()

	return nil
}

func (s *QuizSession) finish() {
	s.state = StateComplete
	if s.reported {
		return
	}
	s.reported = true
	if s.onComplete != nil {
		s.onComplete(s.score, s.Passed())
	}
}

// Reset starts the attempt over. The source exposes restart both from the
// lives-exhausted feedback screen and from the results screen, so both
// are accepted here; retry must be allowed by configuration.
func (s *QuizSession) Reset() error {
	if !s.cfg.AllowRetry {
		return fmt.Errorf("retry is not allowed")
	}
	s.rewind()
	return nil
}

// ToggleHint flips hint visibility for the current question. It is only
// available before an answer is submitted and never affects scoring.
func (s *QuizSession) ToggleHint() (string, error) {
	if s.state != StateAnswering {
		return "", fmt.Errorf("hints are only available while answering")
	}
	if !s.cfg.ShowHints || s.questions[s.index].Hint == "" {
		return "", fmt.Errorf("no hint for this question")
	}
	s.showHint = !s.showHint
	return s.questions[s.index].Hint, nil
}

func (s *QuizSession) Current() models.QuizQuestion { return s.questions[s.index] }
func (s *QuizSession) State() QuizState             { return s.state }
func (s *QuizSession) Index() int                   { return s.index }
func (s *QuizSession) Total() int                   { return len(s.questions) }
func (s *QuizSession) Score() int                   { return s.score }
func (s *QuizSession) Lives() int                   { return s.lives }
func (s *QuizSession) MaxLives() int                { return s.cfg.MaxLives }
func (s *QuizSession) Selected() int                { return s.selected }
func (s *QuizSession) HintVisible() bool            { return s.showHint }
func (s *QuizSession) TimeLimit() time.Duration     { return s.cfg.TimeLimit }
func (s *QuizSession) CanRetry() bool               { return s.cfg.AllowRetry }

// Correct reports whether the answer under feedback was right.
func (s *QuizSession) Correct() bool {
	return s.selected == s.questions[s.index].Correct
}

// TimedOut reports whether the feedback being shown came from the
// countdown expiring rather than a picked option.
func (s *QuizSession) TimedOut() bool {
	return s.state == StateShowingFeedback && s.selected == TimeoutAnswer
}

// Passed applies the terminal rule: enough correct answers and at least
// one life left.
func (s *QuizSession) Passed() bool {
	return s.score >= s.cfg.MinPassingScore && s.lives > 0
}
