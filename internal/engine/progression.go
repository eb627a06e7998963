package engine

import (
	"github.com/dataanalyse/financial-goals-planner/internal/models"
)

type Stage string

const (
	StageOverview Stage = "overview"
	StageLesson   Stage = "lesson"
	StageActivity Stage = "activity"
	StageQuiz     Stage = "quiz"
	StageBadge    Stage = "badge"
)

// Stages lists the four completable stages in order. Overview is a view,
// not a completion target.
func Stages() []Stage {
	return []Stage{StageLesson, StageActivity, StageQuiz, StageBadge}
}

// WeekCompletionFunc receives the (week number, badge name) pair exactly
// once, when the user confirms the badge ceremony.
type WeekCompletionFunc func(weekNumber int, badge string)

// Progression sequences one course week: lesson, activity, quiz, badge.
// It tracks which stages are marked complete; it does not gate navigation.
// Completion tracking and navigation are deliberately decoupled: the host
// may jump to any stage while flags stay honest.
type Progression struct {
	weekNumber int
	badge      string
	progress   models.WeekProgress
	view       Stage
	onComplete WeekCompletionFunc
	reported   bool
}

// NewProgression resumes from a previously persisted record; pass a zero
// WeekProgress for a fresh week. A record with the badge flag already set
// will not report completion again.
func NewProgression(weekNumber int, badge string, saved models.WeekProgress, onComplete WeekCompletionFunc) *Progression {
	return &Progression{
		weekNumber: weekNumber,
		badge:      badge,
		progress:   saved,
		view:       StageOverview,
		onComplete: onComplete,
		reported:   saved.Badge,
	}
}

// CompleteLesson marks the lesson stage and advances the default view to
// the activity.
func (p *Progression) CompleteLesson() {
	p.progress.Lesson = true
	p.view = StageActivity
}

// CompleteActivity records the activity's own success signal. The concrete
// activity form is opaque here.
func (p *Progression) CompleteActivity() {
	p.progress.Activity = true
	p.view = StageQuiz
}

// CompleteQuiz records a quiz outcome. Only a pass marks the stage and
// advances toward the badge; a fail leaves the flags untouched.
func (p *Progression) CompleteQuiz(passed bool) {
	if !passed {
		return
	}
	p.progress.Quiz = true
	p.view = StageBadge
}

// ConfirmBadge is the explicit user acknowledgment of the badge ceremony.
// It fires the week completion callback exactly once, ever.
func (p *Progression) ConfirmBadge() {
	p.progress.Badge = true
	if p.reported {
		return
	}
	p.reported = true
	if p.onComplete != nil {
		p.onComplete(p.weekNumber, p.badge)
	}
}

// Go navigates to any stage on explicit request, complete or not.
func (p *Progression) Go(stage Stage) { p.view = stage }

func (p *Progression) View() Stage                   { return p.view }
func (p *Progression) WeekNumber() int               { return p.weekNumber }
func (p *Progression) Badge() string                 { return p.badge }
func (p *Progression) Progress() models.WeekProgress { return p.progress }

func (p *Progression) Completed(stage Stage) bool {
	switch stage {
	case StageLesson:
		return p.progress.Lesson
	case StageActivity:
		return p.progress.Activity
	case StageQuiz:
		return p.progress.Quiz
	case StageBadge:
		return p.progress.Badge
	default:
		return false
	}
}

// Lesson walks an ordered list of sections. Moving forward auto-completes
// the section being left; the lesson is done once the last section has
// been advanced past.
type Lesson struct {
	total     int
	current   int
	completed map[int]bool
}

func NewLesson(sections int) *Lesson {
	return &Lesson{
		total:     sections,
		completed: make(map[int]bool),
	}
}

// Next marks the current section complete and moves forward. It returns
// true when the lesson just finished.
func (l *Lesson) Next() bool {
	l.completed[l.current] = true
	if l.current < l.total-1 {
		l.current++
		return false
	}
	return true
}

func (l *Lesson) Prev() {
	if l.current > 0 {
		l.current--
	}
}

func (l *Lesson) Index() int { return l.current }
func (l *Lesson) Total() int { return l.total }

func (l *Lesson) Done() bool {
	return len(l.completed) == l.total
}
