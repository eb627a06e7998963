// Package course holds the data-only descriptors of the eight course
// weeks: lesson sections, the hands-on activity, the question bank and the
// badge. The engines consume these descriptors; nothing here has behavior
// beyond validation and construction.
package course

import (
	"fmt"

	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
)

type SectionKind string

const (
	KindText    SectionKind = "text"
	KindStory   SectionKind = "story"
	KindExample SectionKind = "example"
	KindTip     SectionKind = "tip"
	KindWarning SectionKind = "warning"
)

type LessonSection struct {
	Title string
	Body  string
	Kind  SectionKind
}

type ActivityKind string

const (
	ActivityOrdering ActivityKind = "ordering"
	ActivityMatching ActivityKind = "matching"
)

type Pair struct {
	Key   string
	Value string
}

type Activity struct {
	Kind  ActivityKind
	Title string
	Intro string
	// Order holds the items in their correct sequence (ordering only).
	Order []string
	// Pairs holds key/value matches (matching only). Values may repeat,
	// e.g. when items are sorted into two buckets.
	Pairs []Pair
}

// Build constructs the playable engine activity for this descriptor.
func (a Activity) Build() (engine.Activity, error) {
	switch a.Kind {
	case ActivityOrdering:
		return engine.NewOrdering(a.Order)
	case ActivityMatching:
		keys := make([]string, 0, len(a.Pairs))
		correct := make(map[string]string, len(a.Pairs))
		for _, pair := range a.Pairs {
			keys = append(keys, pair.Key)
			correct[pair.Key] = pair.Value
		}
		return engine.NewMatching(keys, correct)
	default:
		return nil, fmt.Errorf("unknown activity kind %q", a.Kind)
	}
}

// Options lists the distinct match values in first-seen order, for hosts
// building answer keyboards.
func (a Activity) Options() []string {
	var options []string
	seen := make(map[string]bool)
	for _, pair := range a.Pairs {
		if !seen[pair.Value] {
			seen[pair.Value] = true
			options = append(options, pair.Value)
		}
	}
	return options
}

type Week struct {
	Number    int
	Title     string
	Badge     string
	Objective string
	Sections  []LessonSection
	Activity  Activity
	Questions []models.QuizQuestion
}

func (w Week) Validate() error {
	if w.Number < 1 {
		return fmt.Errorf("week %d: number must be positive", w.Number)
	}
	if w.Title == "" || w.Badge == "" {
		return fmt.Errorf("week %d: missing title or badge", w.Number)
	}
	if len(w.Sections) == 0 {
		return fmt.Errorf("week %d: no lesson sections", w.Number)
	}
	if len(w.Questions) == 0 {
		return fmt.Errorf("week %d: no quiz questions", w.Number)
	}
	for _, q := range w.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("week %d: %w", w.Number, err)
		}
	}
	if _, err := w.Activity.Build(); err != nil {
		return fmt.Errorf("week %d: %w", w.Number, err)
	}
	return nil
}

// ByNumber returns the course week with the given number.
func ByNumber(n int) (Week, bool) {
	for _, w := range Weeks() {
		if w.Number == n {
			return w, true
		}
	}
	return Week{}, false
}

func Total() int { return len(Weeks()) }
