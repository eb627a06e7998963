package engine

import "fmt"

// Activity is the minimal surface the progression's host needs from a
// hands-on exercise: whether the board is full, whether it is solved, and
// a way to start over. The concrete form varies per week.
type Activity interface {
	Done() bool
	Solved() bool
	Reset()
}

// Ordering is the place-items-in-sequence game (the Week 1 money
// timeline): the player fills slots one by one and the board checks
// itself once every slot is taken.
type Ordering struct {
	correct   []string
	placed    []string
	remaining []string
}

func NewOrdering(correctOrder []string) (*Ordering, error) {
	if len(correctOrder) < 2 {
		return nil, fmt.Errorf("%w: ordering needs at least 2 items", ErrInvalidInput)
	}
	o := &Ordering{correct: correctOrder}
	o.Reset()
	return o, nil
}

// Place puts an available item into the next empty slot.
func (o *Ordering) Place(item string) error {
	if o.Done() {
		return fmt.Errorf("all slots are filled")
	}
	for i, rem := range o.remaining {
		if rem == item {
			o.placed = append(o.placed, item)
			o.remaining = append(o.remaining[:i], o.remaining[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %q not available", ErrInvalidInput, item)
}

func (o *Ordering) Done() bool { return len(o.remaining) == 0 }

func (o *Ordering) Solved() bool {
	if !o.Done() {
		return false
	}
	for i, item := range o.placed {
		if item != o.correct[i] {
			return false
		}
	}
	return true
}

func (o *Ordering) Reset() {
	o.placed = nil
	o.remaining = make([]string, len(o.correct))
	copy(o.remaining, o.correct)
}

func (o *Ordering) Placed() []string    { return o.placed }
func (o *Ordering) Remaining() []string { return o.remaining }

// Matching pairs each key with its correct value (the Week 2 job matching
// game). Wrong pairings are rejected and simply not recorded, matching the
// source's keep-trying behavior.
type Matching struct {
	keys    []string
	correct map[string]string
	matched map[string]string
}

func NewMatching(keys []string, correct map[string]string) (*Matching, error) {
	if len(keys) < 2 || len(keys) != len(correct) {
		return nil, fmt.Errorf("%w: matching needs at least 2 complete pairs", ErrInvalidInput)
	}
	for _, key := range keys {
		if _, ok := correct[key]; !ok {
			return nil, fmt.Errorf("%w: key %q has no value", ErrInvalidInput, key)
		}
	}
	return &Matching{
		keys:    keys,
		correct: correct,
		matched: make(map[string]string),
	}, nil
}

// Match records the pairing and reports whether it was correct.
func (m *Matching) Match(key, value string) (bool, error) {
	want, ok := m.correct[key]
	if !ok {
		return false, fmt.Errorf("%w: unknown key %q", ErrInvalidInput, key)
	}
	if _, already := m.matched[key]; already {
		return false, fmt.Errorf("%q is already matched", key)
	}
	if want != value {
		return false, nil
	}
	m.matched[key] = value
	return true, nil
}

func (m *Matching) Done() bool   { return len(m.matched) == len(m.keys) }
func (m *Matching) Solved() bool { return m.Done() }

func (m *Matching) Reset() {
	m.matched = make(map[string]string)
}

func (m *Matching) Keys() []string { return m.keys }

// Unmatched lists the keys still waiting for a pair, in original order.
func (m *Matching) Unmatched() []string {
	var keys []string
	for _, key := range m.keys {
		if _, ok := m.matched[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// ValueFor exposes the correct value for a key so hosts can build option
// lists; it does not mark anything matched.
func (m *Matching) ValueFor(key string) string { return m.correct[key] }
