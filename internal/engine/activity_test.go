package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moneyTimeline = []string{"bartering", "coins", "paper", "checks", "credit", "digital"}

func TestOrdering_SolvedInCorrectOrder(t *testing.T) {
	t.Parallel()

	o, err := NewOrdering(moneyTimeline)
	require.NoError(t, err)

	for _, item := range moneyTimeline {
		assert.False(t, o.Done())
		require.NoError(t, o.Place(item))
	}

	assert.True(t, o.Done())
	assert.True(t, o.Solved())
	assert.Empty(t, o.Remaining())
	assert.Error(t, o.Place("coins"), "board is full")
}

func TestOrdering_WrongOrderIsNotSolved(t *testing.T) {
	t.Parallel()

	o, err := NewOrdering(moneyTimeline)
	require.NoError(t, err)

	require.NoError(t, o.Place("coins"))
	assert.False(t, o.Solved(), "not solved while slots remain")

	for _, item := range []string{"bartering", "paper", "checks", "credit", "digital"} {
		require.NoError(t, o.Place(item))
	}

	assert.True(t, o.Done())
	assert.False(t, o.Solved())

	o.Reset()
	assert.False(t, o.Done())
	assert.Empty(t, o.Placed())
	assert.Len(t, o.Remaining(), len(moneyTimeline))
}

func TestOrdering_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewOrdering([]string{"solo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	o, err := NewOrdering(moneyTimeline)
	require.NoError(t, err)
	err = o.Place("televisions")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatching_Solve(t *testing.T) {
	t.Parallel()

	keys := []string{"doctor", "teacher", "chef"}
	correct := map[string]string{
		"doctor":  "Helps sick people get better",
		"teacher": "Helps students learn new things",
		"chef":    "Cooks delicious food for people",
	}

	m, err := NewMatching(keys, correct)
	require.NoError(t, err)

	ok, err := m.Match("doctor", "Cooks delicious food for people")
	require.NoError(t, err)
	assert.False(t, ok, "wrong pairing is rejected, not recorded")
	assert.Len(t, m.Unmatched(), 3)

	for _, key := range keys {
		ok, err := m.Match(key, correct[key])
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.True(t, m.Done())
	assert.True(t, m.Solved())
	assert.Empty(t, m.Unmatched())

	_, err = m.Match("doctor", correct["doctor"])
	assert.Error(t, err, "already matched")

	m.Reset()
	assert.False(t, m.Done())
	assert.Len(t, m.Unmatched(), 3)
}

func TestMatching_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewMatching([]string{"a"}, map[string]string{"a": "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewMatching([]string{"a", "b"}, map[string]string{"a": "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	m, err := NewMatching([]string{"a", "b"}, map[string]string{"a": "1", "b": "2"})
	require.NoError(t, err)
	_, err = m.Match("zzz", "1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
