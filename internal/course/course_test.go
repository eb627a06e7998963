package course

import (
	"testing"

	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeks_AllValid(t *testing.T) {
	t.Parallel()

	weeks := Weeks()
	require.Len(t, weeks, 8)

	badges := make(map[string]bool)
	for i, w := range weeks {
		assert.Equal(t, i+1, w.Number, "weeks are numbered consecutively")
		assert.NoError(t, w.Validate())
		assert.False(t, badges[w.Badge], "badge %q is not unique", w.Badge)
		badges[w.Badge] = true
	}
}

func TestByNumber(t *testing.T) {
	t.Parallel()

	w, ok := ByNumber(1)
	require.True(t, ok)
	assert.Equal(t, "Money Explorer", w.Badge)

	_, ok = ByNumber(99)
	assert.False(t, ok)

	assert.Equal(t, 8, Total())
}

func TestActivity_BuildOrdering(t *testing.T) {
	t.Parallel()

	w, ok := ByNumber(1)
	require.True(t, ok)
	require.Equal(t, ActivityOrdering, w.Activity.Kind)

	act, err := w.Activity.Build()
	require.NoError(t, err)

	ordering, ok := act.(*engine.Ordering)
	require.True(t, ok)

	for _, item := range w.Activity.Order {
		require.NoError(t, ordering.Place(item))
	}
	assert.True(t, ordering.Solved())
}

func TestActivity_BuildMatching(t *testing.T) {
	t.Parallel()

	w, ok := ByNumber(2)
	require.True(t, ok)
	require.Equal(t, ActivityMatching, w.Activity.Kind)

	act, err := w.Activity.Build()
	require.NoError(t, err)

	matching, ok := act.(*engine.Matching)
	require.True(t, ok)

	for _, pair := range w.Activity.Pairs {
		ok, err := matching.Match(pair.Key, pair.Value)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.True(t, matching.Solved())
}

func TestActivity_OptionsDedupe(t *testing.T) {
	t.Parallel()

	w, ok := ByNumber(3)
	require.True(t, ok)

	options := w.Activity.Options()
	assert.Equal(t, []string{"Need", "Want"}, options, "bucket values collapse to two options")
}

func TestActivity_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Activity{Kind: "karaoke"}.Build()
	assert.Error(t, err)
}
