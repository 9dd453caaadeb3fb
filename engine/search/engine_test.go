package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/life"
	"github.com/telepair/lifesearch/pkg/ui"
)

func buildBlinkerSearch(t *testing.T) life.Search {
	t.Helper()
	cfg := life.NewConfig(3, 3, 2, life.NewLife([]int{3}, []int{2, 3}))
	s, err := cfg.Build()
	require.NoError(t, err)
	return s
}

func TestSearchEngineImplementsStepEngine(t *testing.T) {
	s := buildBlinkerSearch(t)
	e := New(s, 3, 3, 2, Config{})
	var _ ui.StepEngine = e
	assert.False(t, e.IsFinished())
}

func TestSearchEngineStepsToConclusion(t *testing.T) {
	s := buildBlinkerSearch(t)
	e := New(s, 3, 3, 2, Config{StepsPerTick: 100})

	for i := 0; i < 10_000 && !e.IsFinished(); i++ {
		e.Step()
	}
	assert.True(t, e.IsFinished())
}

func TestSearchEngineViewRendersAllPhases(t *testing.T) {
	s := buildBlinkerSearch(t)
	e := New(s, 3, 3, 2, Config{})
	view := e.View()
	assert.NotEmpty(t, view)
}

func TestSearchEngineResetIsNoOp(t *testing.T) {
	s := buildBlinkerSearch(t)
	e := New(s, 3, 3, 2, Config{})
	assert.NoError(t, e.Reset(10, 10))
}

func TestSearchEngineHandleNeverClaims(t *testing.T) {
	s := buildBlinkerSearch(t)
	e := New(s, 3, 3, 2, Config{})
	handled, err := e.Handle("x")
	assert.False(t, handled)
	assert.NoError(t, err)
}
