package heur

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/graph"
)

func TestEstimateOrderedPairs(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.Set("A", "B", 12))

	w, err := tab.Estimate("A", "B")
	require.NoError(t, err)
	assert.Equal(t, fixed.Weight(12), w)

	// (B, A) is a distinct entry and was never set
	_, err = tab.Estimate("B", "A")
	assert.ErrorIs(t, err, ErrMissingEstimate)
}

func TestEstimateSelfIsZero(t *testing.T) {
	tab := NewTable()
	w, err := tab.Estimate("G", "G")
	require.NoError(t, err)
	assert.Equal(t, fixed.Weight(0), w)
}

func TestSetRejectsNonzeroSelfEstimate(t *testing.T) {
	tab := NewTable()
	assert.ErrorIs(t, tab.Set("G", "G", 5), ErrGoalEstimate)
	assert.NoError(t, tab.Set("G", "G", 0))
}

func TestEach(t *testing.T) {
	tab := NewTable()
	require.NoError(t, tab.Set("A", "B", 1))
	require.NoError(t, tab.Set("B", "A", 2))

	seen := map[string]fixed.Weight{}
	tab.Each(func(from, goal string, w fixed.Weight) {
		seen[from+"->"+goal] = w
	})
	assert.Equal(t, map[string]fixed.Weight{"A->B": 1, "B->A": 2}, seen)
	assert.Equal(t, 2, tab.Len())
}

func TestValidateConsistent(t *testing.T) {
	g := graph.New()
	g.AddEdge("S", "X", 20)
	g.AddEdge("X", "G", 20)
	g.AddEdge("S", "Y", 10)
	g.AddEdge("Y", "G", 50)

	tab := NewTable()
	require.NoError(t, tab.Set("S", "G", 40))
	require.NoError(t, tab.Set("X", "G", 20))
	require.NoError(t, tab.Set("Y", "G", 20))
	require.NoError(t, tab.Set("G", "G", 0))

	assert.NoError(t, tab.Validate(g, []string{"G"}))
}

func TestValidateInconsistent(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 10)
	g.AddEdge("B", "G", 10)

	tab := NewTable()
	// h(A,G)=50 > w(A,B)=10 + h(B,G)=10
	require.NoError(t, tab.Set("A", "G", 50))
	require.NoError(t, tab.Set("B", "G", 10))

	assert.ErrorIs(t, tab.Validate(g, []string{"G"}), ErrInconsistent)
}

func TestValidateMissingEntry(t *testing.T) {
	g := graph.New()
	g.AddEdge("A", "B", 10)

	tab := NewTable()
	require.NoError(t, tab.Set("A", "G", 5))

	assert.ErrorIs(t, tab.Validate(g, []string{"G"}), ErrMissingEstimate)
}
