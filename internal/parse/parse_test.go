package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharv3903/pathion/internal/fixed"
	"github.com/atharv3903/pathion/internal/heur"
)

func TestRoutes(t *testing.T) {
	in := "(Ashton, Bern, 1.5)\nBern,Calla,2.0\n  ( Ashton ,Calla, 0.4 )  \n"
	g, err := Routes(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ashton", "Bern", "Calla"}, g.Nodes())

	w, ok := g.EdgeWeight("Ashton", "Bern")
	require.True(t, ok)
	assert.Equal(t, fixed.Weight(15), w)

	w, ok = g.EdgeWeight("Calla", "Bern")
	require.True(t, ok)
	assert.Equal(t, fixed.Weight(20), w)

	w, ok = g.EdgeWeight("Ashton", "Calla")
	require.True(t, ok)
	assert.Equal(t, fixed.Weight(4), w)
}

func TestRoutesSkipsBlankLines(t *testing.T) {
	in := "\n(A, B, 1.0)\n\n   \n(B, C, 2.0)\n\n"
	g, err := Routes(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
}

func TestRoutesMalformed(t *testing.T) {
	cases := []string{
		"(A, B)",           // missing distance
		"(A, B, 1.0, x)",   // extra field
		"(A, B, fast)",     // non-numeric distance
		"(, B, 1.0)",       // empty label
	}
	for _, in := range cases {
		_, err := Routes(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformedLine, "input %q", in)
	}
}

func TestRoutesNegativeDistance(t *testing.T) {
	_, err := Routes(strings.NewReader("(A, B, -1.0)"))
	assert.ErrorIs(t, err, fixed.ErrInvalidWeight)
}

func TestEstimates(t *testing.T) {
	in := "Ashton Bern 1.4\nBern Ashton 1.6\nBern Bern 0\n"
	tab, err := Estimates(strings.NewReader(in))
	require.NoError(t, err)

	w, err := tab.Estimate("Ashton", "Bern")
	require.NoError(t, err)
	assert.Equal(t, fixed.Weight(14), w)

	// ordered pairs are independent entries
	w, err = tab.Estimate("Bern", "Ashton")
	require.NoError(t, err)
	assert.Equal(t, fixed.Weight(16), w)
}

func TestEstimatesSkipsBlankLines(t *testing.T) {
	tab, err := Estimates(strings.NewReader("A B 1.0\n\n\nB A 1.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Len())
}

func TestEstimatesMalformed(t *testing.T) {
	for _, in := range []string{"A B", "A B 1.0 extra", "A B far"} {
		_, err := Estimates(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrMalformedLine, "input %q", in)
	}
}

func TestEstimatesRejectsNonzeroSelf(t *testing.T) {
	_, err := Estimates(strings.NewReader("G G 3.0"))
	assert.ErrorIs(t, err, heur.ErrGoalEstimate)
}
