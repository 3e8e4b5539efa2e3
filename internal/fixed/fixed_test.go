package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		in   float64
		want Weight
	}{
		{0, 0},
		{1.0, 10},
		{1.5, 15},
		{1.54, 15},
		{1.55, 16}, // half rounds away from zero
		{0.25, 3},
		{123.4, 1234},
	}
	for _, tc := range cases {
		got, err := Encode(tc.in)
		require.NoError(t, err, "Encode(%v)", tc.in)
		assert.Equal(t, tc.want, got, "Encode(%v)", tc.in)
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	for _, in := range []float64{-0.1, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Encode(in)
		assert.ErrorIs(t, err, ErrInvalidWeight, "Encode(%v)", in)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 0.1, 1.0, 2.5, 7.3, 19.9, 1042.6} {
		w, err := Encode(d)
		require.NoError(t, err)
		assert.InDelta(t, math.Round(d*10)/10, Decode(w), 1e-9)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.5", Weight(15).String())
	assert.Equal(t, "0.0", Weight(0).String())
	assert.Equal(t, "40.0", Weight(400).String())
}
