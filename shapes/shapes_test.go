package shapes_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/wavetable/shapes"
)

// Tests for the exact shape functions at their characteristic positions
func TestShapeFunctions(t *testing.T) {
	testCases := []struct {
		name     string               // name of the case
		f        shapes.ShapeFunction // function under test
		p        float64              // normalised position
		expected float64              // expected value at p
	}{
		{name: "sine_start", f: shapes.Sine, p: 0.0, expected: 0.0},
		{name: "sine_quarter", f: shapes.Sine, p: 0.25, expected: 1.0},
		{name: "sine_half", f: shapes.Sine, p: 0.5, expected: 0.0},
		{name: "sine_three_quarters", f: shapes.Sine, p: 0.75, expected: -1.0},
		{name: "square_start", f: shapes.Square, p: 0.0, expected: 1.0},
		{name: "square_before_half", f: shapes.Square, p: 0.4999, expected: 1.0},
		{name: "square_half", f: shapes.Square, p: 0.5, expected: -1.0},
		{name: "square_end", f: shapes.Square, p: 0.9999, expected: -1.0},
		{name: "sawtooth_start", f: shapes.Sawtooth, p: 0.0, expected: -1.0},
		{name: "sawtooth_half", f: shapes.Sawtooth, p: 0.5, expected: 0.0},
		{name: "sawtooth_quarter", f: shapes.Sawtooth, p: 0.25, expected: -0.5},
		{name: "triangle_start", f: shapes.Triangle, p: 0.0, expected: -1.0},
		{name: "triangle_quarter", f: shapes.Triangle, p: 0.25, expected: 0.0},
		{name: "triangle_half", f: shapes.Triangle, p: 0.5, expected: 1.0},
		{name: "triangle_three_quarters", f: shapes.Triangle, p: 0.75, expected: 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.f(tc.p), 1e-9)
		})
	}
}

// max difference between fast.Sin and math.Sin at table positions
const fastSineTolerance = 1e-4

// FastSine should track Sine closely over the whole cycle
func TestFastSine(t *testing.T) {
	for i := 0; i < 1024; i++ {
		p := float64(i) / 1024
		assert.InDelta(t, shapes.Sine(p), shapes.FastSine(p), fastSineTolerance, "position %f", p)
	}

	assert.InDelta(t, 0.0, shapes.FastSine(0), fastSineTolerance)
	assert.InDelta(t, 1.0, shapes.FastSine(0.25), fastSineTolerance)
	assert.InDelta(t, -1.0, shapes.FastSine(0.75), fastSineTolerance)
}

func TestShapesBounded(t *testing.T) {
	functions := map[string]shapes.ShapeFunction{
		"sine":      shapes.Sine,
		"fast_sine": shapes.FastSine,
		"square":    shapes.Square,
		"sawtooth":  shapes.Sawtooth,
		"triangle":  shapes.Triangle,
	}

	for name, f := range functions {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				y := f(rand.Float64())
				assert.True(t, y >= -1.0-1e-3 && y <= 1.0+1e-3, "value out of bounds: %f", y)
			}
		})
	}
}
