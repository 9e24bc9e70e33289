package shapes

import (
	"math"

	"github.com/teknico/sigourney/fast"
)

// A periodic waveform y=f(p) over one cycle. Takes the normalised position, p,
// in [0, 1) and returns the amplitude at that position in [-1, 1].
type ShapeFunction func(p float64) float64

// Returns one cycle of a sine wave y=sin(2*pi*p).
func Sine(p float64) float64 {
	return math.Sin(2 * math.Pi * p)
}

// Returns an approximation of Sine using fast.Sin. The argument is wrapped into
// [-pi, pi) before evaluation.
func FastSine(p float64) float64 {
	x := 2 * math.Pi * p
	if x >= math.Pi {
		x -= 2 * math.Pi
	}
	return fast.Sin(x)
}

// Returns a square wave with a 50% duty cycle: y=1 for p < 0.5, else -1.
func Square(p float64) float64 {
	if p < 0.5 {
		return 1.0
	} else {
		return -1.0
	}
}

// Returns a rising sawtooth y=2*p - 1, from -1 at p=0 towards +1 at p=1.
func Sawtooth(p float64) float64 {
	return 2*p - 1
}

// Returns a triangle wave rising from -1 to +1 over the first half cycle and
// falling back to -1 over the second half.
func Triangle(p float64) float64 {
	// 1st half: -1 to 1
	if p < 0.5 {
		return 4*p - 1
	}
	// 2nd half: 1 to -1
	return 3 - 4*p
}
