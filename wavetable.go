package wavetable

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/synaptecltd/wavetable/shapes"
)

// Size is the number of samples in one wavetable cycle.
const Size = 1024

// ErrTableSize is returned when a buffer does not hold exactly Size samples.
var ErrTableSize = errors.New("wavetable buffer must hold exactly 1024 samples")

// ErrUnknownShape is returned when a shape name does not match any variant.
var ErrUnknownShape = errors.New("unknown wave shape")

// Table holds one cycle of a waveform. It is owned by the caller and filled in place.
type Table [Size]float32

// Shape identifies one of the built-in periodic waveforms.
type Shape int

// Built-in wave shapes
const (
	Sine Shape = iota
	Square
	Sawtooth
	Triangle
)

// Fixed properties of each shape
var shapeProperties = [...]struct {
	name        string  // identifying label
	volumeScale float32 // gain applied downstream to even out perceived loudness
}{
	Sine:     {name: "Sine", volumeScale: 8000.0},
	Square:   {name: "Square", volumeScale: 4000.0}, // higher RMS for the same peak
	Sawtooth: {name: "Sawtooth", volumeScale: 8000.0},
	Triangle: {name: "Triangle", volumeScale: 8000.0},
}

// Returns all built-in shapes in declaration order.
func Shapes() []Shape {
	return []Shape{Sine, Square, Sawtooth, Triangle}
}

// Returns the shape with the given name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes() {
		if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Returns whether s is one of the built-in shapes.
func (s Shape) Valid() bool {
	return s >= Sine && int(s) < len(shapeProperties)
}

// Returns the identifying label of the shape.
func (s Shape) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeProperties[s].name
}

func (s Shape) String() string {
	return s.Name()
}

// Returns the gain a mixer applies to samples of this shape. Zero for invalid shapes.
func (s Shape) VolumeScale() float32 {
	if !s.Valid() {
		return 0
	}
	return shapeProperties[s].volumeScale
}

// Returns the amplitude of the shape at table index i, where i is in [0, Size).
func (s Shape) Value(i int) float64 {
	p := float64(i) / Size

	switch s {
	case Sine:
		return shapes.Sine(p)
	case Square:
		return shapes.Square(p)
	case Sawtooth:
		return shapes.Sawtooth(p)
	case Triangle:
		return shapes.Triangle(p)
	default:
		return 0
	}
}

// SampleFunc returns the amplitude at a phase without going through a table.
type SampleFunc func(phase float64) float64

// Generator fills wavetables for a single shape.
type Generator struct {
	Shape       Shape      // waveform to generate
	Approximate bool       // fill Sine tables with shapes.FastSine, ignored for other shapes
	Sampler     SampleFunc // real-time sampling, nil when unsupported
}

// Returns a generator for the requested shape.
func New(shape Shape) *Generator {
	return &Generator{Shape: shape}
}

// Returns the identifying label of the generator's shape.
func (g *Generator) Name() string {
	return g.Shape.Name()
}

// Returns the gain to be applied to the generated samples by the playback path.
func (g *Generator) VolumeScale() float32 {
	return g.Shape.VolumeScale()
}

// Generate writes one cycle of the waveform into every entry of table.
func (g *Generator) Generate(table *Table) {
	for i := range table {
		table[i] = float32(g.value(i))
	}
}

// Fill is Generate for a caller-owned slice. The slice must hold exactly Size
// samples, otherwise ErrTableSize is returned and buf is left untouched.
func (g *Generator) Fill(buf []float32) error {
	if len(buf) != Size {
		return fmt.Errorf("%w: got %d", ErrTableSize, len(buf))
	}
	g.Generate((*Table)(buf))
	return nil
}

// Returns the starting phase offset and whether callers should honour it.
// None of the built-in shapes use a custom phase.
func (g *Generator) PhaseOffset() (float64, bool) {
	return 0.0, false
}

// Returns the sample at phase and true if the generator supports real-time
// sampling. Returns 0 and false otherwise; callers fall back to table lookup.
func (g *Generator) Sample(phase float64) (float64, bool) {
	if g.Sampler == nil {
		return 0.0, false
	}
	return g.Sampler(phase), true
}

func (g *Generator) value(i int) float64 {
	if g.Approximate && g.Shape == Sine {
		y := shapes.FastSine(float64(i) / Size)
		return math.Max(-1.0, math.Min(1.0, y))
	}
	return g.Shape.Value(i)
}
