package export

import (
	"errors"
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/synaptecltd/wavetable"
)

// Parameters of an exported WAV file.
type Params struct {
	SampleRate int // samples per second written to the header
	Cycles     int // number of times the table is repeated, at least 1
	Precision  int // bytes per sample: 1, 2 or 3
}

// Returns 16 bit, 44.1 kHz parameters for a single cycle.
func DefaultParams() Params {
	return Params{
		SampleRate: 44100,
		Cycles:     1,
		Precision:  2,
	}
}

// Returns an error if the parameters cannot produce a WAV file.
func (p Params) Validate() error {
	if p.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	if p.Cycles < 1 {
		return errors.New("cycles must be at least 1")
	}
	if p.Precision < 1 || p.Precision > 3 {
		return errors.New("precision must be 1, 2 or 3 bytes")
	}
	return nil
}

// Streams a wavetable a fixed number of times, duplicating each sample onto both channels.
type tableStreamer struct {
	table     *wavetable.Table
	index     int // next table index to stream
	remaining int // samples left to stream
}

// Returns a streamer that plays table the given number of cycles and then drains.
func NewStreamer(table *wavetable.Table, cycles int) beep.Streamer {
	if cycles < 0 {
		cycles = 0
	}
	return &tableStreamer{table: table, remaining: cycles * wavetable.Size}
}

func (s *tableStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.remaining == 0 {
		return 0, false
	}
	for i := range samples {
		if s.remaining == 0 {
			break
		}
		v := float64(s.table[s.index])
		samples[i][0] = v
		samples[i][1] = v

		s.index = (s.index + 1) % wavetable.Size
		s.remaining--
		n++
	}
	return n, true
}

func (*tableStreamer) Err() error {
	return nil
}

// Encodes table as a mono WAV file. Samples are written without volume scaling.
func WriteWAV(w io.WriteSeeker, table *wavetable.Table, params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(params.SampleRate),
		NumChannels: 1,
		Precision:   params.Precision,
	}
	return wav.Encode(w, NewStreamer(table, params.Cycles), format)
}
