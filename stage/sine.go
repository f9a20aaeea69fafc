package stage

import (
	"math"

	"github.com/dudk/graph"
)

// Sine generates a sine wave. Sample rate is taken from the runtime
// config, so the graph must be prepared before processing.
type Sine struct {
	graph.Ports
	Frequency  float64
	Amplitude  float64
	Accumulate bool
	sampleRate float64
	phase      float64
}

// NewSine returns a new sine generator.
func NewSine(frequency, amplitude float64) *Sine {
	return &Sine{
		Frequency:  frequency,
		Amplitude:  amplitude,
		sampleRate: graph.DefaultConfig.SampleRate,
	}
}

// Type implements graph.Node.
func (*Sine) Type() graph.Type {
	return graph.TypeGenerator
}

// Init implements graph.Initializer.
func (s *Sine) Init(c graph.RuntimeConfig) {
	s.sampleRate = c.SampleRate
}

// Reset implements graph.Resetter. Phase starts from zero.
func (s *Sine) Reset() {
	s.phase = 0
}

// ChangeParameters implements graph.ParameterChanger. Parameters are
// frequency and amplitude, both optional.
func (s *Sine) ChangeParameters(params []float64) {
	if len(params) > 0 {
		s.Frequency = params[0]
	}
	if len(params) > 1 {
		s.Amplitude = params[1]
	}
}

// Process implements graph.Processor.
func (s *Sine) Process(b []float64) []float64 {
	step := 2 * math.Pi * s.Frequency / s.sampleRate
	for i := range b {
		v := s.Amplitude * math.Sin(s.phase)
		if s.Accumulate {
			b[i] += v
		} else {
			b[i] = v
		}
		s.phase += step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
	return b
}
