package stage

import (
	"github.com/dudk/graph"
)

// Mixer averages signals of its connected inputs and applies the level.
// Sources connected to the mixer should accumulate the signal.
type Mixer struct {
	graph.Ports
	Level float64
}

// NewMixer returns a new mixer with provided number of inputs.
func NewMixer(inputs int) *Mixer {
	return &Mixer{
		Ports: graph.NewPorts(inputs),
		Level: 1,
	}
}

// Type implements graph.Node.
func (*Mixer) Type() graph.Type {
	return graph.TypeMixer
}

// Process implements graph.Processor.
func (m *Mixer) Process(b []float64) []float64 {
	connected, ok := m.NextInput()
	if !ok {
		connected = m.NumInputs()
	}
	if connected == 0 {
		return b
	}
	k := m.Level / float64(connected)
	for i := range b {
		b[i] *= k
	}
	return b
}

// ChangeParameters implements graph.ParameterChanger. First parameter is
// the level.
func (m *Mixer) ChangeParameters(params []float64) {
	if len(params) > 0 {
		m.Level = params[0]
	}
}
