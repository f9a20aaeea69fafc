// Package stage provides basic graph nodes.
//
// Generators overwrite the block by default. If Accumulate is set, the
// signal is added to the block instead, so generators connected to the
// same Mixer are summed up.
package stage

import (
	"github.com/dudk/graph"
)

// Constant generates a signal with constant value.
type Constant struct {
	graph.Ports
	Value      float64
	Accumulate bool
}

// NewConstant returns a new constant generator.
func NewConstant(v float64) *Constant {
	return &Constant{Value: v}
}

// Type implements graph.Node.
func (*Constant) Type() graph.Type {
	return graph.TypeGenerator
}

// Process implements graph.Processor.
func (c *Constant) Process(b []float64) []float64 {
	for i := range b {
		if c.Accumulate {
			b[i] += c.Value
		} else {
			b[i] = c.Value
		}
	}
	return b
}

// ChangeParameters implements graph.ParameterChanger. First parameter is
// the value.
func (c *Constant) ChangeParameters(params []float64) {
	if len(params) > 0 {
		c.Value = params[0]
	}
}

// Gain multiplies the signal by the factor.
type Gain struct {
	graph.Ports
	Factor float64
}

// NewGain returns a new gain effect with a single input.
func NewGain(factor float64) *Gain {
	return &Gain{
		Ports:  graph.NewPorts(1),
		Factor: factor,
	}
}

// Type implements graph.Node.
func (*Gain) Type() graph.Type {
	return graph.TypeEffect
}

// Process implements graph.Processor.
func (g *Gain) Process(b []float64) []float64 {
	for i := range b {
		b[i] *= g.Factor
	}
	return b
}

// ChangeParameters implements graph.ParameterChanger. First parameter is
// the factor.
func (g *Gain) ChangeParameters(params []float64) {
	if len(params) > 0 {
		g.Factor = params[0]
	}
}
