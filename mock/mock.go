// Package mock provides mocks for graph nodes and allows to execute
// integration tests.
package mock

import (
	"github.com/dudk/graph"
)

// Node mocks a graph.Node interface. It implements all optional hooks
// and records their calls.
type Node struct {
	graph.Ports
	counter
	Hooks
	Kind graph.Type
	// Transform is applied to every processed block.
	Transform func([]float64)
}

// Hooks records calls of optional node hooks.
type Hooks struct {
	Configs []graph.RuntimeConfig
	Resets  int
	Params  [][]float64
}

// Generator returns node without inputs which fills the block with
// value.
func Generator(value float64) *Node {
	return &Node{
		Kind: graph.TypeGenerator,
		Transform: func(b []float64) {
			for i := range b {
				b[i] = value
			}
		},
	}
}

// Effect returns node with single input which multiplies the block by
// gain.
func Effect(gain float64) *Node {
	return &Node{
		Ports: graph.NewPorts(1),
		Kind:  graph.TypeEffect,
		Transform: func(b []float64) {
			for i := range b {
				b[i] *= gain
			}
		},
	}
}

// Mixer returns node with provided number of inputs which passes the
// block through.
func Mixer(inputs int) *Node {
	return &Node{
		Ports: graph.NewPorts(inputs),
		Kind:  graph.TypeMixer,
	}
}

// Sink returns node of sink type. Graph must reject it.
func Sink() *Node {
	return &Node{
		Ports: graph.NewPorts(1),
		Kind:  graph.TypeSink,
	}
}

// Type implements graph.Node.
func (m *Node) Type() graph.Type {
	return m.Kind
}

// Init implements graph.Initializer.
func (m *Node) Init(c graph.RuntimeConfig) {
	m.Configs = append(m.Configs, c)
}

// Reset implements graph.Resetter.
func (m *Node) Reset() {
	m.Resets++
	m.reset()
}

// ChangeParameters implements graph.ParameterChanger.
func (m *Node) ChangeParameters(params []float64) {
	p := make([]float64, len(params))
	copy(p, params)
	m.Params = append(m.Params, p)
}

// Process implements graph.Processor.
func (m *Node) Process(b []float64) []float64 {
	if m.Transform != nil {
		m.Transform(b)
	}
	m.advance(len(b))
	return b
}

// Order records ids of processed nodes.
type Order struct {
	IDs []graph.NodeID
}

// Observe implements graph.Observer.
func (o *Order) Observe(e graph.Event) {
	o.IDs = append(o.IDs, e.Node)
}

// Position returns index of the node in recorded order or -1.
func (o *Order) Position(id graph.NodeID) int {
	for i := range o.IDs {
		if o.IDs[i] == id {
			return i
		}
	}
	return -1
}

// counter counts blocks and samples.
type counter struct {
	blocks  int
	samples int
}

// Advance counter's metrics.
func (c *counter) advance(size int) {
	c.blocks++
	c.samples = c.samples + size
}

// Reset resets counter's metrics.
func (c *counter) reset() {
	c.blocks, c.samples = 0, 0
}

// Count returns blocks and samples metrics.
func (c *counter) Count() (int, int) {
	return c.blocks, c.samples
}
