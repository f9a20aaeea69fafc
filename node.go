package graph

import "fmt"

// NodeID identifies a node registered in the graph. It is an index into
// the graph's node arena and is never reused.
type NodeID int

// Output is the id of the sink node every graph is created with.
const Output NodeID = 0

// Type is a category of the node.
type Type int

// Node categories.
const (
	TypeUnknown Type = iota
	TypeGenerator
	TypeEffect
	TypeMixer
	TypeSink
)

func (t Type) String() string {
	switch t {
	case TypeGenerator:
		return "generator"
	case TypeEffect:
		return "effect"
	case TypeMixer:
		return "mixer"
	case TypeSink:
		return "sink"
	}
	return "unknown"
}

type (
	// Node is a processing stage of the graph. Graph calls its methods
	// to keep track of consumed input ports. Processing and lifecycle
	// hooks are optional, see Initializer, Processor, Resetter and
	// ParameterChanger.
	Node interface {
		Type() Type
		// NumInputs returns the number of declared input ports.
		NumInputs() int
		// NextInput returns the next free input port. False is
		// returned when all ports are consumed.
		NextInput() (int, bool)
		// ConnectInput consumes the next free input port.
		ConnectInput()
	}

	// Initializer is called with the runtime config every time the
	// graph is prepared.
	Initializer interface {
		Init(RuntimeConfig)
	}

	// Processor transforms the block in place. The returned slice is
	// passed to the next node. Nodes without processor leave the block
	// untouched.
	Processor interface {
		Process(block []float64) []float64
	}

	// Resetter restores the initial state of the node.
	Resetter interface {
		Reset()
	}

	// ParameterChanger receives a vector of node-specific parameters.
	ParameterChanger interface {
		ChangeParameters(params []float64)
	}
)

// Ports implements input port accounting of the Node interface. It's
// meant to be embedded into node implementations.
type Ports struct {
	num  int
	next int
}

// NewPorts returns ports with n inputs.
func NewPorts(n int) Ports {
	return Ports{num: n}
}

// NumInputs returns number of declared inputs.
func (p *Ports) NumInputs() int {
	return p.num
}

// NextInput returns the next free input port.
func (p *Ports) NextInput() (int, bool) {
	if p.next < p.num {
		return p.next, true
	}
	return 0, false
}

// ConnectInput consumes the next free input port.
func (p *Ports) ConnectInput() {
	if p.next < p.num {
		p.next++
	}
}

// RuntimeConfig is shared by all nodes of the graph. It's replaced
// every time the graph is prepared.
type RuntimeConfig struct {
	SampleRate float64
	BlockSize  int
}

// DefaultConfig is used until the graph is prepared.
var DefaultConfig = RuntimeConfig{
	SampleRate: 44100,
	BlockSize:  512,
}

func (c RuntimeConfig) String() string {
	return fmt.Sprintf("%vHz/%d", c.SampleRate, c.BlockSize)
}

// node holds registered node along with its optional hooks. Hooks are
// resolved once at registration so processing doesn't do type
// assertions.
type node struct {
	Node
	init    Initializer
	process Processor
	reset   Resetter
	params  ParameterChanger
}

func newNode(n Node) node {
	nd := node{Node: n}
	nd.init, _ = n.(Initializer)
	nd.process, _ = n.(Processor)
	nd.reset, _ = n.(Resetter)
	nd.params, _ = n.(ParameterChanger)
	return nd
}
