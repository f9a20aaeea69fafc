package graph

import (
	"fmt"
	"math"

	"github.com/rs/xid"
)

type (
	// Logger is a global interface for graph loggers.
	Logger interface {
		Debug(...interface{})
		Info(...interface{})
	}

	// Observer is notified after each node has processed the block. It
	// is called on the processing path, so implementations must not
	// block.
	Observer interface {
		Observe(Event)
	}

	// ObserverFunc adapts a function to Observer.
	ObserverFunc func(Event)

	// Event describes a single node processing step.
	Event struct {
		Node   NodeID
		Type   Type
		Block  []float64
		Config RuntimeConfig
	}
)

// Observe calls fn.
func (fn ObserverFunc) Observe(e Event) {
	fn(e)
}

// Graph routes a block of samples through connected nodes towards the
// single output. Nodes are owned by the graph and referenced by ids.
//
// Graph is not safe for concurrent use.
type Graph struct {
	uid      string
	name     string
	nodes    []node
	topology topology
	walk     traversal
	config   RuntimeConfig
	prepared bool
	log      Logger
	observer Observer
}

// New creates a new graph with the output node and applies provided
// options.
func New(options ...Option) *Graph {
	g := &Graph{
		uid:    xid.New().String(),
		config: DefaultConfig,
		log:    defaultLogger,
	}
	for _, option := range options {
		option(g)
	}
	g.add(newSink())
	return g
}

func (g *Graph) add(n Node) NodeID {
	g.nodes = append(g.nodes, newNode(n))
	g.topology.add()
	g.walk.grow()
	return NodeID(len(g.nodes) - 1)
}

// Register transfers the node into graph ownership and returns its id.
// Connections are not established. Nil and sink type nodes are rejected.
func (g *Graph) Register(n Node) (NodeID, error) {
	if n == nil {
		return 0, newError(KindNilNode, "%v: nil node cannot be registered", g)
	}
	if n.Type() == TypeSink {
		return 0, newError(KindCannotAddSinkTypeNode, "%v: %v node cannot be registered", g, TypeSink)
	}
	id := g.add(n)
	g.log.Debug(fmt.Sprintf("%v registered %v node %d", g, n.Type(), id))
	return id, nil
}

// Connect feeds the output of source node into the consumer's input
// port. Graph is not modified if the connection is not valid.
func (g *Graph) Connect(source, consumer NodeID, port int) error {
	if !g.exists(source) {
		return newError(KindNodeIDNonExistent, "%v: source node %d doesn't exist", g, source)
	}
	if !g.exists(consumer) {
		return newError(KindNodeIDNonExistent, "%v: consumer node %d doesn't exist", g, consumer)
	}
	c := g.nodes[consumer]
	if port < 0 || port >= c.NumInputs() {
		return newError(KindNodeInputPortInvalid, "%v: node %d has %d inputs, port %d is invalid", g, consumer, c.NumInputs(), port)
	}
	if _, ok := c.NextInput(); !ok {
		return newError(KindNodeNoMoreInputs, "%v: node %d has no free inputs", g, consumer)
	}
	if source == consumer {
		return newError(KindNodeConnectingToItself, "%v: node %d cannot be connected to itself", g, source)
	}
	if g.topology.hasChild(consumer, source) {
		return newError(KindConnectionAlreadyExists, "%v: connection %d -> %d already exists", g, source, consumer)
	}
	if parent, ok := g.topology.parent(source); ok {
		return newError(KindNodeParentAlreadyExists, "%v: node %d is already connected to %d", g, source, parent)
	}

	g.topology.link(source, consumer)
	c.ConnectInput()
	g.log.Debug(fmt.Sprintf("%v connected %d -> %d:%d", g, source, consumer, port))
	return nil
}

// ConnectToOutput connects source node to the next free input of the
// output. Output has a single input.
func (g *Graph) ConnectToOutput(source NodeID) error {
	port, _ := g.nodes[Output].NextInput()
	return g.Connect(source, Output, port)
}

// Prepare sets the runtime config and initializes all nodes with it.
// Previous config is kept if provided values are not valid.
func (g *Graph) Prepare(sampleRate float64, blockSize int) error {
	if blockSize <= 0 {
		return newError(KindInvalidBufferSize, "%v: invalid buffer size %d", g, blockSize)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return newError(KindInvalidSamplingFrequency, "%v: invalid sampling frequency %v", g, sampleRate)
	}
	g.config = RuntimeConfig{
		SampleRate: sampleRate,
		BlockSize:  blockSize,
	}
	g.prepared = true
	for i := range g.nodes {
		if g.nodes[i].init != nil {
			g.nodes[i].init.Init(g.config)
		}
	}
	g.log.Debug(fmt.Sprintf("%v prepared with %v", g, g.config))
	return nil
}

// ProcessBlock passes the block through all nodes connected to the
// output. Every node processes the block after all its sources. The
// block is mutated in place and returned.
//
// Once the graph is prepared, block length must be equal to the block
// size, otherwise ProcessBlock panics.
func (g *Graph) ProcessBlock(block []float64) []float64 {
	if g.prepared && len(block) != g.config.BlockSize {
		panic(fmt.Sprintf("graph: block of %d samples, prepared block size is %d", len(block), g.config.BlockSize))
	}
	g.walk.start(g.topology, Output)
	for {
		id, ok := g.walk.next(g.topology)
		if !ok {
			return block
		}
		n := g.nodes[id]
		if n.process != nil {
			block = n.process.Process(block)
		}
		if g.observer != nil {
			g.observer.Observe(Event{
				Node:   id,
				Type:   n.Type(),
				Block:  block,
				Config: g.config,
			})
		}
	}
}

// ChangeParameters passes parameters to the node.
func (g *Graph) ChangeParameters(id NodeID, params []float64) error {
	if !g.exists(id) {
		return newError(KindNodeIDNonExistent, "%v: node %d doesn't exist", g, id)
	}
	if p := g.nodes[id].params; p != nil {
		p.ChangeParameters(params)
	}
	return nil
}

// Reset resets all nodes in the order of registration.
func (g *Graph) Reset() {
	for i := range g.nodes {
		if g.nodes[i].reset != nil {
			g.nodes[i].reset.Reset()
		}
	}
	g.log.Debug(fmt.Sprintf("%v reset", g))
}

// Len returns number of nodes, including the output.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Config returns current runtime config.
func (g *Graph) Config() RuntimeConfig {
	return g.config
}

// Parent returns the consumer of the node output.
func (g *Graph) Parent(id NodeID) (NodeID, bool) {
	if !g.exists(id) {
		return 0, false
	}
	return g.topology.parent(id)
}

// Inputs returns nodes connected to the node inputs in order of
// connection.
func (g *Graph) Inputs(id NodeID) []NodeID {
	if !g.exists(id) {
		return nil
	}
	children := g.topology.children(id)
	if len(children) == 0 {
		return nil
	}
	result := make([]NodeID, len(children))
	copy(result, children)
	return result
}

func (g *Graph) exists(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Convert graph to string. Name is included if has value.
func (g *Graph) String() string {
	if g.name == "" {
		return g.uid
	}
	return fmt.Sprintf("%v %v", g.name, g.uid)
}

type silentLogger struct{}

func (silentLogger) Debug(args ...interface{}) {}

func (silentLogger) Info(args ...interface{}) {}

var defaultLogger silentLogger
