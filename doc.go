/*
Package graph allows to build and execute audio processing graphs.

Concept

The graph is a tree of processing stages that converges on a single
output. Every stage is a node:

    Generator - the origin of signal;
    Effect - the manipulator of the signal;
    Mixer - the stage with multiple inputs;
    Sink - the output of the graph, it's created with the graph.

It implies the following constraints:

    There is only one output;
    Every node feeds at most one consumer;
    Cycles are not possible;
    Nodes are never removed.

Nodes

Node interface only tracks input ports. Processing and lifecycle hooks
are optional interfaces:

    Initializer
    Processor
    Resetter
    ParameterChanger

Hooks are resolved once, when node is registered. Ports type can be
embedded to implement input ports accounting.

Building

Nodes are transferred into graph ownership with Register and referenced
by returned ids afterwards:

    g := graph.New()
    osc, _ := g.Register(stage.NewSine(440, 0.5))
    gain, _ := g.Register(stage.NewGain(0.5))
    err := g.Connect(osc, gain, 0)
    err = g.ConnectToOutput(gain)

Execution

Before processing, graph should be prepared with sample rate and block
size. Prepare initializes every node with the new config:

    err = g.Prepare(44100, 512)
    block := make([]float64, 512)
    block = g.ProcessBlock(block)

ProcessBlock visits every node connected to the output, sources strictly
before consumers, and passes the same block to all of them. The walk
doesn't allocate. Graph is not safe for concurrent use.
*/
package graph
