package graph

// sink is the terminal node of every graph. It has a single input and
// passes the block through.
type sink struct {
	Ports
}

func newSink() *sink {
	return &sink{
		Ports: NewPorts(1),
	}
}

// Type implements Node.
func (*sink) Type() Type {
	return TypeSink
}
