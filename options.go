package graph

// Option provides a way to set functional parameters to graph.
type Option func(*Graph)

// WithName sets name to Graph.
func WithName(n string) Option {
	return func(g *Graph) {
		g.name = n
	}
}

// WithLogger sets logger to Graph. If this option is not provided,
// silent logger is used.
func WithLogger(logger Logger) Option {
	return func(g *Graph) {
		g.log = logger
	}
}

// WithObserver sets observer which is notified every time a node
// processes the block.
func WithObserver(o Observer) Option {
	return func(g *Graph) {
		g.observer = o
	}
}
