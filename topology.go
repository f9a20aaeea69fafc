package graph

// entry is a topology record of a single node. Children are the sources
// that feed the node, parent is the single consumer of its output.
type entry struct {
	parent    NodeID
	hasParent bool
	children  []NodeID
}

// topology is an append-only map of connections, index-parallel to the
// node arena. It doesn't validate anything.
type topology []entry

func (t *topology) add() {
	*t = append(*t, entry{})
}

func (t topology) link(source, consumer NodeID) {
	t[consumer].children = append(t[consumer].children, source)
	t[source].parent = consumer
	t[source].hasParent = true
}

func (t topology) hasChild(consumer, source NodeID) bool {
	for _, c := range t[consumer].children {
		if c == source {
			return true
		}
	}
	return false
}

func (t topology) parent(id NodeID) (NodeID, bool) {
	return t[id].parent, t[id].hasParent
}

func (t topology) children(id NodeID) []NodeID {
	return t[id].children
}
