package graph

// frame is a traversal stack entry: node, number of its children and
// index of the child which subtree is being visited.
type frame struct {
	id    NodeID
	count int
	index int
}

// traversal walks the topology tree depth-first without recursion. It
// returns sources before their consumers. Stack capacity is equal to the
// number of registered nodes, so the walk never allocates.
type traversal struct {
	stack []frame
}

// grow adds one slot to the stack capacity. Must not be called during
// the walk.
func (t *traversal) grow() {
	t.stack = make([]frame, 0, cap(t.stack)+1)
}

// start resets the stack and descends from the root.
func (t *traversal) start(topo topology, root NodeID) {
	t.stack = t.stack[:0]
	t.descend(topo, root)
}

// descend pushes the leftmost path from id to a node without children.
func (t *traversal) descend(topo topology, id NodeID) {
	for {
		children := topo.children(id)
		if len(t.stack) == cap(t.stack) {
			panic("graph: traversal stack overflow, topology is not a tree")
		}
		t.stack = append(t.stack, frame{id: id, count: len(children)})
		if len(children) == 0 {
			return
		}
		id = children[0]
	}
}

// next returns the next node to process. False is returned when the
// walk is done.
func (t *traversal) next(topo topology) (NodeID, bool) {
	if len(t.stack) == 0 {
		return 0, false
	}
	top := &t.stack[len(t.stack)-1]
	if top.index+1 < top.count {
		top.index++
		t.descend(topo, topo.children(top.id)[top.index])
	}
	last := len(t.stack) - 1
	id := t.stack[last].id
	t.stack = t.stack[:last]
	return id, true
}
