package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopology(t *testing.T) {
	var topo topology
	for i := 0; i < 4; i++ {
		topo.add()
	}
	topo.link(1, 0)
	topo.link(2, 1)
	topo.link(3, 1)

	assert.Equal(t, []NodeID{1}, topo.children(0))
	assert.Equal(t, []NodeID{2, 3}, topo.children(1))
	assert.Nil(t, topo.children(2))

	p, ok := topo.parent(3)
	assert.True(t, ok)
	assert.Equal(t, NodeID(1), p)
	_, ok = topo.parent(0)
	assert.False(t, ok)

	assert.True(t, topo.hasChild(1, 3))
	assert.False(t, topo.hasChild(3, 1))
	assert.False(t, topo.hasChild(0, 2))
}

func TestPorts(t *testing.T) {
	p := NewPorts(2)
	assert.Equal(t, 2, p.NumInputs())
	for i := 0; i < 2; i++ {
		next, ok := p.NextInput()
		assert.True(t, ok)
		assert.Equal(t, i, next)
		p.ConnectInput()
	}
	_, ok := p.NextInput()
	assert.False(t, ok)
	p.ConnectInput()
	assert.Equal(t, 2, p.next)

	var none Ports
	_, ok = none.NextInput()
	assert.False(t, ok)
}

func TestErrorIs(t *testing.T) {
	err := newError(KindNodeNoMoreInputs, "node %d", 1)
	assert.Equal(t, "node 1", err.Error())
	assert.True(t, err.Is(ErrNodeNoMoreInputs))
	assert.False(t, err.Is(ErrNodeIDNonExistent))
	assert.Equal(t, "node no more inputs", err.Kind.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "nil node", KindNilNode.String())
}
