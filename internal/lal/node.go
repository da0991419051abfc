package lal

import "github.com/iburimskiy/linked-lal/internal/config"

// noNode marks a missing link.
const noNode = -1

// NodeDrawer paints a single node from its index and scale.
type NodeDrawer interface {
	DrawNode(i int, scale float64)
}

// Leg describes a finished transition of one node.
type Leg struct {
	Index int
	Scale float64
}

// Node is one line pair in the chain. Nodes live in the chain's arena; next
// and prev are indices into it.
type Node struct {
	index int
	state ScaleState
	next  int
	prev  int
	arena *[config.NodeCount]Node
}

// linkNeighbor wires the forward link and the neighbour's back-reference.
func (n *Node) linkNeighbor() {
	n.next = noNode
	if n.index < config.NodeCount-1 {
		n.next = n.index + 1
		n.arena[n.next].prev = n.index
	}
}

// Draw paints this node and then every node after it.
func (n *Node) Draw(d NodeDrawer) {
	d.DrawNode(n.index, n.state.Scale())
	if n.next != noNode {
		n.arena[n.next].Draw(d)
	}
}

// Update steps the node's state, returning the leg when it completes.
func (n *Node) Update() (Leg, bool) {
	scale, done := n.state.Update()
	if !done {
		return Leg{}, false
	}
	return Leg{Index: n.index, Scale: scale}, true
}

func (n *Node) StartUpdating() bool {
	return n.state.StartUpdating()
}

// Advance returns the neighbour in direction dir (-1 for previous, anything
// else for next). At the end of the chain it returns the node itself and
// boundary is true.
func (n *Node) Advance(dir int) (next int, boundary bool) {
	link := n.next
	if dir == -1 {
		link = n.prev
	}
	if link == noNode {
		return n.index, true
	}
	return link, false
}

func (n *Node) Index() int { return n.index }

// Next returns the index of the following node, or -1.
func (n *Node) Next() int { return n.next }

// Prev returns the index of the preceding node, or -1.
func (n *Node) Prev() int { return n.prev }

func (n *Node) Scale() float64 { return n.state.Scale() }

func (n *Node) Phase() Phase { return n.state.Phase() }

