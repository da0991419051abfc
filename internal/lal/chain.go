package lal

import "github.com/iburimskiy/linked-lal/internal/config"

// AxisMirror invokes draw once per mirrored axis.
type AxisMirror interface {
	DrawMirrored(draw func())
}

// StepResult reports the outcome of one chain update.
type StepResult struct {
	// Stepped is true when the current node finished its leg on this update.
	Stepped bool
	Leg     Leg
	// Current and Direction are the cursor after the update.
	Current   int
	Direction int
	// Flipped is true when the cursor hit a boundary and reversed.
	Flipped bool
}

// LinkedChain is the fixed row of nodes plus a traversal cursor.
type LinkedChain struct {
	nodes   [config.NodeCount]Node
	current int
	dir     int
}

// NewChain builds all nodes eagerly, cursor at node 0 moving forward.
func NewChain() *LinkedChain {
	c := &LinkedChain{dir: 1}
	for i := range c.nodes {
		c.nodes[i] = Node{index: i, next: noNode, prev: noNode, arena: &c.nodes}
	}
	for i := range c.nodes {
		c.nodes[i].linkNeighbor()
	}
	return c
}

// Draw paints from the current node onwards, once per mirrored axis.
func (c *LinkedChain) Draw(m AxisMirror, d NodeDrawer) {
	m.DrawMirrored(func() {
		c.nodes[c.current].Draw(d)
	})
}

// Update steps the current node. When its leg completes the cursor moves one
// node in the traversal direction, reversing at either end.
func (c *LinkedChain) Update() StepResult {
	leg, done := c.nodes[c.current].Update()
	if !done {
		return StepResult{Current: c.current, Direction: c.dir}
	}
	next, boundary := c.nodes[c.current].Advance(c.dir)
	if boundary {
		c.dir *= -1
	}
	c.current = next
	return StepResult{
		Stepped:   true,
		Leg:       leg,
		Current:   c.current,
		Direction: c.dir,
		Flipped:   boundary,
	}
}

// StartUpdating starts a leg on the current node. It is a no-op returning
// false while that node is animating.
func (c *LinkedChain) StartUpdating() bool {
	return c.nodes[c.current].StartUpdating()
}

func (c *LinkedChain) Current() int { return c.current }

func (c *LinkedChain) Direction() int { return c.dir }

func (c *LinkedChain) Len() int { return len(c.nodes) }

// Node returns the node at index i. It panics if i is out of range.
func (c *LinkedChain) Node(i int) *Node { return &c.nodes[i] }

// Scales returns a copy of every node's scale, in index order.
func (c *LinkedChain) Scales() []float64 {
	out := make([]float64, len(c.nodes))
	for i := range c.nodes {
		out[i] = c.nodes[i].Scale()
	}
	return out
}

// Idle reports whether no node is animating.
func (c *LinkedChain) Idle() bool {
	for i := range c.nodes {
		if c.nodes[i].Phase() != Idle {
			return false
		}
	}
	return true
}
