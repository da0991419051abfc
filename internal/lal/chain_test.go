package lal

import (
	"testing"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// runLeg starts the current node and updates until the leg completes.
func runLeg(t *testing.T, c *LinkedChain) StepResult {
	t.Helper()
	if !c.StartUpdating() {
		t.Fatalf("StartUpdating() = false at node %d", c.Current())
	}
	for i := 0; i < 20; i++ {
		if res := c.Update(); res.Stepped {
			return res
		}
	}
	t.Fatalf("leg at node %d never completed", c.Current())
	return StepResult{}
}

type recordingDrawer struct {
	indices []int
	scales  []float64
}

func (r *recordingDrawer) DrawNode(i int, scale float64) {
	r.indices = append(r.indices, i)
	r.scales = append(r.scales, scale)
}

type twoAxisMirror struct{ calls int }

func (m *twoAxisMirror) DrawMirrored(draw func()) {
	m.calls++
	draw()
	draw()
}

func TestNewChainLinks(t *testing.T) {
	c := NewChain()
	if c.Len() != config.NodeCount {
		t.Fatalf("Len() = %d, want %d", c.Len(), config.NodeCount)
	}
	if c.Current() != 0 || c.Direction() != 1 {
		t.Errorf("cursor = (%d, %d), want (0, 1)", c.Current(), c.Direction())
	}

	// Walk the forward links from the head.
	seen := map[int]bool{}
	i := 0
	for steps := 0; i != noNode; steps++ {
		if steps > config.NodeCount {
			t.Fatal("forward links contain a cycle")
		}
		n := c.Node(i)
		if n.Index() != steps {
			t.Errorf("node at step %d has index %d", steps, n.Index())
		}
		if seen[n.Index()] {
			t.Errorf("index %d visited twice", n.Index())
		}
		seen[n.Index()] = true
		if n.Next() != noNode && c.Node(n.Next()).Prev() != n.Index() {
			t.Errorf("node %d: next.prev = %d", n.Index(), c.Node(n.Next()).Prev())
		}
		i = n.Next()
	}
	if len(seen) != config.NodeCount {
		t.Errorf("visited %d nodes, want %d", len(seen), config.NodeCount)
	}
	if c.Node(0).Prev() != noNode {
		t.Errorf("head prev = %d, want none", c.Node(0).Prev())
	}
}

func TestNodeAdvance(t *testing.T) {
	c := NewChain()
	last := config.NodeCount - 1
	tests := []struct {
		name         string
		node, dir    int
		want         int
		wantBoundary bool
	}{
		{"forward from head", 0, 1, 1, false},
		{"backward from head", 0, -1, 0, true},
		{"forward from tail", last, 1, last, true},
		{"backward from tail", last, -1, last - 1, false},
		{"backward from middle", 2, -1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, boundary := c.Node(tt.node).Advance(tt.dir)
			if got != tt.want || boundary != tt.wantBoundary {
				t.Errorf("Advance(%d) = (%d, %v), want (%d, %v)", tt.dir, got, boundary, tt.want, tt.wantBoundary)
			}
		})
	}
}

func TestChainFirstLeg(t *testing.T) {
	c := NewChain()
	if !c.StartUpdating() {
		t.Fatal("StartUpdating() = false on fresh chain")
	}
	if c.Node(0).state.Dir() != 1 {
		t.Fatalf("node 0 dir = %f, want 1", c.Node(0).state.Dir())
	}

	for i := 1; i <= 9; i++ {
		if res := c.Update(); res.Stepped {
			t.Fatalf("leg completed early at update %d", i)
		}
	}
	res := c.Update()
	if !res.Stepped {
		t.Fatal("leg not complete after 10 updates")
	}
	if res.Leg != (Leg{Index: 0, Scale: 1}) {
		t.Errorf("Leg = %+v, want node 0 at 1", res.Leg)
	}
	if c.Node(0).Scale() != 1 {
		t.Errorf("node 0 scale = %f, want 1", c.Node(0).Scale())
	}
	if c.Current() != 1 || c.Direction() != 1 || res.Flipped {
		t.Errorf("cursor = (%d, %d, flipped %v), want (1, 1, false)", c.Current(), c.Direction(), res.Flipped)
	}
}

func TestChainPingPong(t *testing.T) {
	c := NewChain()
	last := config.NodeCount - 1

	for want := 0; want < last; want++ {
		res := runLeg(t, c)
		if res.Leg.Index != want || res.Current != want+1 || res.Flipped {
			t.Fatalf("forward leg %d: %+v", want, res)
		}
	}

	// The tail leg bounces: cursor stays, direction reverses.
	res := runLeg(t, c)
	if res.Leg.Index != last || !res.Flipped {
		t.Fatalf("tail leg: %+v, want flip at %d", res, last)
	}
	if c.Current() != last || c.Direction() != -1 {
		t.Fatalf("after bounce cursor = (%d, %d), want (%d, -1)", c.Current(), c.Direction(), last)
	}
	for i, s := range c.Scales() {
		if s != 1 {
			t.Errorf("node %d scale = %f after forward pass, want 1", i, s)
		}
	}

	// Walking back closes each node and moves towards the head.
	for want := last; want > 0; want-- {
		res := runLeg(t, c)
		if res.Leg.Index != want || res.Leg.Scale != 0 || res.Current != want-1 {
			t.Fatalf("backward leg %d: %+v", want, res)
		}
	}
	res = runLeg(t, c)
	if !res.Flipped || c.Current() != 0 || c.Direction() != 1 {
		t.Fatalf("head leg: %+v, cursor (%d, %d)", res, c.Current(), c.Direction())
	}
	if !c.Idle() {
		t.Error("chain not idle after full round trip")
	}
}

func TestChainDrawFromCurrent(t *testing.T) {
	c := NewChain()
	var d recordingDrawer
	var m twoAxisMirror

	c.Draw(&m, &d)
	if m.calls != 1 {
		t.Fatalf("mirror calls = %d, want 1", m.calls)
	}
	want := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	if len(d.indices) != len(want) {
		t.Fatalf("drew %v, want %v", d.indices, want)
	}
	for i := range want {
		if d.indices[i] != want[i] {
			t.Fatalf("drew %v, want %v", d.indices, want)
		}
	}

	runLeg(t, c)
	runLeg(t, c)
	d = recordingDrawer{}
	c.Draw(&m, &d)
	if d.indices[0] != 2 || len(d.indices) != 6 {
		t.Errorf("drew %v after two legs, want nodes 2..4 twice", d.indices)
	}
}

func TestChainStartUpdatingMidLegIsNoop(t *testing.T) {
	c := NewChain()
	c.StartUpdating()
	c.Update()
	before := c.Node(0).state

	if c.StartUpdating() {
		t.Error("StartUpdating() = true mid-leg")
	}
	if c.Node(0).state != before {
		t.Error("node state changed on ignored start")
	}
}
