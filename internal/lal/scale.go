package lal

import (
	"math"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// legTolerance absorbs float drift from summing Step ten times.
const legTolerance = 1e-9

// Phase is the enum-tagged view of a ScaleState.
type Phase int

const (
	Idle Phase = iota
	AnimatingForward
	AnimatingBackward
)

func (p Phase) String() string {
	switch p {
	case AnimatingForward:
		return "forward"
	case AnimatingBackward:
		return "backward"
	default:
		return "idle"
	}
}

// ScaleState holds one node's interpolation progress. The zero value is idle
// at scale 0.
type ScaleState struct {
	scale     float64
	dir       float64
	prevScale float64
}

// Update advances the scale by one step. When a full leg has been covered the
// scale snaps to its target, the state goes idle and done is true.
func (s *ScaleState) Update() (settled float64, done bool) {
	if s.dir == 0 {
		return s.prevScale, false
	}
	s.scale += config.Step * s.dir
	if math.Abs(s.scale-s.prevScale) >= 1-legTolerance {
		s.scale = s.prevScale + s.dir
		s.dir = 0
		s.prevScale = s.scale
		return s.prevScale, true
	}
	return s.scale, false
}

// StartUpdating begins a leg towards the opposite end. It reports false if a
// leg is already in progress.
func (s *ScaleState) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	s.dir = 1 - 2*s.prevScale
	return true
}

func (s *ScaleState) Scale() float64 { return s.scale }

func (s *ScaleState) Dir() float64 { return s.dir }

func (s *ScaleState) PrevScale() float64 { return s.prevScale }

func (s *ScaleState) Phase() Phase {
	switch {
	case s.dir > 0:
		return AnimatingForward
	case s.dir < 0:
		return AnimatingBackward
	default:
		return Idle
	}
}
