package config

import "time"

const (
	WindowWidth  = 512
	WindowHeight = 512

	// Animation parameters. These are fixed; themes cannot change them.
	NodeCount    = 5
	Step         = 0.1
	TickInterval = 50 * time.Millisecond

	// Line geometry
	LineAngle     = 30.0 // degrees each line swings away from the axis
	StrokeDivisor = 60

	// Cursor marker spring
	MarkerFrequency = 6.0
	MarkerDamping   = 0.6

	// Click sound
	SampleRate    = 44100
	ClickDuration = 40 * time.Millisecond
	ClickPitch    = 880.0
)
