// Package lal implements the animation state of the linked LAL widget: a
// fixed row of nodes, each opening or closing a pair of lines, with a cursor
// that ping-pongs between the two ends of the row.
//
// Nothing here draws or sleeps. Rendering goes through NodeDrawer and
// AxisMirror, and timing through a host Scheduler, so the whole package can
// be driven tick by tick from tests.
package lal
