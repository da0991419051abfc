package game

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/linked-lal/internal/lal"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// statusLine summarises the chain for the debug overlay.
func statusLine(c *lal.LinkedChain, taps int, uptime time.Duration) string {
	cur := c.Node(c.Current())
	dir := "forward"
	if c.Direction() < 0 {
		dir = "backward"
	}
	return fmt.Sprintf("node %d/%d %s (%s) | taps %d | %s",
		cur.Index()+1, c.Len(), dir, cur.Phase(), taps, formatDuration(uptime))
}
