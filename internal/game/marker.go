package game

import (
	"image/color"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// marker is a dot that springs along the axis towards the current node.
type marker struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newMarker(tps int) *marker {
	return &marker{spring: harmonica.NewSpring(harmonica.FPS(tps), config.MarkerFrequency, config.MarkerDamping)}
}

// step moves the marker one frame towards node index target.
func (m *marker) step(target int) float64 {
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, float64(target))
	return m.pos
}

// draw paints the dot below the node position, inside the mirrored frame.
func (m *marker) draw(c *canvas, clr color.Color) {
	gap := c.gap()
	c.DrawMirrored(func() {
		c.drawDot(m.pos*gap+gap/2+gap/4, gap/2, float64(c.width), clr)
	})
}
