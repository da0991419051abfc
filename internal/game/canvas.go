package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// segment is a stroked line in screen coordinates.
type segment struct {
	x0, y0, x1, y1 float64
}

// canvas is an immediate-mode surface with a transform stack, in the manner
// of an Android Canvas. Transforms apply in local space: the last call is the
// first applied to a point.
type canvas struct {
	dst    *ebiten.Image
	w, h   float64
	geo    ebiten.GeoM
	stack  []ebiten.GeoM
	bg     color.Color
	stroke color.Color
	width  float32
	ease   ease.TweenFunc

	// record, when set, receives every stroked segment.
	record func(segment)
}

func newCanvas(w, h float64, theme config.Theme) *canvas {
	return &canvas{
		w:      w,
		h:      h,
		bg:     theme.BackgroundColor(),
		stroke: theme.StrokeColor(),
		width:  float32(math.Min(w, h) / float64(theme.StrokeDivisor)),
		ease:   theme.Ease(),
	}
}

// begin resets the transform stack and targets dst for this frame.
func (c *canvas) begin(dst *ebiten.Image) {
	c.dst = dst
	c.geo.Reset()
	c.stack = c.stack[:0]
}

func (c *canvas) save() {
	c.stack = append(c.stack, c.geo)
}

func (c *canvas) restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvas) translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(c.geo)
	c.geo = m
}

// rotate turns the local frame by deg degrees, clockwise on screen.
func (c *canvas) rotate(deg float64) {
	var m ebiten.GeoM
	m.Rotate(degToRad(deg))
	m.Concat(c.geo)
	c.geo = m
}

// drawLine strokes a round-capped line in local coordinates.
func (c *canvas) drawLine(x0, y0, x1, y1 float64) {
	sx0, sy0 := c.geo.Apply(x0, y0)
	sx1, sy1 := c.geo.Apply(x1, y1)
	if c.record != nil {
		c.record(segment{sx0, sy0, sx1, sy1})
	}
	if c.dst == nil {
		return
	}
	vector.StrokeLine(c.dst, float32(sx0), float32(sy0), float32(sx1), float32(sy1), c.width, c.stroke, true)
	vector.DrawFilledCircle(c.dst, float32(sx0), float32(sy0), c.width/2, c.stroke, true)
	vector.DrawFilledCircle(c.dst, float32(sx1), float32(sy1), c.width/2, c.stroke, true)
}

func (c *canvas) drawDot(x, y, r float64, clr color.Color) {
	if c.dst == nil {
		return
	}
	sx, sy := c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.dst, float32(sx), float32(sy), float32(r), clr, true)
}

// Clear paints the background.
func (c *canvas) Clear() {
	if c.dst != nil {
		c.dst.Fill(c.bg)
	}
}

func (c *canvas) gap() float64 {
	return math.Min(c.w, c.h) / (2 * config.NodeCount)
}

// DrawNode paints node i as two lines hinged at one end. Even nodes open as
// the scale grows, odd nodes close, and the pair slides one gap outwards in
// the second half of the leg.
func (c *canvas) DrawNode(i int, scale float64) {
	gap := c.gap()
	s := float64(c.ease(float32(clamp01(scale)), 0, 1, 1))
	parity := float64(i % 2)
	sc1 := math.Min(0.5, s) * 2
	sc2 := math.Min(0.5, math.Max(s-0.5, 0)) * 2
	fc := (1-sc1)*parity + sc1*(1-parity)

	c.save()
	c.translate(float64(i)*gap+gap/2, 0)
	c.save()
	c.translate(gap/4+gap*sc2, 0)
	for j := 0; j < 2; j++ {
		c.save()
		c.rotate(config.LineAngle * float64(1-2*j) * fc)
		c.drawLine(0, 0, -gap/2, 0)
		c.restore()
	}
	c.restore()
	c.restore()
}

// DrawMirrored runs draw from the centre of the surface, once facing right
// and once rotated half a turn.
func (c *canvas) DrawMirrored(draw func()) {
	c.save()
	c.translate(c.w/2, c.h/2)
	for i := 0; i < 2; i++ {
		c.save()
		c.rotate(180 * float64(i))
		draw()
		c.restore()
	}
	c.restore()
}
