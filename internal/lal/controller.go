package lal

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Surface is everything the controller needs to repaint the widget.
type Surface interface {
	NodeDrawer
	AxisMirror
	Clear()
}

// Controller glues the chain to the driver: taps start a leg, ticks advance
// it and the driver halts once the leg is done.
type Controller struct {
	chain  *LinkedChain
	driver *Driver
	logger *log.Logger
	onStep func(StepResult)
}

// NewController builds a fresh chain animated by driver.
func NewController(driver *Driver, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{chain: NewChain(), driver: driver, logger: logger}
}

// OnStep registers fn to be called after every completed leg.
func (c *Controller) OnStep(fn func(StepResult)) {
	c.onStep = fn
}

// Render paints the background and the chain.
func (c *Controller) Render(s Surface) {
	s.Clear()
	c.chain.Draw(s, s)
}

// Tick runs one driver tick. The driver stops as soon as a leg completes, so
// every tap animates exactly one node.
func (c *Controller) Tick(ctx context.Context) {
	c.driver.RunTick(ctx, func() {
		res := c.chain.Update()
		if !res.Stepped {
			return
		}
		c.logger.Debug("leg done",
			"node", res.Leg.Index, "scale", res.Leg.Scale,
			"current", res.Current, "dir", res.Direction)
		c.driver.Stop()
		if c.onStep != nil {
			c.onStep(res)
		}
	})
}

// HandleTap starts a leg on the current node. It reports false, and changes
// nothing, while a leg is in progress.
func (c *Controller) HandleTap() bool {
	if !c.chain.StartUpdating() {
		return false
	}
	c.driver.Start()
	return true
}

func (c *Controller) Chain() *LinkedChain { return c.chain }

func (c *Controller) Driver() *Driver { return c.driver }
