package lal

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Scheduler is the host side of the animation loop.
type Scheduler interface {
	// Schedule asks for a redraw once after has elapsed. It fails when the
	// host can no longer redraw.
	Schedule(ctx context.Context, after time.Duration) error
	// RedrawNow asks for a redraw as soon as possible.
	RedrawNow()
}

// Driver is a boolean-gated fixed-interval loop. Each tick runs one step and
// schedules the next redraw; the host calls RunTick from that redraw.
type Driver struct {
	host     Scheduler
	interval time.Duration
	active   bool
	logger   *log.Logger
}

// NewDriver returns an inactive driver. A nil logger discards output.
func NewDriver(host Scheduler, interval time.Duration, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{host: host, interval: interval, logger: logger}
}

// RunTick runs step and schedules the next tick. It does nothing while the
// driver is inactive. Scheduling failures are dropped: the loop just stops
// producing ticks.
func (d *Driver) RunTick(ctx context.Context, step func()) {
	if !d.active {
		return
	}
	step()
	if err := d.host.Schedule(ctx, d.interval); err != nil {
		d.logger.Debug("redraw not scheduled", "err", err)
	}
}

func (d *Driver) Start() {
	if d.active {
		return
	}
	d.active = true
	d.host.RedrawNow()
}

func (d *Driver) Stop() {
	if d.active {
		d.active = false
	}
}

func (d *Driver) Active() bool { return d.active }
