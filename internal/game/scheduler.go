package game

import (
	"context"
	"errors"
	"time"
)

var errDetached = errors.New("scheduler detached")

// scheduler turns the driver's redraw requests into a due time that Update
// polls every frame, so the game loop never sleeps.
type scheduler struct {
	now      func() time.Time
	due      time.Time
	pending  bool
	detached bool
}

func newScheduler(now func() time.Time) *scheduler {
	if now == nil {
		now = time.Now
	}
	return &scheduler{now: now}
}

func (s *scheduler) Schedule(ctx context.Context, after time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.detached {
		return errDetached
	}
	s.due = s.now().Add(after)
	s.pending = true
	return nil
}

func (s *scheduler) RedrawNow() {
	if s.detached {
		return
	}
	s.due = s.now()
	s.pending = true
}

// take consumes a pending redraw once it is due.
func (s *scheduler) take() bool {
	if !s.pending || s.now().Before(s.due) {
		return false
	}
	s.pending = false
	return true
}

// detach drops any pending redraw and refuses new ones.
func (s *scheduler) detach() {
	s.detached = true
	s.pending = false
}
