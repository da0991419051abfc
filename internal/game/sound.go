package game

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/linked-lal/internal/config"
)

// clicker plays a short sound when a leg finishes.
type clicker interface {
	click()
}

type silentClicker struct{}

func (silentClicker) click() {}

type speakerClicker struct {
	format beep.Format
}

// newClicker initialises the speaker. When that fails the game runs silent.
func newClicker(enabled bool, logger *log.Logger) clicker {
	if !enabled {
		return silentClicker{}
	}
	format := beep.Format{SampleRate: config.SampleRate, NumChannels: 2, Precision: 2}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		logger.Warn("sound disabled", "err", err)
		return silentClicker{}
	}
	return &speakerClicker{format: format}
}

func (c *speakerClicker) click() {
	speaker.Play(clickStreamer(c.format.SampleRate, config.ClickDuration, config.ClickPitch))
}

// clickStreamer generates an exponentially decaying sine of the given length.
func clickStreamer(sr beep.SampleRate, d time.Duration, pitch float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := 0.3 * env * math.Sin(2*math.Pi*pitch*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
