package app

import "time"

// maxCatchUpTicks caps how many updates run after a stall so the loop
// degrades by slowing down instead of spiraling on accumulated time.
const maxCatchUpTicks = 4

// Run drives the frame loop at a fixed update rate with interpolated
// draws. It returns when the event source observes a quit signal; that
// is the only cancellation point, always between frames.
func (a *App) Run(tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	tick := time.Second / time.Duration(tickRate)
	delta := tick.Seconds()

	last := time.Now()
	var acc time.Duration

	for {
		now := time.Now()
		acc += now.Sub(last)
		last = now

		if acc > maxCatchUpTicks*tick {
			acc = maxCatchUpTicks * tick
		}

		for acc >= tick {
			if !a.Frame(delta) {
				return
			}
			acc -= tick
		}

		a.Draw(float64(acc) / float64(tick))

		if sleep := tick - acc; sleep > 0 {
			time.Sleep(sleep)
		}
	}
}
