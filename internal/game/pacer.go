package game

import "time"

// FramePacer holds a real-time loop to a target frame rate with a
// hybrid sleep/spin wait.
type FramePacer struct {
	rate int
	next time.Time
}

// NewFramePacer creates a pacer for the given frames per second. A
// rate <= 0 disables pacing.
func NewFramePacer(rate int) *FramePacer {
	return &FramePacer{rate: rate}
}

// Wait blocks until the next frame is due.
func (f *FramePacer) Wait() {
	if f.rate <= 0 {
		return
	}

	target := time.Second / time.Duration(f.rate)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait the final microseconds for precision
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// After a hitch, resync instead of racing to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
