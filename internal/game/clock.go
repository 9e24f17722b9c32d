package game

import (
	"time"
)

// Stopwatch accumulates wall-clock time across pause/resume cycles.
// The terminal adapter owns one and feeds its deltas into the
// GameState timer, keeping the core free of clock reads.
type Stopwatch struct {
	running bool
	start   time.Time
	elapsed time.Duration
}

func (sw *Stopwatch) Start() {
	if sw.running {
		return
	}
	sw.running = true
	sw.start = time.Now()
}

func (sw *Stopwatch) Stop() {
	if !sw.running {
		return
	}
	sw.elapsed += time.Since(sw.start)
	sw.running = false
}

func (sw *Stopwatch) Reset() {
	sw.running = false
	sw.elapsed = 0
}

func (sw *Stopwatch) Running() bool { return sw.running }

// Elapsed is the total time spent running.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.running {
		return sw.elapsed + time.Since(sw.start)
	}
	return sw.elapsed
}
