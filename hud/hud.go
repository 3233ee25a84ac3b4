// Package hud holds the frame-rate state shown by the renderer's overlay.
// The displayed value is averaged over a fixed window of frames so it does
// not jitter with individual frame times.
package hud

// SmoothingWindow is the number of frames averaged into one displayed rate.
const SmoothingWindow = 60

// Meter accumulates per-frame tick deltas from the host's timing source and
// periodically folds them into an averaged rate. Between windows the last
// computed value is reused. Lifecycle is tied to the render loop; nothing is
// persisted.
type Meter struct {
	freq   uint64
	accum  uint64
	frames uint32
	rate   uint32
}

// NewMeter creates a meter for a timing source ticking freq times per second.
// A zero frequency is a caller bug.
func NewMeter(freq uint64) *Meter {
	if freq == 0 {
		panic("hud: zero tick frequency")
	}
	return &Meter{freq: freq}
}

// AddFrame records one frame's elapsed ticks. On the frame that completes a
// smoothing window it recomputes the averaged rate and resets the window.
func (m *Meter) AddFrame(ticks uint64) {
	m.accum += ticks
	m.frames++
	if m.frames < SmoothingWindow {
		return
	}
	if m.accum > 0 {
		m.rate = uint32(m.freq * uint64(m.frames) / m.accum)
	}
	m.accum = 0
	m.frames = 0
}

// Rate returns the last computed frames-per-second value, zero until the
// first window completes.
func (m *Meter) Rate() uint32 {
	return m.rate
}
