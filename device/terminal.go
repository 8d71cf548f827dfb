package device

import (
	"sync"
	"time"

	"pickup/game"
)

const shakeDuration = 150 * time.Millisecond

// Terminal simulates the handheld for local play. Arrow keys point the
// device at a cardinal, space shakes it hard enough to register a step, and
// a/b press the buttons. The game loop runs on its own goroutine and talks
// to the TUI only through this shared state.
type Terminal struct {
	mu         sync.Mutex
	heading    float64
	shakeUntil time.Time
	pressed    [2]bool
	calibrated bool
	fb         [game.GridSize * game.GridSize]int
	scrollText string
	scrollAt   time.Time
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

// SetHeading points the simulated compass.
func (t *Terminal) SetHeading(deg float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.heading = deg
}

// Shake produces above-threshold accelerometer readings for the next few
// ticks' worth of samples.
func (t *Terminal) Shake() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shakeUntil = time.Now().Add(shakeDuration)
}

// Press latches a button press until the game reads it.
func (t *Terminal) Press(b game.Button) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pressed[b] = true
}

func (t *Terminal) IsCalibrated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calibrated
}

// Calibrate has nothing physical to do in a simulator; it flips the flag
// and shows the same feedback the device would.
func (t *Terminal) Calibrate() {
	t.mu.Lock()
	t.calibrated = true
	t.mu.Unlock()
	t.ScrollText("CALIBRATED", game.ScrollDelayMillis)
}

func (t *Terminal) Heading() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.heading
}

func (t *Terminal) X() int { return 0 }

func (t *Terminal) Y() int { return 0 }

// Z carries the whole simulated magnitude: resting gravity normally, a hard
// jolt while a shake is active.
func (t *Terminal) Z() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if time.Now().Before(t.shakeUntil) {
		return -2000
	}
	return -1000
}

func (t *Terminal) WasPressed(b game.Button) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.pressed[b]
	t.pressed[b] = false
	return was
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fb = [game.GridSize * game.GridSize]int{}
}

func (t *Terminal) SetPixel(x, y, brightness int) {
	if x < game.GridMin || x > game.GridMax || y < game.GridMin || y > game.GridMax {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fb[y*game.GridSize+x] = brightness
}

func (t *Terminal) ScrollText(text string, _ int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scrollText = text
	t.scrollAt = time.Now()
}

// Snapshot returns what the TUI should show right now: the framebuffer, the
// heading, and any recent scroll text (scrolls fade after a few seconds,
// standing in for the transient scroll on real hardware).
func (t *Terminal) Snapshot() ([game.GridSize * game.GridSize]int, float64, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	scroll := t.scrollText
	if time.Since(t.scrollAt) > 3*time.Second {
		scroll = ""
	}
	return t.fb, t.heading, scroll
}
