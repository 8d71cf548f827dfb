package game

// The platform surface the game drives. These are the only paths to
// hardware; everything behind them (LED driver, sensor fusion, text
// scrolling) belongs to the device layer and is swapped out wholesale in
// tests.

// Button identifies one of the two physical buttons.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
)

// Display is the 5x5 LED matrix.
type Display interface {
	Clear()
	SetPixel(x, y, brightness int)
	ScrollText(text string, delayMillis int)
}

// Compass reports the device bearing in degrees, 0 = magnetic north,
// increasing clockwise, in [0,360). Calibrate blocks until the sensor is
// usable again.
type Compass interface {
	IsCalibrated() bool
	Calibrate()
	Heading() float64
}

// Accelerometer reads the three axes in device-native milli-g units.
type Accelerometer interface {
	X() int
	Y() int
	Z() int
}

// Buttons is edge-triggered: WasPressed reports whether the button was
// pressed since the last call, and clears the latch.
type Buttons interface {
	WasPressed(Button) bool
}

// Clock is a monotonic millisecond counter plus the tick-pacing sleep.
type Clock interface {
	NowMillis() int64
	SleepMillis(n int)
}

// Device bundles the full platform surface.
type Device struct {
	Display Display
	Compass Compass
	Accel   Accelerometer
	Buttons Buttons
	Clock   Clock
}

// Rand is the subset of math/rand used for pickup placement, split out so
// tests can pin spawn positions.
type Rand interface {
	Intn(n int) int
}
