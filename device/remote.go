package device

import (
	"log"
	"sync"

	"pickup/game"
	"pickup/protocol"
)

// Conn is the send half of the transport to the sensor client.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Remote adapts a connected sensor client into the game's platform surface.
// The network layer feeds incoming messages in through HandleSensors and
// HandleCalibrated; the single game goroutine reads the latest values back
// out through the platform interfaces. Display writes go into a framebuffer
// that FlushFrame mirrors to the client at the frame rate, so a tick's worth
// of SetPixel calls costs one message, not six.
type Remote struct {
	conn Conn

	mu         sync.Mutex
	heading    float64
	ax, ay, az int
	pressed    [2]bool
	calibrated bool
	fb         [game.GridSize * game.GridSize]int
	dirty      bool

	calibAck  chan struct{}
	closed    chan struct{}
	closeOnce sync.Once
}

func NewRemote(conn Conn, hello protocol.Hello) *Remote {
	return &Remote{
		conn:       conn,
		az:         -1000, // resting gravity until the first sample arrives
		calibrated: hello.Calibrated,
		calibAck:   make(chan struct{}, 1),
		closed:     make(chan struct{}),
	}
}

// HandleSensors stores the newest sample. Button presses latch until the
// game reads them, so a press between ticks is never lost.
func (r *Remote) HandleSensors(s protocol.Sensors) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.heading = s.Heading
	r.ax, r.ay, r.az = s.Ax, s.Ay, s.Az
	if s.A {
		r.pressed[game.ButtonA] = true
	}
	if s.B {
		r.pressed[game.ButtonB] = true
	}
}

// HandleCalibrated releases a blocked Calibrate call.
func (r *Remote) HandleCalibrated() {
	select {
	case r.calibAck <- struct{}{}:
	default:
	}
}

// Close releases any blocked Calibrate call and closes the transport.
func (r *Remote) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
		_ = r.conn.Close()
	})
}

func (r *Remote) IsCalibrated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calibrated
}

// Calibrate asks the client to calibrate and blocks until it acknowledges,
// mirroring the blocking calibration routine on the real device. Returns
// early if the session ends first.
func (r *Remote) Calibrate() {
	r.send(protocol.MsgCalibrate, protocol.Calibrate{})
	select {
	case <-r.calibAck:
		r.mu.Lock()
		r.calibrated = true
		r.mu.Unlock()
	case <-r.closed:
	}
}

func (r *Remote) Heading() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.heading
}

func (r *Remote) X() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ax
}

func (r *Remote) Y() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ay
}

func (r *Remote) Z() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.az
}

func (r *Remote) WasPressed(b game.Button) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	was := r.pressed[b]
	r.pressed[b] = false
	return was
}

func (r *Remote) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb = [game.GridSize * game.GridSize]int{}
	r.dirty = true
}

func (r *Remote) SetPixel(x, y, brightness int) {
	if x < game.GridMin || x > game.GridMax || y < game.GridMin || y > game.GridMax {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb[y*game.GridSize+x] = brightness
	r.dirty = true
}

func (r *Remote) ScrollText(text string, delayMillis int) {
	r.send(protocol.MsgScroll, protocol.Scroll{Text: text, DelayMillis: delayMillis})
}

// FlushFrame mirrors the framebuffer to the client if it changed since the
// last flush. The network layer calls this at protocol.FrameHz.
func (r *Remote) FlushFrame() {
	r.mu.Lock()
	if !r.dirty {
		r.mu.Unlock()
		return
	}
	frame := protocol.Frame{Pixels: r.fb}
	r.dirty = false
	r.mu.Unlock()

	r.send(protocol.MsgFrame, frame)
}

// Send failures are ignored here; a broken connection surfaces on the read
// side, which tears the session down.
func (r *Remote) send(t string, payload any) {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("encode %s: %v", t, err)
		return
	}
	_ = r.conn.Send(b)
}
