package protocol

import "encoding/json"

// Message types. The client is a remote sensor head (a phone browser
// streaming compass/motion data); the server runs the game and mirrors the
// LED matrix back.
const (
	MsgHello      = "hello"
	MsgSensors    = "sensors"
	MsgCalibrated = "calibrated"

	MsgWelcome   = "welcome"
	MsgFrame     = "frame"
	MsgScroll    = "scroll"
	MsgCalibrate = "calibrate"
)

const (
	TickHz   = 10 // game loop pacing on the server
	FrameHz  = 20 // matrix mirror rate to the client
	SensorHz = 20 // suggested client streaming rate
)

// Envelope wraps every message with its type tag.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
