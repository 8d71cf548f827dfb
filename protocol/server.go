package protocol

// Messages going out to the sensor client.

type Welcome struct {
	DeviceID string `json:"deviceId"`
	TickHz   int    `json:"tickHz"`
}

// Frame is one full refresh of the 5x5 matrix, row-major from the top-left,
// brightness 0..9 per cell.
type Frame struct {
	Pixels [25]int `json:"pixels"`
}

// Scroll asks the client to show scrolling text, the way the device itself
// would.
type Scroll struct {
	Text        string `json:"text"`
	DelayMillis int    `json:"delayMs"`
}

// Calibrate asks the client to calibrate its compass and reply with
// MsgCalibrated when done.
type Calibrate struct{}
