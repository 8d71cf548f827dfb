package protocol

// Messages coming in from the sensor client.

type Hello struct {
	V          int    `json:"v"`                    // protocol version
	Name       string `json:"name,omitempty"`       // optional device name
	Calibrated bool   `json:"calibrated,omitempty"` // compass already calibrated
}

// Sensors is the latest sample set. Buttons carry press events seen since
// the previous message, not level state.
type Sensors struct {
	Heading float64 `json:"heading"` // degrees, 0 = north, clockwise, [0,360)
	Ax      int     `json:"ax"`      // milli-g
	Ay      int     `json:"ay"`
	Az      int     `json:"az"`
	A       bool    `json:"a,omitempty"` // button A pressed since last message
	B       bool    `json:"b,omitempty"`
}

// Calibrated acknowledges a calibrate request once the client has finished
// its figure-eight dance.
type Calibrated struct{}
