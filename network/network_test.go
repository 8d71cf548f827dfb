package network

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"pickup/protocol"
)

func dialTestServer(t *testing.T, s *Server) (*websocket.Conn, func()) {
	t.Helper()
	ts := httptest.NewServer(s.Handler())
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		_ = conn.Close()
		ts.Close()
	}
}

func send(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", msgType, err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) protocol.Envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env
}

func TestSessionHandshakeAndFrames(t *testing.T) {
	s := NewServer("")
	conn, cleanup := dialTestServer(t, s)
	defer cleanup()

	send(t, conn, protocol.MsgHello, protocol.Hello{V: 1, Name: "test", Calibrated: true})

	env := readEnvelope(t, conn)
	if env.T != protocol.MsgWelcome {
		t.Fatalf("first message = %q, want %q", env.T, protocol.MsgWelcome)
	}
	welcome, err := protocol.DecodePayload[protocol.Welcome](env)
	if err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if welcome.DeviceID == "" || welcome.TickHz != protocol.TickHz {
		t.Fatalf("welcome = %+v, want a device id and tickHz %d", welcome, protocol.TickHz)
	}

	// Keep the device still and wait for the matrix mirror. The player is
	// always drawn at full brightness, and starts at the center.
	send(t, conn, protocol.MsgSensors, protocol.Sensors{Heading: 10, Az: -1000})

	sawIntro := false
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		env := readEnvelope(t, conn)
		switch env.T {
		case protocol.MsgScroll:
			scroll, err := protocol.DecodePayload[protocol.Scroll](env)
			if err != nil {
				t.Fatalf("decode scroll: %v", err)
			}
			if scroll.Text == "WALK TO PICK UP ITEMS." {
				sawIntro = true
			}
		case protocol.MsgFrame:
			frame, err := protocol.DecodePayload[protocol.Frame](env)
			if err != nil {
				t.Fatalf("decode frame: %v", err)
			}
			if got := frame.Pixels[2*5+2]; got != 9 {
				t.Fatalf("center pixel = %d, want the player at 9", got)
			}
			if !sawIntro {
				t.Fatalf("got a frame before the intro scroll")
			}
			return
		}
	}
	t.Fatalf("no frame within deadline")
}

func TestUncalibratedSessionAsksForCalibration(t *testing.T) {
	s := NewServer("")
	conn, cleanup := dialTestServer(t, s)
	defer cleanup()

	send(t, conn, protocol.MsgHello, protocol.Hello{V: 1})

	// welcome first, then the startup calibration request.
	if env := readEnvelope(t, conn); env.T != protocol.MsgWelcome {
		t.Fatalf("first message = %q, want welcome", env.T)
	}
	if env := readEnvelope(t, conn); env.T != protocol.MsgCalibrate {
		t.Fatalf("second message = %q, want calibrate", env.T)
	}

	// The game stays blocked until we acknowledge; after the ack it must
	// reach the intro scroll.
	send(t, conn, protocol.MsgCalibrated, protocol.Calibrated{})

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if env := readEnvelope(t, conn); env.T == protocol.MsgScroll {
			return
		}
	}
	t.Fatalf("no scroll after calibration ack")
}

func TestSessionCountTracksConnections(t *testing.T) {
	s := NewServer("")
	conn, cleanup := dialTestServer(t, s)

	send(t, conn, protocol.MsgHello, protocol.Hello{V: 1, Calibrated: true})
	if env := readEnvelope(t, conn); env.T != protocol.MsgWelcome {
		t.Fatalf("first message = %q, want welcome", env.T)
	}
	if got := s.NumDevices(); got != 1 {
		t.Fatalf("NumDevices = %d, want 1", got)
	}

	cleanup()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.NumDevices() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("session not torn down after disconnect")
}
