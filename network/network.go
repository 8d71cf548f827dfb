package network

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"pickup/device"
	"pickup/game"
	"pickup/protocol"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 25 * time.Second
)

// Server turns each websocket connection into an independent handheld: the
// client streams sensor samples in, the server runs that device's game and
// mirrors the matrix back out. Sessions never share game state; a dropped
// connection is the device's power going out.
type Server struct {
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*device.Remote
	nextID   int
}

func NewServer(allowedOrigin string) *Server {
	s := &Server{sessions: make(map[string]*device.Remote)}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			// Empty origin config allows all, for dev. Set
			// PICKUP_ALLOWED_ORIGIN to lock this down in prod.
			return allowedOrigin == "" || r.Header.Get("Origin") == allowedOrigin
		},
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// NumDevices returns how many devices are currently connected.
func (s *Server) NumDevices() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// wsConn serializes writes; gorilla permits only one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	conn.SetReadLimit(1 << 16)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	hello, err := readHello(conn)
	if err != nil {
		log.Println("hello:", err)
		_ = conn.Close()
		return
	}

	wc := &wsConn{conn: conn}
	remote := device.NewRemote(wc, hello)
	id := s.register(remote)
	defer s.unregister(id)

	if b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		DeviceID: id,
		TickHz:   protocol.TickHz,
	}); err == nil {
		_ = wc.Send(b)
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	g := game.New(game.Device{
		Display: remote,
		Compass: remote,
		Accel:   remote,
		Buttons: remote,
		Clock:   device.NewClock(),
	}, nil)
	go g.Run(ctx)
	go frameLoop(ctx, remote)
	go pingLoop(ctx, conn)

	log.Printf("device %s connected (%q)", id, hello.Name)
	s.readPump(conn, remote)
	log.Printf("device %s disconnected", id)

	cancel()
	remote.Close()
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, fmt.Errorf("first message type %q, want %q", env.T, protocol.MsgHello)
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

func (s *Server) readPump(conn *websocket.Conn, remote *device.Remote) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("decode:", err)
			continue
		}
		switch env.T {
		case protocol.MsgSensors:
			sample, err := protocol.DecodePayload[protocol.Sensors](env)
			if err != nil {
				log.Println("sensors:", err)
				continue
			}
			remote.HandleSensors(sample)
		case protocol.MsgCalibrated:
			remote.HandleCalibrated()
		}
	}
}

// frameLoop mirrors the matrix to the client at the frame rate.
func frameLoop(ctx context.Context, remote *device.Remote) {
	ticker := time.NewTicker(time.Second / protocol.FrameHz)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remote.FlushFrame()
		}
	}
}

func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func (s *Server) register(remote *device.Remote) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("d%d", s.nextID)
	s.sessions[id] = remote
	return id
}

func (s *Server) unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
