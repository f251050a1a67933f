// Package web provides the real-time dashboard and ingest server for navigaze
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/hub"
	"github.com/Paddy-93/Navigaze/pkg/protocol"
	"github.com/Paddy-93/Navigaze/pkg/session"
)

// State is the current decoder state shown on the dashboard
type State struct {
	BaselineReady bool   `json:"baseline_ready"`
	Direction     string `json:"direction,omitempty"`
	Reason        string `json:"reason,omitempty"`
	MorseBuffer   string `json:"morse_buffer"`
	Text          string `json:"text"`
	Mode          string `json:"mode"`
}

// Server is the web dashboard and remote-sample ingest server
type Server struct {
	app  *fiber.App
	port string

	// State
	state   State
	stateMu sync.RWMutex

	// Session recorder, read by /api/session
	recorder *session.Recorder

	// Hub for websocket broadcast (thread-safe!)
	eventsHub *hub.Hub

	// Remote sample callback, invoked for every sample read on /ws/ingest
	OnRemoteSample func(protocol.SampleData)
}

// NewServer creates a new dashboard server
func NewServer(port string, recorder *session.Recorder) *Server {
	s := &Server{
		port:      port,
		recorder:  recorder,
		eventsHub: hub.New("events"),
		state:     State{Mode: "TAB"},
	}

	app := fiber.New(fiber.Config{
		AppName:               "Navigaze Dashboard",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static files
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/status", s.handleStatus)
	api.Get("/session", s.handleSession)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/events", websocket.New(s.handleEventsWS))
	app.Get("/ws/ingest", websocket.New(s.handleIngestWS))

	s.app = app
	return s
}

// Start starts the web server
func (s *Server) Start() error {
	log.Info("dashboard listening", "addr", "http://localhost:"+s.port)

	go s.eventsHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server error", "error", err)
		}
	}()
}

// UpdateState updates the dashboard state
func (s *Server) UpdateState(update func(*State)) {
	s.stateMu.Lock()
	update(&s.state)
	s.stateMu.Unlock()
}

// BroadcastMessage fans a protocol message out to all dashboard clients
func (s *Server) BroadcastMessage(msg *protocol.Message) {
	data, err := msg.Bytes()
	if err != nil {
		log.Error("failed to encode broadcast message", "error", err)
		return
	}
	s.eventsHub.Broadcast(hub.NewJSONMessage(data))
}

// EventsHub returns the events hub for external use
func (s *Server) EventsHub() *hub.Hub {
	return s.eventsHub
}

// Shutdown gracefully stops the web server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
