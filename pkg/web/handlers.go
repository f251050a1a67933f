package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/hub"
	"github.com/Paddy-93/Navigaze/pkg/protocol"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// handleStatus returns the current decoder state
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return c.JSON(s.state)
}

// handleSession returns the session summary
func (s *Server) handleSession(c *fiber.Ctx) error {
	if s.recorder == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "no session recorder configured",
		})
	}
	return c.JSON(s.recorder.Summary())
}

// handleEventsWS streams decoded events to a dashboard client
func (s *Server) handleEventsWS(c *websocket.Conn) {
	client := hub.NewClient(s.eventsHub, c)
	client.Run() // Blocks until the connection closes
}

// handleIngestWS reads raw samples from a remote feeder. Each text frame is
// one protocol message; only sample and ping messages are expected here.
func (s *Server) handleIngestWS(c *websocket.Conn) {
	defer c.Close()
	log.Info("remote feeder connected", "remote", c.RemoteAddr().String())

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			log.Info("remote feeder disconnected", "remote", c.RemoteAddr().String())
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			log.Warn("bad ingest message", "error", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeSample:
			sample, err := msg.GetSampleData()
			if err != nil {
				log.Warn("bad sample payload", "error", err)
				continue
			}
			if s.OnRemoteSample != nil {
				s.OnRemoteSample(*sample)
			}
		case protocol.TypePing:
			ping, err := msg.GetPingData()
			if err != nil {
				continue
			}
			pong, err := protocol.NewPongMessage(ping.ID, msg.Timestamp, nowMillis())
			if err != nil {
				continue
			}
			payload, err := pong.Bytes()
			if err != nil {
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		default:
			log.Debug("ignoring ingest message", "type", string(msg.Type))
		}
	}
}
