// Package protocol defines the WebSocket message types for navigaze
// communication. This package is shared between the capture process, remote
// sample feeders, and dashboard clients.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Feeder → Server messages
	TypeSample MessageType = "sample" // Raw per-frame gaze sample

	// Server → Dashboard messages
	TypeGaze    MessageType = "gaze"    // Decoded gaze event
	TypeMorse   MessageType = "morse"   // Morse decoder state
	TypeGesture MessageType = "gesture" // Sequence matcher result
	TypeMode    MessageType = "mode"    // Command mode change
	TypeSession MessageType = "session" // Session summary snapshot

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// =============================================================================
// Feeder → Server Message Types
// =============================================================================

// SampleData is one raw per-frame sample from a capture or remote feeder.
type SampleData struct {
	Position   float64 `json:"position"` // Normalized vertical pupil position
	HeadMoving bool    `json:"head_moving"`
	Blinking   bool    `json:"blinking"`
	FrameID    uint64  `json:"frame_id,omitempty"`
}

// =============================================================================
// Server → Dashboard Message Types
// =============================================================================

// GazeEventData mirrors one decoded gaze event.
type GazeEventData struct {
	Direction     string  `json:"direction,omitempty"` // "UP", "DOWN", or empty
	Fired         bool    `json:"fired,omitempty"`
	Continuous    bool    `json:"continuous,omitempty"`
	DurationMs    int64   `json:"duration_ms,omitempty"`
	Offset        float64 `json:"offset,omitempty"`
	Velocity      float64 `json:"velocity,omitempty"`
	BaselineReady bool    `json:"baseline_ready"`
	Reason        string  `json:"reason,omitempty"` // Suppression reason tag
}

// MorseStateData is the decoder state after one tick.
type MorseStateData struct {
	Buffer    string `json:"buffer"` // Pending dots and dashes
	Text      string `json:"text"`
	Submitted string `json:"submitted,omitempty"` // Set on the submit tick only
}

// GestureData reports the sequence matcher after one direction was added.
type GestureData struct {
	Status  string   `json:"status"` // "continuing", "completed", "reset"
	Name    string   `json:"name,omitempty"`
	Partial []string `json:"partial,omitempty"`
}

// ModeData announces a command mode change.
type ModeData struct {
	Mode string `json:"mode"` // "TAB", "SCROLL", "PROMPT"
}

// SessionSummaryData is a snapshot of session counters for the dashboard.
type SessionSummaryData struct {
	ID          string   `json:"id"`
	StartedAt   int64    `json:"started_at"` // Unix milliseconds
	UpGazes     int      `json:"up_gazes"`
	DownGazes   int      `json:"down_gazes"`
	Submissions []string `json:"submissions,omitempty"`
	Gestures    []string `json:"gestures,omitempty"`
}

// =============================================================================
// Bidirectional Message Types
// =============================================================================

// PingData contains ping information
type PingData struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"ts"`
}

// PongData contains pong response
type PongData struct {
	ID        string `json:"id"`
	PingTS    int64  `json:"ping_ts"`
	PongTS    int64  `json:"pong_ts"`
	LatencyMs int64  `json:"latency_ms"`
}
