package protocol

// =============================================================================
// Helper functions for creating messages
// =============================================================================

// NewSampleMessage creates a raw sample message
func NewSampleMessage(position float64, headMoving, blinking bool, frameID uint64) (*Message, error) {
	return NewMessage(TypeSample, SampleData{
		Position:   position,
		HeadMoving: headMoving,
		Blinking:   blinking,
		FrameID:    frameID,
	})
}

// NewGazeMessage creates a decoded gaze event message
func NewGazeMessage(data GazeEventData) (*Message, error) {
	return NewMessage(TypeGaze, data)
}

// NewMorseMessage creates a morse state message
func NewMorseMessage(buffer, text, submitted string) (*Message, error) {
	return NewMessage(TypeMorse, MorseStateData{
		Buffer:    buffer,
		Text:      text,
		Submitted: submitted,
	})
}

// NewGestureMessage creates a sequence matcher result message
func NewGestureMessage(status, name string, partial []string) (*Message, error) {
	return NewMessage(TypeGesture, GestureData{
		Status:  status,
		Name:    name,
		Partial: partial,
	})
}

// NewModeMessage creates a command mode change message
func NewModeMessage(mode string) (*Message, error) {
	return NewMessage(TypeMode, ModeData{Mode: mode})
}

// NewSessionMessage creates a session summary message
func NewSessionMessage(data SessionSummaryData) (*Message, error) {
	return NewMessage(TypeSession, data)
}

// NewPingMessage creates a ping message
func NewPingMessage(id string) (*Message, error) {
	return NewMessage(TypePing, PingData{
		ID:        id,
		Timestamp: 0, // Will be set by NewMessage
	})
}

// NewPongMessage creates a pong response message
func NewPongMessage(id string, pingTS, pongTS int64) (*Message, error) {
	return NewMessage(TypePong, PongData{
		ID:        id,
		PingTS:    pingTS,
		PongTS:    pongTS,
		LatencyMs: pongTS - pingTS,
	})
}

// =============================================================================
// Helper functions for parsing messages
// =============================================================================

// GetSampleData extracts sample data from a message
func (m *Message) GetSampleData() (*SampleData, error) {
	var data SampleData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetGazeEventData extracts gaze event data from a message
func (m *Message) GetGazeEventData() (*GazeEventData, error) {
	var data GazeEventData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetMorseStateData extracts morse state from a message
func (m *Message) GetMorseStateData() (*MorseStateData, error) {
	var data MorseStateData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetGestureData extracts gesture data from a message
func (m *Message) GetGestureData() (*GestureData, error) {
	var data GestureData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetModeData extracts mode data from a message
func (m *Message) GetModeData() (*ModeData, error) {
	var data ModeData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetSessionSummaryData extracts a session summary from a message
func (m *Message) GetSessionSummaryData() (*SessionSummaryData, error) {
	var data SessionSummaryData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPingData extracts ping data from a message
func (m *Message) GetPingData() (*PingData, error) {
	var data PingData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPongData extracts pong data from a message
func (m *Message) GetPongData() (*PongData, error) {
	var data PongData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
