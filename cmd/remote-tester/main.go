// Remote tester - feeds scripted gaze samples into a running navigaze server.
//
// Connects to /ws/ingest and replays a synthetic session in real time, so the
// full server pipeline (decoders, dashboard broadcast, session recording) can
// be exercised from another machine without a camera.
package main

import (
	"flag"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Paddy-93/Navigaze/internal/config"
	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/gaze"
	"github.com/Paddy-93/Navigaze/pkg/morse"
	"github.com/Paddy-93/Navigaze/pkg/protocol"
)

const framePeriod = 33 * time.Millisecond

// segment holds one gaze position for a number of frames.
type segment struct {
	position float64
	frames   int
}

func holdFrames(d time.Duration) int {
	return int(d/framePeriod) + 2
}

func main() {
	url := flag.String("url", "ws://localhost:8080/ws/ingest", "ingest endpoint")
	flag.Parse()

	log.Init(config.LogLevel())

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		log.Error("dial failed", "url", *url, "error", err)
		return
	}
	defer conn.Close()
	log.Info("connected", "url", *url)

	// Drain server replies; pongs are logged for a latency check.
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			msg, err := protocol.ParseMessage(data)
			if err != nil || msg.Type != protocol.TypePong {
				continue
			}
			if pong, err := msg.GetPongData(); err == nil {
				log.Info("pong", "latency_ms", pong.LatencyMs)
			}
		}
	}()

	ping, err := protocol.NewPingMessage("remote-tester")
	if err == nil {
		if data, err := ping.Bytes(); err == nil {
			conn.WriteMessage(websocket.TextMessage, data)
		}
	}

	const baseline = 0.5
	gazeCfg := gaze.DefaultConfig()
	morseCfg := morse.DefaultConfig()

	// Calibrate, then spell "I" and submit it.
	script := []segment{
		{baseline, gazeCfg.BaselineSamples + holdFrames(gazeCfg.StabilizeWindow)},
		{baseline - 0.02, 3},
		{baseline, 6},
		{baseline - 0.02, 3},
		{baseline, holdFrames(morseCfg.NeutralHoldTime) + holdFrames(morseCfg.SubmitHoldTime)},
	}

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	var frameID uint64
	for _, seg := range script {
		for i := 0; i < seg.frames; i++ {
			<-ticker.C
			frameID++

			msg, err := protocol.NewSampleMessage(seg.position, false, false, frameID)
			if err != nil {
				continue
			}
			data, err := msg.Bytes()
			if err != nil {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error("write failed", "error", err)
				return
			}
		}
	}

	log.Info("script finished", "frames", frameID)
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
