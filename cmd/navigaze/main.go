// Navigaze - hands-free text entry and navigation from vertical eye gestures.
//
// Captures webcam frames, decodes gaze events, and serves the dashboard.
// Remote feeders can push samples to /ws/ingest instead of the camera.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"github.com/Paddy-93/Navigaze/internal/config"
	"github.com/Paddy-93/Navigaze/internal/log"
	"github.com/Paddy-93/Navigaze/pkg/protocol"
	"github.com/Paddy-93/Navigaze/pkg/session"
	"github.com/Paddy-93/Navigaze/pkg/vision"
	"github.com/Paddy-93/Navigaze/pkg/web"
)

// framePeriod paces the capture loop at roughly 30 Hz.
const framePeriod = 33 * time.Millisecond

func main() {
	log.Init(config.LogLevel())

	recorder := session.NewRecorder()
	server := web.NewServer(config.Port(), recorder)
	pipe := newPipeline(server, recorder)
	log.Info("session started", "id", recorder.ID())

	server.OnRemoteSample = func(s protocol.SampleData) {
		pipe.Tick(s.Position, s.HeadMoving, s.Blinking)
	}
	server.StartAsync()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		if err := captureLoop(pipe, done); err != nil {
			log.Warn("camera unavailable, serving remote ingest only", "error", err)
			<-done
		}
	}()

	<-stop
	close(done)
	log.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		log.Error("shutdown error", "error", err)
	}
}

// captureLoop reads webcam frames and feeds samples into the pipeline.
func captureLoop(pipe *pipeline, done <-chan struct{}) error {
	cam, err := gocv.OpenVideoCapture(config.CameraIndex())
	if err != nil {
		return err
	}
	defer cam.Close()

	detector, err := vision.NewYuNet(vision.Config{
		ModelPath:        config.ModelPath(),
		ConfidenceThresh: vision.DefaultConfig().ConfidenceThresh,
		InputWidth:       vision.DefaultConfig().InputWidth,
		InputHeight:      vision.DefaultConfig().InputHeight,
	})
	if err != nil {
		return err
	}
	defer detector.Close()

	sampler := vision.NewSampler(vision.DefaultSamplerConfig())
	headMotion := vision.NewHeadMotionDetector(vision.DefaultHeadMotionConfig())

	log.Info("capture loop running", "camera", config.CameraIndex())

	img := gocv.NewMat()
	defer img.Close()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case <-ticker.C:
		}

		if ok := cam.Read(&img); !ok || img.Empty() {
			pipe.Idle()
			continue
		}

		buf, err := gocv.IMEncode(".jpg", img)
		if err != nil {
			log.Debug("frame encode failed", "error", err)
			pipe.Idle()
			continue
		}
		dets, err := detector.Detect(buf.GetBytes())
		buf.Close()
		if err != nil {
			log.Debug("detection failed", "error", err)
			pipe.Idle()
			continue
		}

		sample := sampler.Sample(dets)
		if !sample.OK {
			headMotion.Reset()
			pipe.Idle()
			continue
		}

		moving := false
		if best := vision.SelectBest(dets); best != nil {
			moving = headMotion.Update(*best)
		}

		pipe.Tick(sample.Position, moving, sample.Blinking)
	}
}
