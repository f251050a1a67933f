// Package config provides configuration helpers for navigaze commands.
package config

import (
	"os"
	"strconv"
)

// Defaults for process-level settings.
const (
	DefaultPort        = "8080"
	DefaultCameraIndex = 0
	DefaultModelPath   = "models/face_detection_yunet.onnx"
)

// Port returns the dashboard port from NAVIGAZE_PORT.
func Port() string {
	if p := os.Getenv("NAVIGAZE_PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// CameraIndex returns the webcam device index from NAVIGAZE_CAMERA.
func CameraIndex() int {
	if v := os.Getenv("NAVIGAZE_CAMERA"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			return idx
		}
	}
	return DefaultCameraIndex
}

// ModelPath returns the YuNet model path from NAVIGAZE_MODEL.
func ModelPath() string {
	if p := os.Getenv("NAVIGAZE_MODEL"); p != "" {
		return p
	}
	return DefaultModelPath
}

// LogLevel returns the log level from NAVIGAZE_LOG_LEVEL.
func LogLevel() string {
	if l := os.Getenv("NAVIGAZE_LOG_LEVEL"); l != "" {
		return l
	}
	return "info"
}
