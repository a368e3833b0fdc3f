// Package audio supplies waveform and FFT captures to the visualiser. The
// bytes follow the Android Visualizer layout: 8-bit unsigned PCM for the
// waveform and interleaved signed 8-bit real/imaginary pairs for the FFT.
package audio

import "errors"

// CaptureSize matches the default Android Visualizer capture size.
const CaptureSize = 1024

// Capture is one frame of audio data.
type Capture struct {
	Wave []byte
	FFT  []byte
}

// Source produces one capture per rendered frame
type Source interface {
	Next() (Capture, error)
	Close() error
}

var ErrFormat = errors.New("audio: not a capture file")
