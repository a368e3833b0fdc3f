// Package renderers contains audio visualisers that drive scene items from
// waveform and FFT captures.
package renderers

import (
	"vrsualiser/internal/scene"
)

// Visualiser reacts to audio captures and draws itself into a scene
type Visualiser interface {
	UpdateWave(wave []byte)
	UpdateFFT(fft []byte)
	Render()
}

// Base keeps the latest captures and redraws the scene it was given.
type Base struct {
	Scene *scene.Scene

	wave []byte
	fft  []byte
}

// NewBase returns a Base drawing into s.
func NewBase(s *scene.Scene) Base {
	return Base{Scene: s}
}

// UpdateWave stores a copy of the waveform capture.
func (b *Base) UpdateWave(wave []byte) {
	b.wave = append(b.wave[:0], wave...)
}

// UpdateFFT stores a copy of the FFT capture.
func (b *Base) UpdateFFT(fft []byte) {
	b.fft = append(b.fft[:0], fft...)
}

// Wave returns the last waveform capture.
func (b *Base) Wave() []byte { return b.wave }

// FFT returns the last FFT capture.
func (b *Base) FFT() []byte { return b.fft }

// Render draws every visible item in the scene.
func (b *Base) Render() {
	b.Scene.Redraw()
}
