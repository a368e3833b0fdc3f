package audio

import (
	"math"
	"math/rand"
)

// SyntheticSource generates captures with a few bright peaks that drift across
// the spectrum, so the visualiser has something to show without a microphone.
type SyntheticSource struct {
	size  int
	frame int
	rng   *rand.Rand
}

// NewSyntheticSource returns a deterministic source for the given seed.
func NewSyntheticSource(size int, seed int64) *SyntheticSource {
	if size <= 0 {
		size = CaptureSize
	}
	return &SyntheticSource{size: size, rng: rand.New(rand.NewSource(seed))}
}

func (s *SyntheticSource) Next() (Capture, error) {
	t := float64(s.frame) / 60
	s.frame++

	wave := make([]byte, s.size)
	for i := range wave {
		v := 0.6*math.Sin(2*math.Pi*(float64(i)/64+t)) + 0.3*math.Sin(2*math.Pi*(float64(i)/17-t*0.5))
		wave[i] = byte(128 + 127*clamp(v, -1, 1))
	}

	bins := s.size / 2
	peaks := [...]float64{
		float64(bins) * (0.5 + 0.45*math.Sin(t*0.7)),
		float64(bins) * (0.5 + 0.45*math.Sin(t*1.3+2)),
		float64(bins) * (0.5 + 0.45*math.Sin(t*0.31+4)),
	}
	width := float64(bins) / 16

	fft := make([]byte, s.size)
	for k := 0; k < bins; k++ {
		amp := 2.0 // noise floor
		for _, c := range peaks {
			d := (float64(k) - c) / width
			amp += 110 * math.Exp(-d*d)
		}
		phase := s.rng.Float64() * 2 * math.Pi
		re := clamp(amp*math.Cos(phase), -127, 127)
		im := clamp(amp*math.Sin(phase), -127, 127)
		fft[2*k] = byte(int8(re))
		fft[2*k+1] = byte(int8(im))
	}

	return Capture{Wave: wave, FFT: fft}, nil
}

func (s *SyntheticSource) Close() error { return nil }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
