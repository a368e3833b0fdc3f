package renderers

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const silentLevel = 0.5

// BinLevel converts one complex FFT bin, given as signed 8-bit real and
// imaginary parts, to a brightness: log10(re²+im²)/2 clamped so that silence
// (or anything below 0) reads 0.5 and loud bins saturate at 1.
func BinLevel(re, im int8) float32 {
	magnitude := float64(re)*float64(re) + float64(im)*float64(im)
	db := float32(math.Log10(magnitude) / 2)
	switch {
	case db < 0: // includes -Inf for a silent bin
		return silentLevel
	case db > 1:
		return 1
	}
	return db
}

// FaceLevels maps an FFT capture onto n faces. Face i reads the bin pair at
// stride*i where stride = len(fft)/n; bytes past the end count as zero.
func FaceLevels(fft []byte, n int) []float32 {
	levels := make([]float32, n)
	if n == 0 {
		return levels
	}
	stride := len(fft) / n
	at := func(i int) int8 {
		if i < len(fft) {
			return int8(fft[i])
		}
		return 0
	}
	for i := range levels {
		levels[i] = BinLevel(at(stride*i), at(stride*i+1))
	}
	return levels
}

// LevelColor is the cyan ramp used for a face at the given level.
func LevelColor(level float32) mgl32.Vec4 {
	return mgl32.Vec4{0, level, level, 1}
}
