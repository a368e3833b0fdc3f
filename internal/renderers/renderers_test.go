package renderers

import (
	"testing"

	"vrsualiser/internal/graphics"
	"vrsualiser/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBinLevel(t *testing.T) {
	tests := []struct {
		name   string
		re, im int8
		want   float32
	}{
		{"silence clamps to half", 0, 0, 0.5},
		{"unit magnitude", 1, 0, 0},
		{"magnitude 10", 3, 1, 0.5},
		{"magnitude 100 reaches full", 6, 8, 1},
		{"loud bin saturates", 100, -100, 1},
		{"negative parts square positive", -3, -1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BinLevel(tt.re, tt.im); !mgl32.FloatEqualThreshold(got, tt.want, 1e-6) {
				t.Errorf("BinLevel(%d, %d) = %v, want %v", tt.re, tt.im, got, tt.want)
			}
		})
	}
}

func TestFaceLevels(t *testing.T) {
	// Four faces over eight bytes: stride 2, face i reads bytes 2i and 2i+1.
	fft := []byte{0, 0, 100, 100, 1, 0, 3, 1}
	got := FaceLevels(fft, 4)
	want := []float32{0.5, 1, 0, 0.5}
	for i := range want {
		if !mgl32.FloatEqualThreshold(got[i], want[i], 1e-6) {
			t.Errorf("face %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFaceLevelsShortCapture(t *testing.T) {
	// Fewer bytes than faces: stride is 0 so every face reads the first pair.
	got := FaceLevels([]byte{100, 100}, 5)
	for i, l := range got {
		if l != 1 {
			t.Errorf("face %d = %v, want 1", i, l)
		}
	}

	// Uneven division reads past the end; those bytes count as silence.
	got = FaceLevels([]byte{100, 100, 100}, 3)
	if got[2] != 1 {
		t.Errorf("last face = %v, want 1 from the single in-range byte", got[2])
	}
	if got := FaceLevels(nil, 2); got[0] != 0.5 || got[1] != 0.5 {
		t.Errorf("empty capture = %v", got)
	}
	if got := FaceLevels([]byte{1, 2}, 0); len(got) != 0 {
		t.Errorf("zero faces = %v", got)
	}
}

func TestEQRendererBuildsGrid(t *testing.T) {
	s := scene.New(graphics.RenderParams{})
	eq := NewEQRenderer(s, 1, mgl32.Vec3{0, 0, -6}, 2, false)

	if got := len(eq.Faces()); got != 48 {
		t.Fatalf("faces = %d, want 48", got)
	}
	if s.Len() != 48 {
		t.Fatalf("scene items = %d, want 48", s.Len())
	}

	// Every vertex lies on the surface of the unit box.
	for i, f := range eq.Faces() {
		for _, v := range f.Vertices() {
			onSurface := false
			for k := 0; k < 3; k++ {
				if v[k] == 1 || v[k] == -1 {
					onSurface = true
				}
			}
			if !onSurface {
				t.Fatalf("face %d vertex %v is inside the box", i, v)
			}
		}
	}

	want := mgl32.Translate3D(0, 0, -6).Mul4(mgl32.Scale3D(2, 2, 2))
	if got := s.ModelOf(eq.Faces()[0]); !got.ApproxEqual(want) {
		t.Errorf("face model = %v", got)
	}
}

func TestEQRendererUpdateFFT(t *testing.T) {
	s := scene.New(graphics.RenderParams{})
	eq := NewEQRenderer(s, 1, mgl32.Vec3{}, 1, false)

	fft := make([]byte, 1024) // Android visualiser capture size
	stride := len(fft) / len(eq.Faces())
	fft[stride*3] = 100
	fft[stride*3+1] = 100

	eq.UpdateFFT(fft)

	if got := eq.Faces()[3].Color(); got != (mgl32.Vec4{0, 1, 1, 1}) {
		t.Errorf("loud face colour = %v", got)
	}
	if got := eq.Faces()[0].Color(); got != (mgl32.Vec4{0, 0.5, 0.5, 1}) {
		t.Errorf("silent face colour = %v", got)
	}
	if len(eq.FFT()) != len(fft) {
		t.Errorf("capture not stored")
	}

	eq.UpdateWave([]byte{1, 2, 3})
	if len(eq.Wave()) != 3 {
		t.Errorf("wave not stored")
	}
}

func TestSpherify(t *testing.T) {
	tests := []mgl32.Vec3{
		{1, 0, 0},
		{0, -1, 0},
		{1, 1, 1},
		{-1, 0.5, 1},
		{0.3, 1, -0.7},
	}
	for _, v := range tests {
		got := Spherify(v)
		if !mgl32.FloatEqualThreshold(got.Len(), 1, 1e-5) {
			t.Errorf("Spherify(%v) = %v, length %v", v, got, got.Len())
		}
	}
	if got := Spherify(mgl32.Vec3{1, 0, 0}); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("face centre should stay put, got %v", got)
	}
}

func TestEQRendererSpherified(t *testing.T) {
	s := scene.New(graphics.RenderParams{})
	eq := NewEQRenderer(s, 1, mgl32.Vec3{}, 1, true)
	for _, f := range eq.Faces() {
		for _, v := range f.Vertices() {
			if !mgl32.FloatEqualThreshold(v.Len(), 1, 1e-5) {
				t.Fatalf("vertex %v not on the sphere", v)
			}
		}
	}
}

func TestEQRendererSpherifyToggle(t *testing.T) {
	s := scene.New(graphics.RenderParams{})
	eq := NewEQRenderer(s, 1, mgl32.Vec3{}, 1, false)
	flat := eq.Faces()[5].Vertices()

	eq.SetSpherify(true)
	if !eq.Spherified() {
		t.Fatal("Spherified() = false after SetSpherify(true)")
	}
	for _, v := range eq.Faces()[5].Vertices() {
		if !mgl32.FloatEqualThreshold(v.Len(), 1, 1e-5) {
			t.Errorf("vertex %v not on the sphere", v)
		}
	}

	eq.SetSpherify(false)
	if got := eq.Faces()[5].Vertices(); got != flat {
		t.Errorf("vertices after switching back = %v, want %v", got, flat)
	}
}
