package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
)

// useDefaults restores the built-in settings for the test and afterwards.
func useDefaults(t *testing.T) {
	t.Helper()
	restore := func() {
		global.mu.Lock()
		defer global.mu.Unlock()
		global.setDefaults()
	}
	restore()
	t.Cleanup(restore)
}

func TestDefaults(t *testing.T) {
	useDefaults(t)
	if got := GetCubeCount(); got != 10 {
		t.Errorf("cube count = %d, want 10", got)
	}
	if got := GetAudioSource(); got != SyntheticAudio {
		t.Errorf("audio source = %q, want %q", got, SyntheticAudio)
	}
	if w, h := GetWindowSize(); w != 1280 || h != 720 {
		t.Errorf("window = %dx%d, want 1280x720", w, h)
	}
}

func TestLoadMapClamps(t *testing.T) {
	useDefaults(t)

	env, err := godotenv.Unmarshal("VRS_FOV=200\nVRS_CUBE_COUNT=-3\nVRS_SPHERIFY=true\nVRS_LOG_LEVEL=DEBUG\nVRS_OBJECT_DISTANCE=-4\nVRS_FLOOR_DEPTH=1e6\n")
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := LoadMap(env); err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	if got := GetFOV(); got != 120 {
		t.Errorf("fov = %v, want clamped 120", got)
	}
	if got := GetCubeCount(); got != 0 {
		t.Errorf("cube count = %d, want clamped 0", got)
	}
	if got := GetObjectDistance(); got != 0.1 {
		t.Errorf("object distance = %v, want clamped 0.1", got)
	}
	if got := GetFloorDepth(); got != 90 {
		t.Errorf("floor depth = %v, want clamped 90", got)
	}
	if !GetSpherify() {
		t.Errorf("spherify should be enabled")
	}
	if got := GetLogLevel(); got != "debug" {
		t.Errorf("log level = %q, want debug", got)
	}
}

func TestLoadMapRejectsGarbage(t *testing.T) {
	useDefaults(t)

	tests := []map[string]string{
		{"VRS_FPS_LIMIT": "fast"},
		{"VRS_IPD": "wide"},
		{"VRS_SPHERIFY": "maybe"},
		{"VRS_FOV": "NaN"},
		{"VRS_IPD": "nan"},
		{"VRS_OBJECT_DISTANCE": "-Inf"},
		{"VRS_FLOOR_DEPTH": "+Inf"},
	}
	for _, env := range tests {
		if err := LoadMap(env); err == nil {
			t.Errorf("LoadMap(%v) returned nil error", env)
		}
	}
	if got := GetFOV(); got != 90 {
		t.Errorf("fov = %v after rejected values, want 90", got)
	}
	if got := GetObjectDistance(); got != 3.5 {
		t.Errorf("object distance = %v after rejected values, want 3.5", got)
	}
}

func TestSettersClampNaN(t *testing.T) {
	useDefaults(t)

	nan := float32(0)
	nan /= nan
	SetFOV(nan)
	SetIPD(nan)
	if got := GetFOV(); got != 30 {
		t.Errorf("fov = %v, want lower bound 30", got)
	}
	if got := GetIPD(); got != 0 {
		t.Errorf("ipd = %v, want lower bound 0", got)
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	useDefaults(t)

	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	useDefaults(t)

	path := filepath.Join(t.TempDir(), "vrs.env")
	if err := os.WriteFile(path, []byte("VRS_FLOOR_DEPTH=12.5\nVRS_CUBE_COUNT=4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Process environment wins over the file.
	t.Setenv("VRS_CUBE_COUNT", "6")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := GetFloorDepth(); got != 12.5 {
		t.Errorf("floor depth = %v, want 12.5", got)
	}
	if got := GetCubeCount(); got != 6 {
		t.Errorf("cube count = %d, want 6 from the environment", got)
	}
}
