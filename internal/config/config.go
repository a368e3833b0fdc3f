package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Settings holds the visualiser configuration
type Settings struct {
	mu sync.RWMutex

	windowWidth  int
	windowHeight int
	fpsLimit     int

	ipd              float32 // metres between the eyes
	fov              float32 // vertical field of view in degrees
	mouseSensitivity float32

	cubeCount      int
	objectDistance float32
	floorDepth     float32
	spherify       bool
	stereo         bool
	gridLines      bool

	audioSource string // "synthetic" or path to a capture file
	recordPath  string
	logLevel    string
}

// SyntheticAudio selects the built-in capture generator as the audio source.
const SyntheticAudio = "synthetic"

func (s *Settings) setDefaults() {
	s.windowWidth = 1280
	s.windowHeight = 720
	s.fpsLimit = 90
	s.ipd = 0.064
	s.fov = 90
	s.mouseSensitivity = 0.1
	s.cubeCount = 10
	s.objectDistance = 3.5
	s.floorDepth = 20
	s.spherify = false
	s.stereo = true
	s.gridLines = true
	s.audioSource = SyntheticAudio
	s.recordPath = ""
	s.logLevel = "info"
}

var global = func() *Settings {
	s := &Settings{}
	s.setDefaults()
	return s
}()

const envPrefix = "VRS_"

// Load reads an optional dotenv file and applies its VRS_* variables on top
// of the current settings. Variables already set in the process environment
// win over the file. A missing file is not an error.
func Load(path string) error {
	env := make(map[string]string)
	if path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return LoadMap(env)
}

// LoadMap applies VRS_* settings from an env map, as returned by godotenv.
// Unknown keys are ignored.
func LoadMap(env map[string]string) error {
	return apply(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
}

func apply(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		set func(int)
	}{
		{"VRS_WINDOW_WIDTH", func(v int) { setInt(&global.windowWidth, v, 320, 7680) }},
		{"VRS_WINDOW_HEIGHT", func(v int) { setInt(&global.windowHeight, v, 240, 4320) }},
		{"VRS_FPS_LIMIT", SetFPSLimit},
		{"VRS_CUBE_COUNT", SetCubeCount},
	}
	for _, e := range ints {
		raw, ok := lookup(e.key)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		e.set(v)
	}

	floats := []struct {
		key string
		set func(float32)
	}{
		{"VRS_IPD", SetIPD},
		{"VRS_FOV", SetFOV},
		{"VRS_MOUSE_SENSITIVITY", SetMouseSensitivity},
		{"VRS_OBJECT_DISTANCE", func(v float32) { setFloat(&global.objectDistance, v, 0.1, 50) }},
		{"VRS_FLOOR_DEPTH", func(v float32) { setFloat(&global.floorDepth, v, 0, 90) }},
	}
	for _, e := range floats {
		raw, ok := lookup(e.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		// ParseFloat accepts NaN and Inf, which no clamp can repair.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %q is not a finite number", e.key, raw)
		}
		e.set(float32(v))
	}

	bools := []struct {
		key string
		set func(bool)
	}{
		{"VRS_SPHERIFY", SetSpherify},
		{"VRS_STEREO", SetStereo},
		{"VRS_GRID_LINES", SetGridLines},
	}
	for _, e := range bools {
		raw, ok := lookup(e.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		e.set(v)
	}

	if raw, ok := lookup("VRS_AUDIO_SOURCE"); ok && raw != "" {
		setString(&global.audioSource, raw)
	}
	if raw, ok := lookup("VRS_RECORD_PATH"); ok {
		setString(&global.recordPath, raw)
	}
	if raw, ok := lookup("VRS_LOG_LEVEL"); ok && raw != "" {
		setString(&global.logLevel, strings.ToLower(raw))
	}
	return nil
}

func setInt(dst *int, v, lo, hi int) {
	global.mu.Lock()
	defer global.mu.Unlock()
	*dst = clampInt(v, lo, hi)
}

func setFloat(dst *float32, v, lo, hi float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	*dst = clampFloat(v, lo, hi)
}

func setString(dst *string, v string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	*dst = v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float32) float32 {
	if math.IsNaN(float64(v)) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetWindowSize returns the initial window size in pixels
func GetWindowSize() (int, int) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.windowWidth, global.windowHeight
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	setInt(&global.fpsLimit, limit, 0, 1000)
}

// GetIPD returns the interpupillary distance in metres
func GetIPD() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.ipd
}

// SetIPD sets the interpupillary distance
func SetIPD(ipd float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.ipd = clampFloat(ipd, 0, 0.1)
}

// GetFOV returns the per-eye vertical field of view in degrees
func GetFOV() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fov
}

// SetFOV sets the per-eye vertical field of view
func SetFOV(fov float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fov = clampFloat(fov, 30, 120)
}

// GetMouseSensitivity returns degrees of head rotation per pixel of cursor travel
func GetMouseSensitivity() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.mouseSensitivity
}

// SetMouseSensitivity sets the mouse-look sensitivity
func SetMouseSensitivity(s float32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.mouseSensitivity = clampFloat(s, 0.01, 2)
}

// GetCubeCount returns how many cubes are stacked in front of the user
func GetCubeCount() int {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.cubeCount
}

// SetCubeCount sets how many cubes are stacked
func SetCubeCount(n int) {
	setInt(&global.cubeCount, n, 0, 64)
}

// GetObjectDistance returns the distance unit used to place the cube column
func GetObjectDistance() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.objectDistance
}

// GetFloorDepth returns how far below the viewer the floor sits
func GetFloorDepth() float32 {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.floorDepth
}

// GetSpherify reports whether the EQ grid is projected onto a sphere
func GetSpherify() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.spherify
}

// SetSpherify toggles the sphere projection of the EQ grid
func SetSpherify(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.spherify = enabled
}

// GetStereo reports whether the window is split into two eye viewports
func GetStereo() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.stereo
}

// SetStereo toggles the side-by-side eye split
func SetStereo(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.stereo = enabled
}

// GetGridLines reports whether the floor is drawn with grid lines
func GetGridLines() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.gridLines
}

// SetGridLines toggles the grid fragment shader
func SetGridLines(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.gridLines = enabled
}

// GetAudioSource returns SyntheticAudio or a capture file path
func GetAudioSource() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.audioSource
}

// GetRecordPath returns where incoming audio frames are recorded, or ""
func GetRecordPath() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.recordPath
}

// GetLogLevel returns the logrus level name
func GetLogLevel() string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logLevel
}
