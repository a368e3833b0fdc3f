package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/pierrec/lz4"
	log "github.com/sirupsen/logrus"
)

// Capture files are an lz4 frame wrapping a magic header followed by
// length-prefixed captures: u16 wave length, wave, u16 fft length, fft.
var captureMagic = [5]byte{'V', 'R', 'S', 'C', 1}

const maxCaptureLen = math.MaxUint16

// Recorder writes captures to an lz4-compressed file. Close may be called from
// a signal handler while the render loop is still writing.
type Recorder struct {
	mu     sync.Mutex
	file   *os.File
	writer *lz4.Writer
	frames int
}

// NewRecorder creates (or truncates) path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create capture file: %w", err)
	}
	w := lz4.NewWriter(f)
	if _, err := w.Write(captureMagic[:]); err != nil {
		f.Close()
		return nil, fmt.Errorf("write capture header: %w", err)
	}
	return &Recorder{file: f, writer: w}, nil
}

// Write appends one capture.
func (r *Recorder) Write(c Capture) error {
	frame, err := encodeCapture(c)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writer == nil {
		return os.ErrClosed
	}
	if _, err := r.writer.Write(frame); err != nil {
		return err
	}
	r.frames++
	return nil
}

func encodeCapture(c Capture) ([]byte, error) {
	if len(c.Wave) > maxCaptureLen || len(c.FFT) > maxCaptureLen {
		return nil, fmt.Errorf("capture too large: wave %d fft %d", len(c.Wave), len(c.FFT))
	}
	var buf bytes.Buffer
	buf.Grow(4 + len(c.Wave) + len(c.FFT))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(c.Wave)))
	buf.Write(c.Wave)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(c.FFT)))
	buf.Write(c.FFT)
	return buf.Bytes(), nil
}

// Frames returns how many captures were written.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Close flushes the lz4 stream and closes the file. Calling it twice is fine.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writer == nil {
		return nil
	}
	werr := r.writer.Close()
	ferr := r.file.Close()
	r.writer, r.file = nil, nil
	return errors.Join(werr, ferr)
}

// Replay plays back a capture file, starting over at the end.
type Replay struct {
	file   *os.File
	reader io.Reader
	frames int // frames read since the last rewind
}

// OpenReplay opens a file written by Recorder.
func OpenReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture file: %w", err)
	}
	r := &Replay{file: f}
	if err := r.rewind(); err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

func (r *Replay) rewind() error {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.reader = lz4.NewReader(r.file)
	r.frames = 0

	var magic [len(captureMagic)]byte
	if _, err := io.ReadFull(r.reader, magic[:]); err != nil || magic != captureMagic {
		return ErrFormat
	}
	return nil
}

// Next returns the next capture. At the end of the file playback loops; a file
// with no complete captures returns io.EOF. A capture cut short at the end of
// the file, as left by an interrupted recording, counts as the end.
func (r *Replay) Next() (Capture, error) {
	c, err := readCapture(r.reader)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		if r.frames == 0 {
			return Capture{}, io.EOF
		}
		if err := r.rewind(); err != nil {
			return Capture{}, err
		}
		c, err = readCapture(r.reader)
	}
	if err != nil {
		return Capture{}, err
	}
	r.frames++
	return c, nil
}

// Close closes the capture file.
func (r *Replay) Close() error {
	return r.file.Close()
}

func readCapture(rd io.Reader) (Capture, error) {
	wave, err := readChunk(rd)
	if err != nil {
		return Capture{}, err
	}
	fft, err := readChunk(rd)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Capture{}, err
	}
	return Capture{Wave: wave, FFT: fft}, nil
}

func readChunk(rd io.Reader) ([]byte, error) {
	var n uint16
	if err := binary.Read(rd, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(rd, out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return out, nil
}

// Tee records every capture a source produces. A failing recorder is
// dropped with a warning; the source keeps playing.
type Tee struct {
	source   Source
	recorder *Recorder
	failed   bool
}

// NewTee wraps src so that every capture is also written to rec.
func NewTee(src Source, rec *Recorder) *Tee {
	return &Tee{source: src, recorder: rec}
}

// Next returns the next capture from the source and records it.
func (t *Tee) Next() (Capture, error) {
	c, err := t.source.Next()
	if err != nil || t.failed {
		return c, err
	}
	if err := t.recorder.Write(c); err != nil {
		log.WithError(err).WithField("frames", t.recorder.Frames()).Warn("recording stopped")
		t.failed = true
	}
	return c, nil
}

// Close closes the recorder and the underlying source.
func (t *Tee) Close() error {
	return errors.Join(t.recorder.Close(), t.source.Close())
}
