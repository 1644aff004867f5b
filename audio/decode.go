package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var ErrUnknownFormat = errors.New("failed to detect audio file format")

// OpenStream detects the format of fp by its magic bytes and decodes it.
// Supported are ogg vorbis, mp3 and wav.
func OpenStream(fp io.ReadSeeker, sampleRate int) (AudioStream[float32], error) {
	var buf [12]byte

	if _, err := io.ReadFull(fp, buf[:]); err != nil {
		return nil, fmt.Errorf("detecting file format: %w", err)
	}

	_, err := fp.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("reset reader: %w", err)
	}

	switch {
	case bytes.Equal([]byte("OggS"), buf[:4]):
		return decodeStream(fp, "vorbis", func(r io.Reader) (ebitenAudioStream, error) {
			return vorbis.DecodeWithSampleRate(sampleRate, r)
		})

	case buf[0] == 0xff && (buf[1] == 0xFB || buf[1] == 0xF3 || buf[1] == 0xF2),
		bytes.Equal([]byte("ID3"), buf[:3]):
		return decodeStream(fp, "mp3", func(r io.Reader) (ebitenAudioStream, error) {
			return mp3.DecodeWithSampleRate(sampleRate, r)
		})

	case bytes.Equal([]byte("RIFF"), buf[0:4]) && bytes.Equal([]byte("WAVE"), buf[8:12]):
		return decodeStream(fp, "wav", func(r io.Reader) (ebitenAudioStream, error) {
			return wav.DecodeWithSampleRate(sampleRate, r)
		})
	}

	return nil, ErrUnknownFormat
}

func decodeStream(fp io.Reader, format string, decode func(io.Reader) (ebitenAudioStream, error)) (AudioStream[float32], error) {
	s, err := decode(fp)
	if err != nil {
		return nil, fmt.Errorf("open %s stream: %w", format, err)
	}

	// the decoders produce 16 bit samples
	return &int16ToFloat32{stream: AdaptAudioStream[int16](s)}, nil
}

// LoadFile decodes the sound file at path into a clip.
func LoadFile(path string, sampleRate int) (*Clip, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound file: %w", err)
	}

	stream, err := OpenStream(bytes.NewReader(buf), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	samples, err := ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	return &Clip{Config: stream.Config(), Samples: samples}, nil
}

type int16ToFloat32 struct {
	stream AudioStream[int16]
	buf    []int16
}

func (c *int16ToFloat32) Read(samples []float32) (int, error) {
	if cap(c.buf) < len(samples) {
		c.buf = make([]int16, len(samples))
	}

	buf := c.buf[:len(samples)]

	n, err := c.stream.Read(buf)
	for idx, sample := range buf[:n] {
		samples[idx] = float32(sample) / 32768
	}

	return n, err
}

func (c *int16ToFloat32) Config() StreamConfig {
	return c.stream.Config()
}
