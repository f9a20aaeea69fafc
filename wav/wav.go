// Package wav connects graphs with wav files.
package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pipelined/signal"

	"github.com/dudk/graph"
)

var (
	// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
	ErrUnsupportedBitDepth = errors.New("only 16 and 32 bit depth is supported")
	// ErrInvalidFile is returned when wav file cannot be decoded.
	ErrInvalidFile = errors.New("wav is not valid")
)

// pcmFormat is used for all encoded files.
const pcmFormat = 1

func supported(bitDepth signal.BitDepth) bool {
	switch bitDepth {
	case signal.BitDepth16, signal.BitDepth32:
		return true
	}
	return false
}

// Source is a generator node which reads the wav stream. Channels are
// mixed down to mono. Once the stream is over, silence is generated.
type Source struct {
	graph.Ports
	r           io.ReadSeeker
	decoder     *wav.Decoder
	numChannels int
	sampleRate  int
	bitDepth    signal.BitDepth
	ib          *audio.IntBuffer
	eof         bool
	err         error
}

// NewSource creates a new wav source and reads wav props.
func NewSource(r io.ReadSeeker) (*Source, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() || decoder.NumChans == 0 {
		return nil, ErrInvalidFile
	}
	bitDepth := signal.BitDepth(decoder.BitDepth)
	if !supported(bitDepth) {
		return nil, ErrUnsupportedBitDepth
	}
	s := &Source{
		r:           r,
		decoder:     decoder,
		numChannels: int(decoder.NumChans),
		sampleRate:  int(decoder.SampleRate),
		bitDepth:    bitDepth,
		ib: &audio.IntBuffer{
			Format:         decoder.Format(),
			SourceBitDepth: int(decoder.BitDepth),
		},
	}
	s.allocate(graph.DefaultConfig.BlockSize)
	return s, nil
}

// Type implements graph.Node.
func (*Source) Type() graph.Type {
	return graph.TypeGenerator
}

// SampleRate returns sample rate of the wav stream.
func (s *Source) SampleRate() int {
	return s.sampleRate
}

// NumChannels returns number of channels of the wav stream.
func (s *Source) NumChannels() int {
	return s.numChannels
}

// Err returns the first error occurred while reading the stream.
func (s *Source) Err() error {
	return s.err
}

// Init implements graph.Initializer. Read buffer is allocated for the
// block size.
func (s *Source) Init(c graph.RuntimeConfig) {
	s.allocate(c.BlockSize)
}

func (s *Source) allocate(blockSize int) {
	if n := blockSize * s.numChannels; cap(s.ib.Data) < n {
		s.ib.Data = make([]int, n)
	}
}

// Reset implements graph.Resetter. The stream is read from the start.
func (s *Source) Reset() {
	s.eof = false
	if _, err := s.r.Seek(0, io.SeekStart); err != nil {
		s.err = fmt.Errorf("rewind: %w", err)
		return
	}
	s.decoder = wav.NewDecoder(s.r)
	s.err = nil
}

// Process implements graph.Processor.
func (s *Source) Process(b []float64) []float64 {
	var n int
	if s.err == nil && !s.eof {
		s.allocate(len(b))
		s.ib.Data = s.ib.Data[:len(b)*s.numChannels]
		read, err := s.decoder.PCMBuffer(s.ib)
		if err != nil {
			s.err = fmt.Errorf("read pcm: %w", err)
		}
		if read == 0 {
			s.eof = true
		}
		n = mixdown(b, signal.InterInt{
			Data:        s.ib.Data[:read],
			NumChannels: s.numChannels,
			BitDepth:    s.bitDepth,
		}.AsFloat64(), read/s.numChannels)
	}
	for i := n; i < len(b); i++ {
		b[i] = 0
	}
	return b
}

// mixdown averages first frames of channels into dst. Number of written
// samples is returned.
func mixdown(dst []float64, channels signal.Float64, frames int) int {
	if frames > len(dst) {
		frames = len(dst)
	}
	if len(channels) == 0 || frames <= 0 {
		return 0
	}
	for i := 0; i < frames; i++ {
		var sum float64
		for _, c := range channels {
			sum += c[i]
		}
		dst[i] = sum / float64(len(channels))
	}
	return frames
}

// clip limits samples to [-1, 1] range.
func clip(b []float64) {
	for i, v := range b {
		switch {
		case v > 1:
			b[i] = 1
		case v < -1:
			b[i] = -1
		}
	}
}

// Renderer is a prepared graph.
type Renderer interface {
	Config() graph.RuntimeConfig
	ProcessBlock([]float64) []float64
}

// Render processes provided number of blocks and encodes them into mono
// wav stream. Every block is zeroed before processing and clipped after.
func Render(w io.WriteSeeker, r Renderer, bitDepth signal.BitDepth, blocks int) error {
	if !supported(bitDepth) {
		return ErrUnsupportedBitDepth
	}
	c := r.Config()
	sampleRate := int(c.SampleRate)
	e := wav.NewEncoder(w, sampleRate, int(bitDepth), 1, pcmFormat)
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: int(bitDepth),
	}
	block := make([]float64, c.BlockSize)
	for i := 0; i < blocks; i++ {
		for j := range block {
			block[j] = 0
		}
		out := r.ProcessBlock(block)
		clip(out)
		ib.Data = signal.Float64{out}.AsInterInt(bitDepth, false)
		if err := e.Write(ib); err != nil {
			e.Close()
			return fmt.Errorf("write block %d: %w", i, err)
		}
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}
