package wav_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/signal"

	"github.com/dudk/graph"
	"github.com/dudk/graph/stage"
	"github.com/dudk/graph/wav"
)

const delta = 1e-3

func constantGraph(t *testing.T, value float64, blockSize int) *graph.Graph {
	g := graph.New()
	id, err := g.Register(stage.NewConstant(value))
	assert.Nil(t, err)
	assert.Nil(t, g.ConnectToOutput(id))
	assert.Nil(t, g.Prepare(44100, blockSize))
	return g
}

func tempFile(t *testing.T) *os.File {
	f, err := ioutil.TempFile("", "graph-*.wav")
	assert.Nil(t, err)
	return f
}

func TestRenderAndRead(t *testing.T) {
	tests := []struct {
		description string
		bitDepth    signal.BitDepth
		value       float64
		blockSize   int
		blocks      int
	}{
		{
			description: "16 bit",
			bitDepth:    signal.BitDepth16,
			value:       0.5,
			blockSize:   64,
			blocks:      3,
		},
		{
			description: "16 bit negative",
			bitDepth:    signal.BitDepth16,
			value:       -0.25,
			blockSize:   32,
			blocks:      2,
		},
		{
			description: "32 bit",
			bitDepth:    signal.BitDepth32,
			value:       0.75,
			blockSize:   16,
			blocks:      4,
		},
	}
	for _, test := range tests {
		t.Log(test.description)
		f := tempFile(t)
		defer os.Remove(f.Name())
		defer f.Close()

		err := wav.Render(f, constantGraph(t, test.value, test.blockSize), test.bitDepth, test.blocks)
		assert.Nil(t, err)
		_, err = f.Seek(0, 0)
		assert.Nil(t, err)

		source, err := wav.NewSource(f)
		assert.Nil(t, err)
		assert.Equal(t, 44100, source.SampleRate())
		assert.Equal(t, 1, source.NumChannels())

		g := graph.New()
		id, err := g.Register(source)
		assert.Nil(t, err)
		assert.Nil(t, g.ConnectToOutput(id))
		assert.Nil(t, g.Prepare(float64(source.SampleRate()), test.blockSize))

		block := make([]float64, test.blockSize)
		for i := 0; i < test.blocks; i++ {
			g.ProcessBlock(block)
			for _, v := range block {
				assert.InDelta(t, test.value, v, delta)
			}
		}
		// stream is over
		g.ProcessBlock(block)
		assert.Equal(t, make([]float64, test.blockSize), block)
		assert.Nil(t, source.Err())

		// rewind
		g.Reset()
		g.ProcessBlock(block)
		assert.InDelta(t, test.value, block[0], delta)
	}
}

func TestRenderClipped(t *testing.T) {
	f := tempFile(t)
	defer os.Remove(f.Name())
	defer f.Close()

	err := wav.Render(f, constantGraph(t, 2, 8), signal.BitDepth16, 1)
	assert.Nil(t, err)
	_, err = f.Seek(0, 0)
	assert.Nil(t, err)

	source, err := wav.NewSource(f)
	assert.Nil(t, err)
	block := make([]float64, 8)
	source.Process(block)
	for _, v := range block {
		assert.InDelta(t, 1, v, delta)
	}
}

func TestRenderUnsupportedBitDepth(t *testing.T) {
	f := tempFile(t)
	defer os.Remove(f.Name())
	defer f.Close()
	err := wav.Render(f, constantGraph(t, 1, 4), signal.BitDepth8, 1)
	assert.Equal(t, wav.ErrUnsupportedBitDepth, err)
}

func TestNewSourceInvalid(t *testing.T) {
	_, err := wav.NewSource(bytes.NewReader([]byte("not a wav file at all")))
	assert.Equal(t, wav.ErrInvalidFile, err)
}
