package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/pipelined/signal"

	"github.com/dudk/graph"
	"github.com/dudk/graph/log"
	"github.com/dudk/graph/metric"
	"github.com/dudk/graph/stage"
	"github.com/dudk/graph/wav"
)

type renderCommand struct {
	in        string
	out       string
	frequency float64
	amplitude float64
	gain      float64
	rate      float64
	block     int
	bits      int
	duration  time.Duration
	trace     bool
}

func (cmd *renderCommand) Help() string {
	return "Render generator -> gain -> output graph into wav file"
}

func (cmd *renderCommand) Flags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.out, "out", "", "output wav file (required)")
	fs.StringVar(&cmd.in, "in", "", "input wav file, sine is generated if empty")
	fs.Float64Var(&cmd.frequency, "freq", 440, "sine frequency")
	fs.Float64Var(&cmd.amplitude, "amp", 0.5, "sine amplitude")
	fs.Float64Var(&cmd.gain, "gain", 1, "gain factor")
	fs.Float64Var(&cmd.rate, "rate", 44100, "sample rate, ignored if input is set")
	fs.IntVar(&cmd.block, "block", 512, "block size")
	fs.IntVar(&cmd.bits, "bits", 16, "output bit depth")
	fs.DurationVar(&cmd.duration, "duration", time.Second, "duration of rendered signal")
	fs.BoolVar(&cmd.trace, "trace", false, "log every processed node")
}

func (cmd *renderCommand) Validate() error {
	var message []string
	if cmd.out == "" {
		message = append(message, "Missing -out required flag")
	}
	if cmd.duration <= 0 {
		message = append(message, "Duration must be positive")
	}
	if len(message) > 0 {
		return errors.New(strings.Join(message, "\n"))
	}
	return nil
}

func (cmd *renderCommand) Run(w io.Writer) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	logger := log.GetLogger()
	meter := metric.NewMeter()
	obs := observers{meter}
	if cmd.trace {
		obs = append(obs, log.Tracer(logger))
	}
	g := graph.New(
		graph.WithName("render"),
		graph.WithLogger(logger),
		graph.WithObserver(obs),
	)

	var (
		source graph.Node
		rate   = cmd.rate
	)
	if cmd.in != "" {
		f, err := os.Open(cmd.in)
		if err != nil {
			return err
		}
		defer f.Close()
		s, err := wav.NewSource(f)
		if err != nil {
			return fmt.Errorf("%v: %w", cmd.in, err)
		}
		source, rate = s, float64(s.SampleRate())
	} else {
		source = stage.NewSine(cmd.frequency, cmd.amplitude)
	}

	sourceID, err := g.Register(source)
	if err != nil {
		return err
	}
	gainID, err := g.Register(stage.NewGain(cmd.gain))
	if err != nil {
		return err
	}
	if err := g.Connect(sourceID, gainID, 0); err != nil {
		return err
	}
	if err := g.ConnectToOutput(gainID); err != nil {
		return err
	}
	if err := g.Prepare(rate, cmd.block); err != nil {
		return err
	}

	out, err := os.Create(cmd.out)
	if err != nil {
		return err
	}
	defer out.Close()
	blocks := int(math.Ceil(cmd.duration.Seconds() * rate / float64(cmd.block)))
	if err := wav.Render(out, g, signal.BitDepth(cmd.bits), blocks); err != nil {
		return err
	}
	logger.Infof("%v rendered %d blocks into %v: %v", g, blocks, cmd.out, metric.Get(graph.TypeSink))
	fmt.Fprintf(w, "%s: %d blocks of %d samples at %v Hz\n", cmd.out, blocks, cmd.block, rate)
	return nil
}

// observers notifies all observers in order.
type observers []graph.Observer

func (o observers) Observe(e graph.Event) {
	for i := range o {
		o[i].Observe(e)
	}
}
