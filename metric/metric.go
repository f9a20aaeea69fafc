// Package metric captures processing counters of graph nodes. Counters
// are aggregated by node type and published with expvar.
package metric

import (
	"expvar"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pipelined/signal"

	"github.com/dudk/graph"
)

const nodesLabel = "graph.nodes"

const (
	// BlockCounter measures number of processed blocks.
	BlockCounter = "Blocks"
	// SampleCounter measures number of processed samples.
	SampleCounter = "Samples"
	// DurationCounter counts what's the duration of processed signal.
	DurationCounter = "Duration"
)

var (
	nodes = metrics{
		m: make(map[graph.Type]metric),
	}

	counters = []string{
		BlockCounter,
		SampleCounter,
		DurationCounter,
	}

	// types are resolved without lock.
	known = []graph.Type{
		graph.TypeUnknown,
		graph.TypeGenerator,
		graph.TypeEffect,
		graph.TypeMixer,
		graph.TypeSink,
	}
)

// Get metrics values for provided node type.
func Get(t graph.Type) map[string]string {
	return getCounters(t)
}

// GetAll returns counters for all measured node types. Types are keyed
// by their names, custom types have the value appended: "unknown(42)".
func GetAll() map[string]map[string]string {
	m := make(map[string]map[string]string)
	nodes.Lock()
	defer nodes.Unlock()
	for t := range nodes.m {
		m[name(t)] = getCounters(t)
	}
	return m
}

func getCounters(t graph.Type) map[string]string {
	m := make(map[string]string)
	for _, counter := range counters {
		v := expvar.Get(key(t, counter))
		if v != nil {
			m[counter] = v.String()
		}
	}
	return m
}

// Meter is a graph.Observer which captures node counters.
type Meter struct {
	known []metric
}

// NewMeter creates a new meter.
func NewMeter() *Meter {
	m := Meter{
		known: make([]metric, len(known)),
	}
	for i, t := range known {
		m.known[i] = nodes.get(t)
	}
	return &m
}

// Observe implements graph.Observer.
func (m *Meter) Observe(e graph.Event) {
	var mt metric
	if int(e.Type) >= 0 && int(e.Type) < len(m.known) {
		mt = m.known[e.Type]
	} else {
		mt = nodes.get(e.Type)
	}
	s := int64(len(e.Block))
	mt.blocks.Add(1)
	mt.samples.Add(s)
	if rate := int(e.Config.SampleRate); rate > 0 {
		mt.duration.add(signal.DurationOf(rate, s))
	}
}

type metrics struct {
	sync.Mutex
	m map[graph.Type]metric
}

func (m *metrics) get(t graph.Type) metric {
	m.Lock()
	defer m.Unlock()
	if metric, ok := m.m[t]; ok {
		// return existing metric if available
		return metric
	}
	// create new metric
	metric := newMetric(t)
	m.m[t] = metric
	return metric
}

type metric struct {
	blocks   *expvar.Int
	samples  *expvar.Int
	duration *duration
}

func newMetric(t graph.Type) metric {
	m := metric{
		blocks:   expvar.NewInt(key(t, BlockCounter)),
		samples:  expvar.NewInt(key(t, SampleCounter)),
		duration: &duration{},
	}
	expvar.Publish(key(t, DurationCounter), m.duration)
	return m
}

// name is unique per type value, since custom types share the string.
func name(t graph.Type) string {
	if int(t) >= len(known) || t < 0 {
		return fmt.Sprintf("%s(%d)", t, int(t))
	}
	return t.String()
}

func key(t graph.Type, counter string) string {
	return fmt.Sprintf("%s.%s.%s", nodesLabel, name(t), counter)
}

// duration allows to format time.Duration metric values.
type duration struct {
	d int64
}

func (v *duration) String() string {
	return fmt.Sprintf("%q", time.Duration(atomic.LoadInt64(&v.d)))
}

func (v *duration) add(delta time.Duration) {
	atomic.AddInt64(&v.d, int64(delta))
}
