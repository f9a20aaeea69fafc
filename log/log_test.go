package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/dudk/graph"
	"github.com/dudk/graph/log"
	"github.com/dudk/graph/mock"
)

func TestTracer(t *testing.T) {
	tests := []struct {
		description string
		level       logrus.Level
		expected    int
	}{
		{
			description: "debug level",
			level:       logrus.DebugLevel,
			expected:    3,
		},
		{
			description: "info level",
			level:       logrus.InfoLevel,
			expected:    0,
		},
	}
	for _, test := range tests {
		t.Log(test.description)
		l, hook := logrustest.NewNullLogger()
		l.SetLevel(test.level)

		g := graph.New(graph.WithObserver(log.Tracer(l)))
		gen, err := g.Register(mock.Generator(1))
		assert.Nil(t, err)
		eff, err := g.Register(mock.Effect(0.5))
		assert.Nil(t, err)
		assert.Nil(t, g.Connect(gen, eff, 0))
		assert.Nil(t, g.ConnectToOutput(eff))

		g.ProcessBlock(make([]float64, 4))
		entries := hook.AllEntries()
		assert.Equal(t, test.expected, len(entries))
		if test.expected > 0 {
			assert.Equal(t, gen, entries[0].Data["node"])
			assert.Equal(t, "generator", entries[0].Data["type"])
			assert.Equal(t, 4, entries[0].Data["samples"])
			assert.Equal(t, graph.Output, entries[2].Data["node"])
		}
	}
}

func TestGetLogger(t *testing.T) {
	l := log.GetLogger()
	assert.NotNil(t, l)
	var _ graph.Logger = l
}
