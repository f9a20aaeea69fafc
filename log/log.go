// Package log provides logrus-backed loggers for graphs.
package log

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/dudk/graph"
)

// DebugEnv is the environment variable that enables debug level.
const DebugEnv = "AUDIOGRAPH_DEBUG"

var debug bool

func init() {
	var err error
	debug, err = strconv.ParseBool(os.Getenv(DebugEnv))
	if err != nil {
		debug = false
	}
}

// GetLogger returns a new logger instance. Debug level is set if
// AUDIOGRAPH_DEBUG is true.
func GetLogger() *logrus.Logger {
	l := logrus.New()
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Tracer returns an observer which logs every processed node at debug
// level. Nothing is formatted when debug level is disabled.
func Tracer(l *logrus.Logger) graph.Observer {
	return graph.ObserverFunc(func(e graph.Event) {
		if !l.IsLevelEnabled(logrus.DebugLevel) {
			return
		}
		l.WithFields(logrus.Fields{
			"node":    e.Node,
			"type":    e.Type.String(),
			"samples": len(e.Block),
		}).Debug("processed")
	})
}
