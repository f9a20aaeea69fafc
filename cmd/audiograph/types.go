package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/dudk/graph"
)

type typesCommand struct{}

func (cmd *typesCommand) Help() string {
	return "List node types and the inputs they accept"
}

func (cmd *typesCommand) Flags(fs *flag.FlagSet) {}

func (cmd *typesCommand) Run(w io.Writer) error {
	for _, t := range []struct {
		nodeType graph.Type
		inputs   string
	}{
		{graph.TypeGenerator, "none"},
		{graph.TypeEffect, "one"},
		{graph.TypeMixer, "many"},
		{graph.TypeSink, "one, created with the graph"},
	} {
		fmt.Fprintf(w, "%-10s %s\n", t.nodeType, t.inputs)
	}
	return nil
}
