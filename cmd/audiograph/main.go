// Audiograph builds a tree of audio nodes which converges on a single
// output and renders the produced blocks into wav files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

// command is a single audiograph subcommand. It binds its flags and
// writes human-readable results into provided writer.
type command interface {
	Help() string
	Flags(*flag.FlagSet)
	Run(io.Writer) error
}

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// commands are keyed by name. New values are created for every run so
// flag values are never shared.
func commands() map[string]command {
	return map[string]command{
		"render": &renderCommand{},
		"types":  &typesCommand{},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, w io.Writer) int {
	cmds := commands()
	if len(args) == 0 {
		usage(w, cmds)
		return exitUsage
	}
	name := args[0]
	cmd, ok := cmds[name]
	if !ok {
		fmt.Fprintf(w, "unknown command %q\n\n", name)
		usage(w, cmds)
		return exitUsage
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: audiograph %s [flags]\n\n%s\n\nFlags:\n", name, cmd.Help())
		fs.PrintDefaults()
	}
	cmd.Flags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := cmd.Run(w); err != nil {
		fmt.Fprintf(w, "audiograph %s: %v\n", name, err)
		return exitFailed
	}
	return exitOK
}

func usage(w io.Writer, cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Audiograph routes blocks of samples from generators through effects")
	fmt.Fprintln(w, "and mixers into the single graph output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: audiograph <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-8s %s\n", name, cmds[name].Help())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'audiograph <command> -h' to list command flags.")
}
