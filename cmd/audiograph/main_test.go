package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommands(t *testing.T) {
	cmds := commands()
	assert.Equal(t, 2, len(cmds))
	assert.Contains(t, cmds, "render")
	assert.Contains(t, cmds, "types")
	// every call returns fresh commands
	assert.False(t, cmds["render"] == commands()["render"])
}

func TestRun(t *testing.T) {
	dir, err := ioutil.TempDir("", "audiograph")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)
	sine := filepath.Join(dir, "sine.wav")
	copied := filepath.Join(dir, "copy.wav")
	failed := filepath.Join(dir, "failed.wav")

	tests := []struct {
		description string
		args        []string
		expected    int
		output      string
	}{
		{
			description: "no command",
			expected:    exitUsage,
			output:      "Usage: audiograph <command> [flags]",
		},
		{
			description: "unknown command",
			args:        []string{"play"},
			expected:    exitUsage,
			output:      `unknown command "play"`,
		},
		{
			description: "types",
			args:        []string{"types"},
			expected:    exitOK,
			output:      "mixer",
		},
		{
			description: "render help",
			args:        []string{"render", "-h"},
			expected:    exitOK,
			output:      "Usage: audiograph render [flags]",
		},
		{
			description: "render without output",
			args:        []string{"render"},
			expected:    exitFailed,
			output:      "Missing -out required flag",
		},
		{
			description: "render sine",
			args:        []string{"render", "-out", sine, "-duration", "100ms", "-block", "256"},
			expected:    exitOK,
			output:      "blocks of 256 samples",
		},
		{
			description: "render from wav",
			args:        []string{"render", "-in", sine, "-out", copied, "-gain", "0.5", "-bits", "32", "-duration", "50ms"},
			expected:    exitOK,
			output:      copied,
		},
		{
			description: "unsupported bit depth",
			args:        []string{"render", "-out", failed, "-bits", "24", "-duration", "50ms"},
			expected:    exitFailed,
			output:      "bit depth",
		},
		{
			description: "invalid block size",
			args:        []string{"render", "-out", failed, "-block", "0"},
			expected:    exitFailed,
			output:      "invalid buffer size",
		},
		{
			description: "invalid flag",
			args:        []string{"render", "-unknown"},
			expected:    exitUsage,
			output:      "flag provided but not defined",
		},
	}
	for _, test := range tests {
		t.Log(test.description)
		var out bytes.Buffer
		assert.Equal(t, test.expected, run(test.args, &out))
		assert.Contains(t, out.String(), test.output)
	}

	for _, path := range []string{sine, copied} {
		info, err := os.Stat(path)
		assert.Nil(t, err)
		assert.True(t, info.Size() > 44)
	}
}
