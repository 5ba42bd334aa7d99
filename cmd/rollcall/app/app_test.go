package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{name: "default", config: Config{}, want: "info"},
		{name: "verbose", config: Config{Verbose: true}, want: "debug"},
		{name: "quiet", config: Config{Quiet: true}, want: "warn"},
		{name: "both prefers quiet", config: Config{Verbose: true, Quiet: true}, want: "warn"},
		{name: "env level", config: Config{LogLevel: "trace"}, want: "trace"},
		{name: "flag beats env", config: Config{Verbose: true, LogLevel: "error"}, want: "debug"},
		{name: "invalid env level", config: Config{LogLevel: "loud"}, want: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	c := &Config{DataDir: "data", MetadataFile: "data/metadata.yml"}

	c.UpdateFromFlags(true, false, true, "corpus", "debug")
	assert.True(t, c.Verbose)
	assert.True(t, c.NoColor)
	assert.Equal(t, "corpus", c.DataDir)
	assert.Equal(t, "corpus/metadata.yml", c.MetadataFile)
	assert.Equal(t, "debug", c.LogLevel)

	// Empty flag values leave the configured paths alone.
	c.UpdateFromFlags(true, false, true, "", "")
	assert.Equal(t, "corpus", c.DataDir)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestExitError(t *testing.T) {
	underlying := errors.New("lint found problems")
	err := &ExitError{Code: 99, Err: underlying}

	assert.Equal(t, "lint found problems", err.Error())
	assert.True(t, errors.Is(err, underlying))

	var exitErr *ExitError
	assert.True(t, errors.As(error(err), &exitErr))
	assert.Equal(t, 99, exitErr.Code)
}
