// Package config reads the sandbox settings from the command line.
package config

import (
	"flag"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// DefaultValidationLayer is enabled when running with -debug.
const DefaultValidationLayer = "VK_LAYER_KHRONOS_validation"

// Config holds every knob of the sandbox. The zero value is not usable; start
// from Default or Parse.
type Config struct {
	// Debug enables ValidationLayer and verbose logging.
	Debug           bool
	ValidationLayer string

	// Width and Height are the fixed window size. The swapchain uses the same
	// extent.
	Width  int
	Height int

	// ShaderDir is where vert.spv and frag.spv are read from.
	ShaderDir string

	// QueueCount is the number of queues requested from queue family 0.
	QueueCount uint

	// Quiet suppresses the layer, extension and device dump.
	Quiet bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		ValidationLayer: DefaultValidationLayer,
		Width:           400,
		Height:          300,
		ShaderDir:       ".",
		QueueCount:      16,
	}
}

// Parse reads args (without the program name) into a Config. Usage output
// goes to out. flag.ErrHelp is returned as is when -h is given.
func Parse(name string, args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable the Vulkan validation layer and verbose logs")
	fs.StringVar(&cfg.ValidationLayer, "layer", cfg.ValidationLayer, "Validation layer enabled by -debug")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	fs.StringVar(&cfg.ShaderDir, "shaders", cfg.ShaderDir, "Directory containing vert.spv and frag.spv")
	fs.UintVar(&cfg.QueueCount, "queues", cfg.QueueCount, "Number of queues requested from queue family 0")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Do not print instance and device diagnostics")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Newf("unexpected arguments: %q", fs.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the driver would refuse anyway.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Newf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.QueueCount == 0 {
		return errors.New("at least one queue must be requested")
	}
	if c.QueueCount > math.MaxUint32 {
		return errors.Newf("too many queues requested: %d", c.QueueCount)
	}
	if c.ShaderDir == "" {
		return errors.New("shader directory must not be empty")
	}
	if c.Debug && c.ValidationLayer == "" {
		return errors.New("-debug requires a validation layer name")
	}
	return nil
}
