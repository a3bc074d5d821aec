// spectrum paints a 256×256 true-color rainbow test pattern.
//
// Usage:
//
//	spectrum
//	spectrum -version
//	spectrum -debug 2>spectrum.log
//
// Every row is the same red → green → blue → red sweep, drawn as background
// colored spaces. Diagnostics go to stderr; stdout carries only the grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/dkoosis/spectrum/internal/config"
	"github.com/dkoosis/spectrum/internal/detect"
	"github.com/dkoosis/spectrum/internal/logging"
	"github.com/dkoosis/spectrum/internal/version"
	"github.com/dkoosis/spectrum/pkg/ramp"
	"github.com/dkoosis/spectrum/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spectrum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	versionFlag := fs.Bool("version", false, "Print version and exit")
	debugFlag := fs.Bool("debug", false, "Log debug diagnostics to stderr")
	logFormatFlag := fs.String("log-format", config.DefaultLogFormat, "Diagnostics format: logfmt, json")
	noColorFlag := fs.Bool("no-color", false, "Disable styling of the version banner")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "spectrum: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	flags := config.CliFlags{
		Debug:     *debugFlag,
		LogFormat: *logFormatFlag,
		NoColor:   *noColorFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			flags.DebugSet = true
		case "log-format":
			flags.LogFormatSet = true
		case "no-color":
			flags.NoColorSet = true
		}
	})

	cfg, err := config.Resolve(flags)
	if err != nil {
		fmt.Fprintf(stderr, "spectrum: %v\n", err)
		return 2
	}

	if *versionFlag {
		theme := render.ThemeFor(cfg.NoColor)
		fmt.Fprintln(stdout, render.Banner(theme, "spectrum", version.Version, version.CommitHash, version.BuildDate))
		return 0
	}

	logger := logging.New(stderr, cfg.LogFormat, cfg.Debug)
	return paint(stdout, logger, cfg)
}

// paint renders the grid to stdout. Returns the process exit code.
func paint(stdout io.Writer, logger log.Logger, cfg *config.Resolved) int {
	level.Debug(logger).Log("msg", "resolved config",
		"path", cfg.Path,
		"debug", cfg.Debug, "debug_source", cfg.DebugSource,
		"log_format", cfg.LogFormat, "log_format_source", cfg.LogFormatSource,
		"no_color", cfg.NoColor, "no_color_source", cfg.NoColorSource)

	term := detect.Terminal(stdout)
	level.Debug(logger).Log("msg", "stdout", "tty", term.IsTTY, "width", term.Width, "height", term.Height)
	if term.Wraps(ramp.Width) {
		level.Warn(logger).Log("msg", "terminal narrower than grid; rows will wrap", "width", term.Width, "columns", ramp.Width)
	}

	r := render.NewTrueColor(render.WithRowObserver(func(y int, brightness float64) {
		level.Debug(logger).Log("msg", "row", "row", y, "brightness", brightness)
	}))
	if err := r.Render(stdout); err != nil {
		level.Error(logger).Log("msg", "rendering failed", "err", err)
		return 1
	}
	return 0
}
