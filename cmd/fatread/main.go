package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bgrewell/fatread"
	"github.com/bgrewell/fatread/pkg/bpb"
	"github.com/bgrewell/fatread/pkg/logging"
	"github.com/bgrewell/fatread/pkg/option"
	"github.com/bgrewell/fatread/pkg/report"
	"github.com/bgrewell/usage"
	"golang.org/x/term"
)

const (
	exitValid   = 0
	exitFailure = 1
	exitInvalid = 2
)

// config is what main gathered from the command line.
type config struct {
	path      string
	verbosity int
	json      bool
	color     bool
}

// checkPositional rejects more than one disk image. rest holds the arguments left after flag parsing; parsing
// stops at the first non-flag, so a flag written after the path also lands here.
func checkPositional(rest []string) error {
	if len(rest) > 1 {
		return fmt.Errorf("expected at most one disk image, got %d arguments: %s", len(rest), strings.Join(rest, " "))
	}
	return nil
}

// run decodes the image named in cfg, or stdin when no path was given, and writes the report to stdout. The
// returned value is the process exit code.
func run(cfg config, stdin io.ReadSeeker, stdout, stderr io.Writer) int {
	logger := logging.NewLogger(logging.NewSimpleLogger(stderr, cfg.verbosity, cfg.color)).WithName("fatread")
	opts := []option.DecodeOption{option.WithLogger(logger)}

	var (
		b   *bpb.BPB
		v   *bpb.Validation
		err error
	)
	if cfg.path == "" {
		logger.Debug("reading from standard input")
		b, v, err = fatread.Decode(stdin, opts...)
	} else {
		logger.Debug("reading image", "path", cfg.path)
		b, v, err = fatread.Open(cfg.path, opts...)
	}

	if err != nil {
		if errors.Is(err, fatread.ErrOpen) {
			fmt.Fprintf(stderr, "Error: could not open %s\n", cfg.path)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitFailure
	}

	write := report.Write
	if cfg.json {
		write = report.WriteJSON
	}
	if err := write(stdout, b, v); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if !v.Valid() {
		return exitInvalid
	}
	return exitValid
}

func main() {
	u := usage.NewUsage(
		usage.WithApplicationName("fatread"),
		usage.WithApplicationDescription("fatread prints the BIOS Parameter Block of a FAT12/FAT16 volume image. The image is read from standard input when no path is given."),
	)
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print debug output to stderr", "", nil)
	trace := u.AddBooleanOption("vv", "trace", false, "Print every decoded field to stderr", "", nil)
	asJSON := u.AddBooleanOption("j", "json", false, "Print the report as JSON", "", nil)
	u.AddArgument(1, "disk-image", "Path to the FAT12/FAT16 volume image", "")
	parsed := u.Parse()

	if !parsed {
		// PrintError exits with status 1.
		u.PrintError(fmt.Errorf("failed to parse arguments"))
	}

	if *help {
		u.PrintUsage()
		os.Exit(exitValid)
	}

	// usage folds extra arguments into the last one, so the count comes from the flag package directly.
	if err := checkPositional(flag.Args()); err != nil {
		u.PrintError(err)
	}

	cfg := config{
		verbosity: logging.LEVEL_INFO,
		json:      *asJSON,
		color:     term.IsTerminal(int(os.Stderr.Fd())),
	}
	if flag.NArg() == 1 {
		cfg.path = flag.Arg(0)
	}
	switch {
	case *trace:
		cfg.verbosity = logging.LEVEL_TRACE
	case *verbose:
		cfg.verbosity = logging.LEVEL_DEBUG
	}

	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr))
}
