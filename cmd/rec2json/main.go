package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"

	"github.com/jupito/recstream/internal/format"
	"github.com/jupito/recstream/internal/textutil"
	"github.com/jupito/recstream/record"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("rec2json")

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	// Parse the command line arguments
	var filename string
	var logFile string
	var verbosity int
	var colorizer *format.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})
	flag.BoolFunc("v", "increase log verbosity (repeatable)", func(s string) error {
		verbosity++
		return nil
	})

	flag.StringVar(&filename, "file", "", "input filename (stdin if omitted)")
	flag.StringVar(&logFile, "logfile", "", "log to this file instead of stderr")
	flag.Parse()

	if flag.NArg() > 0 {
		fatalError("unexpected argument: %q", flag.Arg(0))
	}

	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}
	commonlog.Configure(verbosity, logPath)

	// Set up stdout for handling colors

	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	// Open input file
	var input io.Reader
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatalError("error opening %q: %s", filename, err)
		}
		defer f.Close()
		input = f
	} else {
		input = os.Stdin
	}

	parser := record.NewParser(input)

	// Write the output stream to stdout
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	printer := &format.LinePrinter{Writer: out}

	// If we are writing to a terminal, flush after each record so user gets feedback early.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		printer.Flusher = out
	}

	encoder := &record.Encoder{Printer: printer, Colorizer: colorizer}

	recordCount := 0
	for {
		rec, err := parser.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fatalError("error reading input: %s", err)
		}
		err = encoder.Encode(rec)
		if err != nil {
			if errors.Is(err, syscall.EPIPE) {
				// stdout is a pipe and something closed it (e.g. 'head' or 'less').
				// In this case we don't want to complain.
				return
			}
			fatalError("error: %s", err)
		}
		recordCount++
	}

	log.Infof("read %d lines (%s), emitted %d records",
		parser.LineCount(), textutil.FormatSize(parser.ByteCount()), recordCount)
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Green      = []byte("\033[32m")
	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = format.Colorizer{
	KeyColorCode:   BrightBlue,
	ValueColorCode: Green,
	ResetCode:      Reset,
}
