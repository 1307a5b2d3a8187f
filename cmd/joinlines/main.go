package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/tliron/commonlog"

	"github.com/jupito/recstream/internal/textutil"
	"github.com/jupito/recstream/joinline"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("joinlines")

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
	var logFile string
	var verbosity int

	flag.BoolFunc("v", "increase log verbosity (repeatable)", func(s string) error {
		verbosity++
		return nil
	})
	flag.StringVar(&logFile, "logfile", "", "log to this file instead of stderr")
	flag.Parse()

	sep := joinline.DefaultSeparator
	switch flag.NArg() {
	case 0:
	case 1:
		sep = flag.Arg(0)
	default:
		fatalError("unexpected argument: %q", flag.Arg(1))
	}

	var logPath *string
	if logFile != "" {
		logPath = &logFile
	}
	commonlog.Configure(verbosity, logPath)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	joiner := joinline.NewJoiner(logWriter{out}, sep)
	// The joiner buffers the group being built, so it must be closed on
	// every exit path to get the last group out.
	defer joiner.Close()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		err := joiner.WriteLine(scanner.Text())
		if err != nil {
			exitOnWriteError(err)
		}
	}
	if err := scanner.Err(); err != nil {
		fatalError("error reading input: %s", err)
	}
	if err := joiner.Close(); err != nil {
		exitOnWriteError(err)
	}
}

// logWriter traces each joined line at debug level on its way out.
type logWriter struct {
	*bufio.Writer
}

func (w logWriter) Write(b []byte) (int, error) {
	line := strings.TrimSuffix(string(b), "\n")
	log.Debugf("group: %s", textutil.Truncate(line, 80))
	return w.Writer.Write(b)
}

func exitOnWriteError(err error) {
	if errors.Is(err, syscall.EPIPE) {
		// stdout is a pipe and something closed it (e.g. 'head' or 'less').
		// In this case we don't want to complain.
		os.Exit(0)
	}
	fatalError("error: %s", err)
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}
