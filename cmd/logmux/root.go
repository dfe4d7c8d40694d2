package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/KerryL/logging/multilog"
	"github.com/KerryL/logging/stamplog"
)

var (
	outputs []string
	quiet   bool
	stamp   bool

	rootCmd = &cobra.Command{
		Use:   "logmux [input files...]",
		Short: "logmux multiplexes line-oriented inputs to a set of log sinks",
		Long: `logmux reads lines from one or more inputs (files, or stdin when no
inputs are given) and delivers every line atomically to all configured
sinks. Each input is pumped concurrently under its own caller identity,
so lines from different inputs never interleave mid-message in any sink.`,
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().StringArrayVarP(&outputs, "output", "o", nil, "file to receive the multiplexed stream (repeatable)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the stdout sink")
	rootCmd.Flags().BoolVar(&stamp, "stamp", false, "prefix each message with a timestamp")
}

func run(cmd *cobra.Command, args []string) error {
	mux := multilog.New(multilog.Config{})

	if !quiet {
		var sink multilog.Sink = multilog.NewConsoleSink(cmd.OutOrStdout())
		if stamp {
			sink = stamplog.New(cmd.OutOrStdout())
		}
		if err := mux.Register(sink, multilog.Borrowed); err != nil {
			return err
		}
	}

	for _, path := range outputs {
		fs, err := multilog.NewFileSink(path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).Error("cannot open output sink")
			return err
		}
		var sink multilog.Sink = fs
		if stamp {
			sink = stamplog.New(fs)
		}
		if err := mux.Register(sink, multilog.Owned); err != nil {
			return err
		}
	}

	if quiet && len(outputs) == 0 {
		return fmt.Errorf("no sinks configured: --quiet requires at least one --output")
	}

	var g errgroup.Group
	if len(args) == 0 {
		g.Go(func() error {
			return pump(mux.Stream(0), cmd.InOrStdin())
		})
	} else {
		for i, path := range args {
			id := multilog.CallerID(i)
			path := path
			g.Go(func() error {
				f, err := os.Open(path)
				if err != nil {
					logrus.WithError(err).WithField("path", path).Error("cannot open input")
					return err
				}
				defer f.Close()
				return pump(mux.Stream(id), f)
			})
		}
	}

	err := g.Wait()
	err = multierr.Append(err, mux.Close())

	snap := mux.Stats()
	logrus.WithFields(logrus.Fields{
		"flushed": snap.Flushed,
		"failed":  snap.Failed,
		"evicted": snap.Evicted,
	}).Debug("multiplexing finished")

	return err
}

// pump copies r into w line by line; the stream flushes once per line, so
// each line reaches the sinks as one atomic message.
func pump(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := w.Write(scanner.Bytes()); err != nil {
			return err
		}
		// The newline terminates the message and triggers the flush.
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}
