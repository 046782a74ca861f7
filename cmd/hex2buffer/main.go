package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/hexbuffer/internal/report"
	"github.com/d21d3q/hexbuffer/pkg/hexbuffer"
)

var (
	rootCmd = &cobra.Command{
		Use:   "hex2buffer [input.hex]",
		Short: "Convert a BlueGiga .hex file into a Node.js module",
		Long: "hex2buffer extracts the firmware bytes starting at 0x1000 from an Intel HEX\n" +
			"file and writes them as a Node.js module exporting a byte array.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := hexbuffer.ConvertOptions{Output: output}
			if len(args) == 1 {
				opts.Input = args[0]
			}
			return runConvert(cmd.Context(), opts)
		},
	}

	verifyCmd = &cobra.Command{
		Use:          "verify [input.hex]",
		Short:        "Strictly validate a .hex file and compare it with the extracted buffer",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := hexbuffer.ConvertOptions{}
			if len(args) == 1 {
				opts.Input = args[0]
			}
			return runVerify(opts)
		},
	}

	output  string
	verbose bool
)

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output Node.js file (default ble-firmware.js, - for stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runConvert(ctx context.Context, opts hexbuffer.ConvertOptions) error {
	opts, err := opts.Resolve()
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(opts.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	result, err := hexbuffer.Extract(ctx, in)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}
	logrus.WithField("input", opts.Input).Debug(result.String())
	logrus.Info(report.BufferLength(report.Printer(), len(result.Bytes)))
	if len(result.Bytes) == 0 {
		logrus.Warnf("no data record at 0x%04X, writing an empty buffer", hexbuffer.StartAddress)
	}

	if hexbuffer.IsStdio(opts.Output) {
		return hexbuffer.WriteModule(os.Stdout, result.Bytes)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := hexbuffer.WriteModule(f, result.Bytes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logrus.WithField("output", opts.Output).Info("All finished")
	return nil
}

func runVerify(opts hexbuffer.ConvertOptions) error {
	opts, err := opts.Resolve()
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(opts.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	rep, err := hexbuffer.Verify(in)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Input, err)
	}
	for _, seg := range rep.Segments {
		logrus.WithFields(logrus.Fields{
			"address": fmt.Sprintf("0x%08X", seg.Address),
			"length":  report.Sprintf("%d", len(seg.Data)),
		}).Info("segment")
	}
	switch {
	case !rep.Found:
		return fmt.Errorf("%s: no segment contains 0x%04X", opts.Input, hexbuffer.StartAddress)
	case !rep.Matches:
		return fmt.Errorf("%s: extracted buffer differs from the segment at 0x%04X", opts.Input, hexbuffer.StartAddress)
	}
	logrus.Info(report.Sprintf("verified %d bytes from 0x%04X", len(rep.Segment), hexbuffer.StartAddress))
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if hexbuffer.IsStdio(path) {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
