package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/tuyair/irdb"
	"github.com/arloliu/tuyair/library"
)

const (
	// batchSeparatorWidth is the width of the "=" lines framing convert output.
	batchSeparatorWidth = 60
	// maxLineSize bounds one line of stdin read by decode.
	maxLineSize = 4 * 1024 * 1024
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [timing...]",
		Short: "Encode raw timings into a Tuya code",
		Long: "Encode raw timings into a Tuya code.\n\n" +
			"Timings are read from the arguments, or from stdin when there are none. " +
			"Both space and comma separated lists are accepted, with or without brackets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				text, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = []string{string(text)}
			}

			signal, err := irdb.ParseTimings(joinTimings(args))
			if err != nil {
				return err
			}

			codec, err := a.codec()
			if err != nil {
				return err
			}

			code, err := codec.Encode(signal)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)

			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [code...]",
		Short: "Decode Tuya codes into raw timings",
		Long: "Decode Tuya codes into raw timings.\n\n" +
			"Codes are read from the arguments, or one per line from stdin when there are none. " +
			"Each code prints one timing list. Stdin lines may be up to 4 MiB long.",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := args
			if len(codes) == 0 {
				lines, err := readLines(cmd)
				if err != nil {
					return err
				}
				codes = lines
			}

			named := make([]irdb.NamedCode, len(codes))
			for i, code := range codes {
				named[i] = irdb.NamedCode{Function: fmt.Sprintf("code %d", i+1), Code: code}
			}

			conv, err := a.converter()
			if err != nil {
				return err
			}

			report := conv.DecodeCodes(named)
			for _, res := range report.Results {
				if res.OK() {
					fmt.Fprintln(cmd.OutOrStdout(), irdb.FormatTimings(res.Value))
				}
			}

			return reportFailures(cmd, report)
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <code>",
		Short: "Show the block structure of a Tuya code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := a.codec()
			if err != nil {
				return err
			}

			info, err := codec.Inspect(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Timings          : %d\n", info.Timings)
			fmt.Fprintf(out, "Raw size         : %d bytes\n", info.OriginalSize)
			fmt.Fprintf(out, "Compressed size  : %d bytes\n", info.CompressedSize)
			fmt.Fprintf(out, "Space savings    : %.1f%%\n", info.SpaceSavings())
			fmt.Fprintf(out, "Literal blocks   : %d (%d bytes)\n", info.LiteralBlocks, info.LiteralBytes)
			fmt.Fprintf(out, "Reference blocks : %d (%d bytes)\n", info.ReferenceBlocks, info.CopiedBytes)
			fmt.Fprintf(out, "Longest reference: %d\n", info.LongestReference)
			fmt.Fprintf(out, "Raw Timing       : %s\n", irdb.FormatTimings(info.Signal))

			return nil
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert text entries on stdin into Tuya codes",
		Long: "Convert text entries on stdin into Tuya codes.\n\n" +
			"Input is made of \"Function : <name>\" lines each followed by \"Raw Timing : [a, b, ...]\". " +
			"The command exits with an error when any entry failed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.readEntries(cmd)
			if err != nil {
				return err
			}

			conv, err := a.converter()
			if err != nil {
				return err
			}

			report := conv.EncodeEntries(entries)

			out := cmd.OutOrStdout()
			separator := strings.Repeat("=", batchSeparatorWidth)
			fmt.Fprintln(out, separator)
			for _, res := range report.Results {
				if !res.OK() {
					continue
				}
				fmt.Fprintf(out, "\nFunction: %s\n", res.Name)
				fmt.Fprintln(out, "Generated Tuya IR Code:")
				fmt.Fprintln(out, res.Value)
			}
			fmt.Fprintln(out, "\n"+separator)

			return reportFailures(cmd, report)
		},
	}
}

func newPackCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack text entries on stdin into a code library file",
		Long: "Pack text entries on stdin into a code library file.\n\n" +
			"Entries that fail, such as a repeated function name, are reported and left out; the first " +
			"entry of a name wins. The library is written from the remaining entries and the command " +
			"exits with an error when any entry failed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.readEntries(cmd)
			if err != nil {
				return err
			}

			compression, err := a.cfg.Compression()
			if err != nil {
				return err
			}
			codec, err := a.codec()
			if err != nil {
				return err
			}

			builder, err := library.NewBuilder(
				library.WithCompression(compression),
				library.WithValidation(a.cfg.Library.Validate),
				library.WithCodec(codec),
			)
			if err != nil {
				return err
			}
			defer builder.Release()

			report := irdb.Report[string]{Results: make([]irdb.Result[string], 0, len(entries))}
			for _, e := range entries {
				err := builder.AddSignal(e.Function, e.Signal)
				report.Results = append(report.Results, irdb.Result[string]{Name: e.Function, Err: err})
				if err != nil {
					a.logger.Warn("pack failed", zap.String("function", e.Function), zap.Error(err))
				}
			}
			if report.Succeeded() == 0 {
				return reportFailures(cmd, report)
			}

			data, err := builder.Finish()
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			packed := report.Succeeded()
			a.logger.Info("library written",
				zap.String("path", output),
				zap.Int("functions", packed),
				zap.Int("failed", report.Failed()),
				zap.Int("bytes", len(data)),
				zap.Stringer("compression", compression),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d functions into %s (%d bytes)\n", packed, output, len(data))

			return reportFailures(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "library file to write")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var signals bool

	cmd := &cobra.Command{
		Use:   "list <library>",
		Short: "List the functions of a code library file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			codec, err := a.codec()
			if err != nil {
				return err
			}

			lib, err := library.Open(data, library.WithDecodeCodec(codec))
			if err != nil {
				return err
			}

			a.logger.Debug("library opened",
				zap.String("path", args[0]),
				zap.Int("functions", lib.Len()),
				zap.Stringer("compression", lib.Compression()),
				zap.Bool("collision", lib.HasCollision()),
			)

			out := cmd.OutOrStdout()
			if !signals {
				for name, code := range lib.All() {
					fmt.Fprintf(out, "%s\t%s\n", name, code)
				}

				return nil
			}

			for _, name := range lib.Functions() {
				signal, _, err := lib.Signal(name)
				if err != nil {
					return err
				}
				if err := irdb.WriteEntry(out, irdb.Entry{Function: name, Signal: signal}); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&signals, "signals", "s", false, "print decoded timings as text entries")

	return cmd
}

func newProtocolsCmd() *cobra.Command {
	var columns int

	cmd := &cobra.Command{
		Use:   "protocols",
		Short: "List the IR protocol names IRDB rows may reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if columns < 1 {
				return errors.New("columns must be positive")
			}
			fmt.Fprint(cmd.OutOrStdout(), irdb.FormatColumns(irdb.KnownProtocols(), columns))

			return nil
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 4, "number of columns")

	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("read stdin: line longer than %d bytes: %w", maxLineSize, err)
		}

		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return lines, nil
}
