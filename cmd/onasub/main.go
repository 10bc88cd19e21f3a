// Package main provides the CLI entry point for onasub, a developer tool
// that parses ODK/OpenRosa XML submissions and validates CSV import files.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/onaio/onadata/csvimport"
	"github.com/onaio/onadata/log"
	"github.com/onaio/onadata/profile"
	"github.com/onaio/onadata/submission"
	"github.com/onaio/onadata/version"
)

func main() {
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "onasub",
		Short:         "Inspect ODK/OpenRosa submissions",
		Version:       version.Info(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	rootCmd.AddCommand(newParseCmd(), newCSVCheckCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// parseFlags holds the flag values for the parse subcommand.
type parseFlags struct {
	repeats   []string
	numeric   []string
	geo       []string
	encrypted bool
	roundTrip bool
	format    string
	output    string
}

func newParseCmd() *cobra.Command {
	flags := &parseFlags{}
	profCfg := profile.NewConfig()

	cmd := &cobra.Command{
		Use:   "parse [flags] <submission.xml>",
		Short: "Parse a submission and print the structured result",
		Long: `parse reads one XML submission (or stdin when the argument is "-") and
prints the parsed result: the nested tree, the flat xpath-keyed view,
attributes, identity fields, geopoints, and the content checksum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(flags, profCfg, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&flags.repeats, "repeat", nil,
		"abbreviated xpath of a repeat group (repeatable)")
	cmd.Flags().StringArrayVar(&flags.numeric, "numeric", nil,
		"abbreviated xpath of a numeric field (repeatable)")
	cmd.Flags().StringArrayVar(&flags.geo, "geo", nil,
		"key to search for geopoint values (repeatable)")
	cmd.Flags().BoolVar(&flags.encrypted, "encrypted", false,
		"treat the submission as encrypted (media elements become lists)")
	cmd.Flags().BoolVar(&flags.roundTrip, "validate-roundtrip", false,
		"reject documents that fail XML round-trip validation")
	cmd.Flags().StringVar(&flags.format, "format", "json",
		"output format, one of: json, yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "-",
		"output file, or - for stdout")

	profCfg.RegisterFlags(cmd.Flags())

	return cmd
}

func runParse(flags *parseFlags, profCfg *profile.Config, arg string) error {
	data, err := readInput(arg)
	if err != nil {
		return err
	}

	prof := profCfg.NewProfiler()

	err = prof.Start()
	if err != nil {
		return err
	}

	result, parseErr := submission.Parse(string(data),
		submission.WithRepeats(flags.repeats...),
		submission.WithNumericFields(flags.numeric...),
		submission.WithGeoFields(flags.geo...),
		submission.WithEncrypted(flags.encrypted),
		submission.WithRoundTripValidation(flags.roundTrip),
	)

	stopErr := prof.Stop()

	if parseErr != nil {
		return parseErr
	}

	if stopErr != nil {
		return stopErr
	}

	slog.Debug("parsed submission",
		"root", result.RootName,
		"uuid", result.UUID,
		"fields", len(result.FlatDict),
		"geopoints", len(result.GeoPoints),
	)

	out, err := renderResult(result, flags.format)
	if err != nil {
		return err
	}

	return writeOutput(flags.output, out)
}

func renderResult(result *submission.Result, format string) ([]byte, error) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}

	switch format {
	case "json":
		return append(out, '\n'), nil
	case "yaml":
		converted, err := yaml.JSONToYAML(out)
		if err != nil {
			return nil, fmt.Errorf("encoding result: %w", err)
		}

		return converted, nil
	}

	return nil, fmt.Errorf("unknown output format %q", format)
}

func newCSVCheckCmd() *cobra.Command {
	var columnsPath string

	cmd := &cobra.Command{
		Use:   "csv-check [flags] <import.csv>",
		Short: "Validate CSV headers against a declared column mapping",
		Long: `csv-check verifies that every column declared in the mapping file is
present in the CSV's header row, then lists the additional headers the
import would ignore. The mapping file is YAML: column name to type string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCSVCheck(columnsPath, args[0])
		},
	}

	cmd.Flags().StringVar(&columnsPath, "columns", "",
		"YAML file mapping column names to type strings (required)")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}

func runCSVCheck(columnsPath, csvPath string) error {
	data, err := os.ReadFile(columnsPath)
	if err != nil {
		return fmt.Errorf("reading columns file: %w", err)
	}

	var columns map[string]string

	err = yaml.Unmarshal(data, &columns)
	if err != nil {
		return fmt.Errorf("parsing columns file: %w", err)
	}

	additional, err := csvimport.ValidateFile(csvPath, columns)
	if err != nil {
		return err
	}

	slog.Info("csv validated", "path", csvPath, "additional_columns", len(additional))

	for _, column := range additional {
		fmt.Println(column)
	}

	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return data, nil
}

func writeOutput(path string, out []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(out)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, out, 0o644)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
