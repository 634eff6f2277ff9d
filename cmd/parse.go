package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/clems4ever/gcode-table/gcode"
	"github.com/spf13/cobra"
)

var (
	filePath       string
	fileName       string
	descriptorFile string
	searchDir      string
	columnMode     string
	outputFormat   string
	outputPath     string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a Gcode file into a table",
	Long: `Parse a Gcode file into a table of Operation, X, Y, Z and Speed.

Without --path/--name or --descriptor, the search directory must contain
exactly one *.gcode file. With a descriptor the file read is
<path>/<name>.Gcode.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runParse(cmd, cmd.OutOrStdout()); err != nil {
			reportError(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runParse(cmd *cobra.Command, stdout io.Writer) error {
	format, err := gcode.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	if format.Binary() && outputPath == "" {
		return fmt.Errorf("%s output needs --out", format)
	}
	mode, err := gcode.ParseColumnMode(columnMode)
	if err != nil {
		return err
	}
	desc, err := resolveDescriptor(cmd)
	if err != nil {
		return err
	}

	table, _, err := gcode.BuildTable(desc,
		gcode.WithColumnMode(mode),
		gcode.WithSearchDir(searchDir),
		gcode.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	if format == gcode.FormatSQLite {
		return gcode.WriteSQLite(context.Background(), outputPath, table)
	}

	if outputPath == "" {
		err = gcode.Write(stdout, format, table)
	} else {
		err = writeFile(outputPath, format, table)
	}
	if err != nil {
		return err
	}
	slog.Debug("wrote table", slog.String("format", string(format)), slog.Int("rows", table.Len()))
	return nil
}

func writeFile(path string, format gcode.Format, table *gcode.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := gcode.Write(f, format, table); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// reportError prints err unless gcode.BuildTable already logged it.
func reportError(w io.Writer, err error) {
	if errors.Is(err, gcode.ErrMissingSource) || errors.Is(err, gcode.ErrAmbiguousSource) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// resolveDescriptor returns nil when the file should be discovered.
func resolveDescriptor(cmd *cobra.Command) (*gcode.Descriptor, error) {
	if descriptorFile != "" {
		return gcode.LoadDescriptor(descriptorFile)
	}
	if cmd.Flags().Changed("path") || cmd.Flags().Changed("name") {
		return &gcode.Descriptor{FilePath: filePath, FileName: fileName}, nil
	}
	return nil, nil
}

func init() {
	rootCmd.AddCommand(parseCmd)

	formats := make([]string, len(gcode.Formats))
	for i, f := range gcode.Formats {
		formats[i] = string(f)
	}

	parseCmd.Flags().StringVarP(&filePath, "path", "p", "", "Directory holding the Gcode file")
	parseCmd.Flags().StringVarP(&fileName, "name", "n", "", "Gcode file name without the .Gcode extension")
	parseCmd.Flags().StringVarP(&descriptorFile, "descriptor", "d", "", "Descriptor file: YAML or TOML with file_path and file_name, or JSON with filePath and fileName")
	parseCmd.Flags().StringVar(&searchDir, "dir", "", "Directory searched for *.gcode when no descriptor is given")
	parseCmd.Flags().StringVarP(&columnMode, "columns", "c", "positional", "Column mode: positional or addressed")
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "csv", "Output format: "+strings.Join(formats, ", "))
	parseCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (stdout when empty; required for xlsx and sqlite)")
	parseCmd.MarkFlagsMutuallyExclusive("descriptor", "path")
	parseCmd.MarkFlagsMutuallyExclusive("descriptor", "name")
}
