package gcode

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// BuildTable resolves the source file, then parses it into a Table.
//
// With a nil desc the search directory must hold exactly one *.gcode file.
// Otherwise the file is desc.FilePath/desc.FileName.Gcode. On success the
// descriptor is echoed back (zero value when desc is nil). On failure the
// table is nil, the descriptor is empty and the diagnostic is logged.
func BuildTable(desc *Descriptor, opts ...Option) (*Table, Descriptor, error) {
	o := newOptions(opts)

	table, err := buildTable(desc, o, opts)
	if err != nil {
		o.logger.Error("failed to build gcode table", slog.Any("error", err))
		return nil, Descriptor{}, err
	}

	var echo Descriptor
	if desc != nil {
		echo = *desc
	}
	return table, echo, nil
}

func buildTable(desc *Descriptor, o options, opts []Option) (*Table, error) {
	path, err := NewLocator(desc, o.dir).Locate()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("resolved gcode source", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
		}
		return nil, fmt.Errorf("failed to open gcode file: %w", err)
	}
	defer f.Close()

	return NewBuilder(opts...).Build(f)
}
