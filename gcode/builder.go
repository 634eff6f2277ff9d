package gcode

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
)

// lineBreak matches "\r\n", "\n" and a lone "\r".
var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// SpeedDivisor converts a feed rate in mm/min to m/s.
const SpeedDivisor = 60 * 1000

type options struct {
	mode   ColumnMode
	dir    string
	logger *slog.Logger
}

// Option configures a Builder or BuildTable.
type Option func(*options)

// WithColumnMode selects how line tokens map to columns. Default Positional.
func WithColumnMode(m ColumnMode) Option {
	return func(o *options) { o.mode = m }
}

// WithSearchDir sets the directory searched when no descriptor is given.
// Default is the working directory.
func WithSearchDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{mode: Positional}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Builder turns Gcode text into a Table.
type Builder struct {
	mode   ColumnMode
	logger *slog.Logger
}

func NewBuilder(opts ...Option) *Builder {
	o := newOptions(opts)
	return &Builder{
		mode:   o.mode,
		logger: o.logger,
	}
}

// Build reads r to the end and returns the filtered, forward-filled table
// with speeds in m/s. Malformed lines never fail the build.
func (b *Builder) Build(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gcode: %w", err)
	}

	table := &Table{}
	var skipped, dropped int
	for _, line := range lineBreak.Split(string(data), -1) {
		f, ok := SplitLine(line, b.mode)
		if !ok {
			skipped++
			continue
		}
		op := NormalizeOperation(f.Raw, f.Operation)
		if Dropped(op) {
			dropped++
			continue
		}
		table.Rows = append(table.Rows, Row{
			Operation: op,
			X:         ParseCell(f.X),
			Y:         ParseCell(f.Y),
			Z:         ParseCell(f.Z),
			Speed:     ParseCell(f.Speed),
		})
	}

	table.ForwardFill()
	table.ScaleSpeed(SpeedDivisor)

	b.logger.Debug("built gcode table",
		slog.String("mode", b.mode.String()),
		slog.Int("rows", table.Len()),
		slog.Int("skipped_lines", skipped),
		slog.Int("dropped_lines", dropped))
	return table, nil
}
