package gcode

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format is a table output format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatHTML   Format = "html"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatJSON, FormatHTML, FormatXLSX, FormatSQLite}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Binary reports whether the format cannot be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatXLSX || f == FormatSQLite
}

// Write encodes t to w. FormatSQLite needs a database file; use WriteSQLite.
func Write(w io.Writer, format Format, t *Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatHTML:
		return WriteHTML(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	case FormatSQLite:
		return fmt.Errorf("%s output needs a database path", format)
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteCSV writes a header row followed by one record per row.
// Null cells are written as empty fields.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if err := cw.Write(r.Strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
