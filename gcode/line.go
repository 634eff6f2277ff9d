package gcode

import (
	"fmt"
	"strings"
)

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = ";"

// ColumnMode selects how the tokens of a line are mapped to columns.
type ColumnMode int

const (
	// Positional assigns tokens by position:
	// Raw, Operation, X, Y, Z, Speed.
	Positional ColumnMode = iota
	// Addressed assigns parameters by their letter (X, Y, Z, F). The first
	// token carrying a G code becomes the Raw field.
	Addressed
)

func (m ColumnMode) String() string {
	switch m {
	case Positional:
		return "positional"
	case Addressed:
		return "addressed"
	}
	return fmt.Sprintf("ColumnMode(%d)", int(m))
}

// ParseColumnMode is the inverse of ColumnMode.String.
func ParseColumnMode(s string) (ColumnMode, error) {
	switch strings.ToLower(s) {
	case "", "positional":
		return Positional, nil
	case "addressed":
		return Addressed, nil
	}
	return Positional, fmt.Errorf("unknown column mode %q", s)
}

// Fields holds the raw string tokens of one line. Missing fields are empty.
type Fields struct {
	Raw       string
	Operation string
	X         string
	Y         string
	Z         string
	Speed     string
}

// SplitLine strips the comment from line and splits what remains on
// whitespace. It reports false for blank and comment-only lines.
func SplitLine(line string, mode ColumnMode) (Fields, bool) {
	if i := strings.Index(line, CommentMarker); i >= 0 {
		line = line[:i]
	}
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Fields{}, false
	}
	if mode == Addressed {
		return splitAddressed(tokens), true
	}

	var f Fields
	slots := []*string{&f.Raw, &f.Operation, &f.X, &f.Y, &f.Z, &f.Speed}
	for i := 0; i < len(tokens) && i < len(slots); i++ {
		*slots[i] = tokens[i]
	}
	return f, true
}

func splitAddressed(tokens []string) Fields {
	var f Fields
	set := func(dst *string, tok string) {
		if *dst == "" {
			*dst = tok
		}
	}
	for _, tok := range tokens {
		switch tok[0] {
		case 'G':
			if operationPattern.MatchString(tok) {
				set(&f.Raw, tok)
			}
		case 'X':
			set(&f.X, tok)
		case 'Y':
			set(&f.Y, tok)
		case 'Z':
			set(&f.Z, tok)
		case 'F':
			set(&f.Speed, tok)
		}
	}
	return f
}
