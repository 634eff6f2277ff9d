package gcode

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// cellPattern takes the first digit run (with an optional fractional part)
// that follows a word character or a hyphen. The prefix character is consumed
// by the match, so a leading minus sign never reaches the captured number.
// Word characters and digits are Unicode classes, not ASCII only.
var cellPattern = regexp.MustCompile(`[\pL\pN_-](\p{Nd}+(?:\.\p{Nd}+)?)`)

// Cell is a nullable float column value.
type Cell struct {
	Value float64
	Valid bool
}

// Float returns a valid cell holding v.
func Float(v float64) Cell {
	return Cell{Value: v, Valid: true}
}

// ParseCell decodes a raw parameter token such as "X12.5" or "F1200".
// Tokens without a numeric suffix decode to an invalid (null) cell.
func ParseCell(token string) Cell {
	m := cellPattern.FindStringSubmatch(token)
	if m == nil {
		return Cell{}
	}
	v, err := strconv.ParseFloat(asciiDigits(m[1]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Cell{}
	}
	// Out of range runs saturate to +Inf.
	return Float(v)
}

// asciiDigits rewrites every decimal digit to its ASCII form. Unicode lays
// out each decimal digit set as a contiguous 0-9 run, so a digit's value is
// its offset from the start of the surrounding run of Nd code points, mod 10.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 || !unicode.Is(unicode.Nd, r) {
			return r
		}
		n := 0
		for unicode.Is(unicode.Nd, r-rune(n)-1) {
			n++
		}
		return '0' + rune(n%10)
	}, s)
}

func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// NullFloat64 converts the cell for use with database/sql.
func (c Cell) NullFloat64() sql.NullFloat64 {
	return sql.NullFloat64{Float64: c.Value, Valid: c.Valid}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Cell{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Float(v)
	return nil
}
