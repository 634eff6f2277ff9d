package gcode

import "regexp"

// OperationSuffix is appended to the digits of a G code.
const OperationSuffix = "G"

var operationPattern = regexp.MustCompile(`G(\d+)`)

// droppedOperations are removed from every table: rapid moves, coordinate
// resets and lines without a G code.
var droppedOperations = map[string]struct{}{
	"0G":  {},
	"92G": {},
	"":    {},
}

// NormalizeOperation turns the G code of a line into "<digits>G".
// The raw token is searched first, then the operation token, so that
// numbered lines ("N10 G1 ...") resolve to the code that follows the
// line number. It returns "" when neither token carries a G code.
func NormalizeOperation(raw, op string) string {
	for _, tok := range []string{raw, op} {
		if m := operationPattern.FindStringSubmatch(tok); m != nil {
			return m[1] + OperationSuffix
		}
	}
	return ""
}

// Dropped reports whether rows with the given normalized operation are
// filtered out of the table.
func Dropped(operation string) bool {
	_, ok := droppedOperations[operation]
	return ok
}
