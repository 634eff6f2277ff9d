package gcode

// Column names, in output order.
const (
	ColumnOperation = "Operation"
	ColumnX         = "X"
	ColumnY         = "Y"
	ColumnZ         = "Z"
	ColumnSpeed     = "Speed"
)

// Columns lists the table header.
var Columns = []string{ColumnOperation, ColumnX, ColumnY, ColumnZ, ColumnSpeed}

// Row is one retained motion command.
type Row struct {
	Operation string `json:"operation"`
	X         Cell   `json:"x"`
	Y         Cell   `json:"y"`
	Z         Cell   `json:"z"`
	Speed     Cell   `json:"speed"`
}

func (r *Row) cells() [4]*Cell {
	return [4]*Cell{&r.X, &r.Y, &r.Z, &r.Speed}
}

// Strings renders the row in Columns order, with "" for null cells.
func (r Row) Strings() []string {
	return []string{r.Operation, r.X.String(), r.Y.String(), r.Z.String(), r.Speed.String()}
}

// Table is an ordered sequence of rows; the order is the input line order.
type Table struct {
	Rows []Row `json:"rows"`
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// ForwardFill replaces every null cell with the closest preceding valid value
// of the same column. Leading nulls stay null.
func (t *Table) ForwardFill() {
	var last [4]Cell
	for i := range t.Rows {
		for j, c := range t.Rows[i].cells() {
			if c.Valid {
				last[j] = *c
			} else {
				*c = last[j]
			}
		}
	}
}

// ScaleSpeed divides every valid Speed cell by divisor.
func (t *Table) ScaleSpeed(divisor float64) {
	for i := range t.Rows {
		if t.Rows[i].Speed.Valid {
			t.Rows[i].Speed.Value /= divisor
		}
	}
}

// Column returns the numeric column with the given name, or nil if name is
// not one of X, Y, Z or Speed.
func (t *Table) Column(name string) []Cell {
	var idx int
	switch name {
	case ColumnX:
		idx = 0
	case ColumnY:
		idx = 1
	case ColumnZ:
		idx = 2
	case ColumnSpeed:
		idx = 3
	default:
		return nil
	}
	out := make([]Cell, len(t.Rows))
	for i := range t.Rows {
		out[i] = *t.Rows[i].cells()[idx]
	}
	return out
}

// Operations returns the Operation column.
func (t *Table) Operations() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Operation
	}
	return out
}

func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Rows {
		if t.Rows[i] != other.Rows[i] {
			return false
		}
	}
	return true
}
