package gcode

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, input string, opts ...Option) *Table {
	t.Helper()
	table, err := NewBuilder(opts...).Build(strings.NewReader(input))
	require.NoError(t, err)
	return table
}

func TestBuild_NumberedMove(t *testing.T) {
	table := build(t, "N10 G1 X10.500 Y-20.3 Z5 F1200 ; move\n")

	require.Equal(t, 1, table.Len())
	assert.Equal(t, Row{
		Operation: "1G",
		X:         Float(10.5),
		Y:         Float(20.3),
		Z:         Float(5),
		Speed:     Float(0.02),
	}, table.Rows[0])
}

func TestBuild_PositionResetDropped(t *testing.T) {
	table := build(t, "G92 X0 Y0 Z0\n")
	assert.Equal(t, 0, table.Len())
}

func TestBuild_BlankAndCommentLines(t *testing.T) {
	table := build(t, "\n   \n; comment\n;G1 X1 Y2 Z3 F4\n")
	assert.Equal(t, 0, table.Len())

	table = build(t, "")
	assert.Equal(t, 0, table.Len())
}

func TestBuild_MalformedCellIsFilled(t *testing.T) {
	table := build(t, "N1 G1 X4 Y1 Z1 F60000\nN2 G1 X Y2 Z2 F60000\n")
	require.Equal(t, 2, table.Len())
	assert.Equal(t, Float(4), table.Rows[1].X)
	assert.Equal(t, Float(1), table.Rows[1].Speed)
}

func TestBuild_MalformedFirstCellStaysNull(t *testing.T) {
	table := build(t, "N1 G1 X Y1\nN2 G1 X5 Y2\nN3 G1 X Y3\n")
	assert.Equal(t, []Cell{{}, Float(5), Float(5)}, table.Column(ColumnX))
	assert.Equal(t, []Cell{{}, {}, {}}, table.Column(ColumnSpeed))
}

func TestBuild_DropsRapidAndUnknownOperations(t *testing.T) {
	input := strings.Join([]string{
		"N1 G0 X1 Y1 Z1 F100",
		"N2 M104 S200",
		"N3 G1 X2 Y2 Z2 F6000",
		"T0",
		"N4 G92 X0",
		"N5 G3 X3 Y3 Z3",
	}, "\n")
	table := build(t, input)
	assert.Equal(t, []string{"1G", "3G"}, table.Operations())
	for _, op := range table.Operations() {
		assert.False(t, Dropped(op))
	}
}

func TestBuild_DroppedRowsDoNotFeedFill(t *testing.T) {
	// The G0 speed must not leak into the following row.
	table := build(t, "N1 G0 X1 Y1 Z1 F6000\nN2 G1 X2 Y2 Z2\n")
	require.Equal(t, 1, table.Len())
	assert.False(t, table.Rows[0].Speed.Valid)
}

func TestBuild_ForwardFillCompleteness(t *testing.T) {
	input := strings.Join([]string{
		"N1 G28",
		"N2 G1 X1",
		"N3 G1 X2 Y5",
		"N4 G1 X Y Z7 F1200",
		"N5 G1",
		"N6 G1 X9",
	}, "\n")
	table := build(t, input)

	for _, name := range []string{ColumnX, ColumnY, ColumnZ, ColumnSpeed} {
		seen := false
		for i, c := range table.Column(name) {
			if c.Valid {
				seen = true
				continue
			}
			assert.False(t, seen, "column %s row %d is null after a value", name, i)
		}
	}
	assert.Equal(t, Float(7), table.Rows[5].Z)
	assert.Equal(t, Float(0.02), table.Rows[5].Speed)
}

func TestBuild_SpeedUnits(t *testing.T) {
	raw := []float64{600, 1500, 3000, 7200}
	lines := make([]string, len(raw))
	for i, v := range raw {
		lines[i] = "N1 G1 X1 Y1 Z1 F" + Float(v).String()
	}
	table := build(t, strings.Join(lines, "\n"))

	require.Equal(t, len(raw), table.Len())
	for i, v := range raw {
		assert.Equal(t, v/60000, table.Rows[i].Speed.Value)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	input := "N1 G1 X1 Y2 Z3 F600\nN2 G1 X4\nN3 G2 X5 Y6 Z7 F1200\n"
	first := build(t, input)
	second := build(t, input)
	assert.True(t, first.Equal(second))
}

func TestBuild_CRLF(t *testing.T) {
	table := build(t, "N1 G1 X1 Y2 Z3 F600\r\nN2 G1 X4 Y5 Z6 F1200\r\n")
	require.Equal(t, 2, table.Len())
	assert.Equal(t, Float(0.02), table.Rows[1].Speed)
}

func TestBuild_CR(t *testing.T) {
	table := build(t, "G1 X1 F60000\rG1 X2\r", WithColumnMode(Addressed))
	require.Equal(t, 2, table.Len())
	assert.Equal(t, Row{Operation: "1G", X: Float(1), Speed: Float(1)}, table.Rows[0])
	assert.Equal(t, Float(2), table.Rows[1].X)
}

func TestBuild_MixedLineEndings(t *testing.T) {
	table := build(t, "N1 G1 X1 Y1 Z1 F600\rN2 G1 X2\r\nN3 G1 X3\n\r; note\rN4 G1 X4")
	assert.Equal(t, []Cell{Float(1), Float(2), Float(3), Float(4)}, table.Column(ColumnX))
}

func TestBuild_Addressed(t *testing.T) {
	table := build(t, "G1 X10 Y20 Z0.3 F1200\nG1 Y25\n", WithColumnMode(Addressed))
	require.Equal(t, 2, table.Len())
	assert.Equal(t, Row{
		Operation: "1G",
		X:         Float(10),
		Y:         Float(25),
		Z:         Float(0.3),
		Speed:     Float(0.02),
	}, table.Rows[1])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestBuild_ReadError(t *testing.T) {
	_, err := NewBuilder().Build(failingReader{})
	assert.ErrorContains(t, err, "disk on fire")
}
