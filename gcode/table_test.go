package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_ForwardFill(t *testing.T) {
	table := &Table{Rows: []Row{
		{Operation: "1G", Y: Float(1)},
		{Operation: "1G", X: Float(2)},
		{Operation: "1G"},
		{Operation: "1G", X: Float(3), Y: Float(4)},
	}}
	table.ForwardFill()

	assert.Equal(t, []Cell{{}, Float(2), Float(2), Float(3)}, table.Column(ColumnX))
	assert.Equal(t, []Cell{Float(1), Float(1), Float(1), Float(4)}, table.Column(ColumnY))
	assert.Equal(t, []Cell{{}, {}, {}, {}}, table.Column(ColumnZ))
}

func TestTable_ScaleSpeed(t *testing.T) {
	table := &Table{Rows: []Row{{Speed: Float(1200)}, {}}}
	table.ScaleSpeed(SpeedDivisor)
	assert.Equal(t, Float(0.02), table.Rows[0].Speed)
	assert.Equal(t, Cell{}, table.Rows[1].Speed)
}

func TestTable_Column(t *testing.T) {
	table := &Table{Rows: []Row{{Operation: "1G", Z: Float(1)}}}
	assert.Nil(t, table.Column(ColumnOperation))
	assert.Nil(t, table.Column("W"))
	assert.Equal(t, []Cell{Float(1)}, table.Column(ColumnZ))
}

func TestTable_Equal(t *testing.T) {
	a := &Table{Rows: []Row{{Operation: "1G", X: Float(1)}}}
	b := &Table{Rows: []Row{{Operation: "1G", X: Float(1)}}}
	c := &Table{Rows: []Row{{Operation: "2G", X: Float(1)}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(&Table{}))
	assert.False(t, a.Equal(nil))
}

func TestRow_Strings(t *testing.T) {
	r := Row{Operation: "2G", X: Float(1.25), Speed: Float(0.04)}
	assert.Equal(t, []string{"2G", "1.25", "", "", "0.04"}, r.Strings())
}
