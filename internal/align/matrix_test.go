package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix_InitAndGetSet(t *testing.T) {
	m := NewMatrix()
	m.Init(3, 4)

	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 5, m.Cols())

	start := m.Get(0, 0).getS()
	assert.Equal(t, tbStart, start.tb)

	var c Cell
	c.setSAll(tbMatch, 7, 2, 1)
	m.Set(1, 1, c)

	got := m.Get(1, 1).getS()
	assert.Equal(t, tbMatch, got.tb)
	assert.Equal(t, uint32(7), got.len)
	assert.Equal(t, uint32(2), got.idx)
	assert.Equal(t, uint32(1), got.from)

	// cells not explicitly set remain START
	other := m.Get(2, 3).getS()
	assert.Equal(t, tbStart, other.tb)
}

func TestPackedCell_RoundTrip(t *testing.T) {
	var c packedCell
	c.setI(tbIns, 12345)
	tb, length := c.getI()
	assert.Equal(t, tbIns, tb)
	assert.Equal(t, uint32(12345), length)

	c.setSAll(tbSubst, 999, 255, 12345678)
	sv := c.getS()
	assert.Equal(t, tbSubst, sv.tb)
	assert.Equal(t, uint32(999), sv.len)
	assert.Equal(t, uint32(255), sv.idx)
	assert.Equal(t, uint32(12345678), sv.from)
}
