package align

// simpleCell stores every field at full width with no packing. It trades
// memory for simplicity and is selected by the low_mem build tag as the
// fallback representation when the packed cell's field widths would be too
// narrow for a given run (very long contigs with many jumps).
type simpleCell struct {
	iTB  uint16
	iLen uint32

	dTB  uint16
	dLen uint32

	s sValue
}

func (c *simpleCell) setI(tb uint16, length uint32) { c.iTB, c.iLen = tb, length }
func (c *simpleCell) setD(tb uint16, length uint32) { c.dTB, c.dLen = tb, length }
func (c *simpleCell) setS(tb uint16, length uint32) {
	c.s.tb, c.s.len = tb, length
}
func (c *simpleCell) setSAll(tb uint16, length, idx, from uint32) {
	c.s = sValue{tb: tb, len: length, idx: idx, from: from}
}
func (c *simpleCell) setAll(tb uint16, length uint32) { setAllOn(c, tb, length) }

func (c *simpleCell) getI() (uint16, uint32) { return c.iTB, c.iLen }
func (c *simpleCell) getD() (uint16, uint32) { return c.dTB, c.dLen }
func (c *simpleCell) getS() sValue           { return c.s }
func (c *simpleCell) getILen() uint32        { return c.iLen }
func (c *simpleCell) getDLen() uint32        { return c.dLen }
func (c *simpleCell) getSLen() uint32        { return c.s.len }

// simpleMaxTargetLen and simpleMaxNumContigs are unbounded in practice: all
// fields are already full-width uint32.
func simpleMaxTargetLen() uint32  { return ^uint32(0) }
func simpleMaxNumContigs() uint32 { return ^uint32(0) }
