package align

// Traceback tags. Sixteen values fit comfortably in 4 bits, which is what
// the packed cell representation budgets for the tag field.
const (
	tbStart uint16 = iota
	tbIns
	tbDel
	tbSubst
	tbMatch
	tbXClipPrefix
	tbXClipSuffix
	tbYClipPrefix
	tbYClipSuffix
	tbXJump
	tbMax = tbXJump
)

// sValue is the traceback payload for the S (substitution/match) layer: a
// tag plus the run length, contig index, and origin row needed to detect
// and replay a jump.
type sValue struct {
	tb   uint16
	len  uint32
	idx  uint32
	from uint32
}

// setAllOn applies the same tag/length to all three layers of a cell. Both
// cell variants share this helper since set_all never touches idx/from.
func setAllOn(c interface {
	setI(tb uint16, length uint32)
	setD(tb uint16, length uint32)
	setS(tb uint16, length uint32)
}, tb uint16, length uint32) {
	c.setI(tb, length)
	c.setD(tb, length)
	c.setS(tb, length)
}
