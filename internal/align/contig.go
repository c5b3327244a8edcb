package align

// Contig is one reference sequence (on one strand) that a query may be
// aligned, and jumped, against.
//
// Two Contig values with the same Name but opposite Forward flags are
// understood by MultiContigAligner to be the two strands of the same
// physical sequence, and become eligible for same-contig-opposite-strand
// jumps against each other.
type Contig struct {
	Name     string
	Forward  bool
	Seq      []byte
	Circular bool

	// idx is assigned by MultiContigAligner.AddContig, in insertion order.
	idx uint32
}

func (c *Contig) Len() int { return len(c.Seq) }

// JumpInfo describes the best donor cell a column may jump in from: the
// score that donor cell carries plus the jump penalty already applied, the
// S-layer run length recorded there, which contig it belongs to, and which
// row within that contig.
type JumpInfo struct {
	Score int
	Len   uint32
	Idx   uint32
	From  uint32
}
