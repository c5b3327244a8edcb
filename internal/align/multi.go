package align

// contigAligner pairs a contig's bytes with the SingleContigAligner that
// fills its DP state.
type contigAligner struct {
	name      string
	isForward bool
	seq       []byte
	aligner   *SingleContigAligner
}

func (c *contigAligner) len() int { return len(c.seq) }

// MultiContigAligner coordinates many SingleContigAligners over a shared
// query, column by column, so a column's jump candidates can read every
// contig's already-filled S values for the previous column.
type MultiContigAligner struct {
	contigs       []*contigAligner
	nameToForward map[string]int
	nameToRevcomp map[string]int
}

// NewMultiContigAligner returns an aligner with no contigs yet.
func NewMultiContigAligner() *MultiContigAligner {
	return &MultiContigAligner{
		nameToForward: make(map[string]int),
		nameToRevcomp: make(map[string]int),
	}
}

func (m *MultiContigAligner) hashmapForStrand(isForward bool) map[string]int {
	if isForward {
		return m.nameToForward
	}
	return m.nameToRevcomp
}

// AddContig registers a new contig/strand pair, assigning it the next
// contig index in insertion order. It is a ConfigError to add the same
// (name, isForward) pair twice, or a contig too long for the active cell
// representation's fields, or once the engine already holds the maximum
// number of contigs the active cell representation can index.
func (m *MultiContigAligner) AddContig(name string, isForward bool, seq []byte, circular bool, scoring *Scoring) error {
	if _, exists := m.hashmapForStrand(isForward)[name]; exists {
		return newConfigError("contig already added: name=%q is_forward=%v", name, isForward)
	}
	if uint32(len(seq)) >= cellMaxTargetLen() {
		return newConfigError("contig %q length %d exceeds cell capacity %d", name, len(seq), cellMaxTargetLen())
	}
	contigIdx := len(m.contigs)
	if uint32(contigIdx) >= cellMaxNumContigs() {
		return newConfigError("contig count %d exceeds cell capacity %d", contigIdx+1, cellMaxNumContigs())
	}

	aligner := NewSingleContigAligner(len(seq), 0, scoring)
	aligner.SetContigIdx(uint32(contigIdx))
	aligner.SetCircular(circular)

	m.contigs = append(m.contigs, &contigAligner{
		name:      name,
		isForward: isForward,
		seq:       seq,
		aligner:   aligner,
	})
	m.hashmapForStrand(isForward)[name] = contigIdx
	return nil
}

func jumpInfoForContig(c *contigAligner, j int) JumpInfo {
	return c.aligner.GetJumpInfo(c.len(), j-1, c.aligner.Scoring.JumpSameContigSameStrand)
}

func (m *MultiContigAligner) jumpInfoForOppositeStrand(oppIdx int, j int) (JumpInfo, bool) {
	if oppIdx < 0 {
		return JumpInfo{}, false
	}
	opp := m.contigs[oppIdx]
	info := opp.aligner.GetJumpInfo(opp.len(), j-1, opp.aligner.Scoring.JumpSameContigOppositeStrand)
	info.Idx = opp.aligner.ContigIdx()
	return info, true
}

func jumpInfoForInterContig(c *contigAligner, interContigJumpInfos []JumpInfo, oppIdx int) (JumpInfo, bool) {
	excludeOpp := c.aligner.ContigIdx()
	if oppIdx >= 0 {
		excludeOpp = uint32(oppIdx)
	}
	best := JumpInfo{Score: MinScore}
	found := false
	for _, info := range interContigJumpInfos {
		if info.Idx == c.aligner.ContigIdx() || info.Idx == excludeOpp {
			continue
		}
		// Ties (equal score and length) keep the LAST candidate seen, matching
		// Rust's Iterator::max_by_key semantics in the original jump_info_for_inter_contig.
		if !found || !betterJump(best.Score, best.Len, info.Score, info.Len) {
			best = info
			found = true
		}
	}
	return best, found
}

// Custom computes the jump-capable alignment of query y against every
// registered contig, and returns the single best-scoring alignment across
// all of them.
func (m *MultiContigAligner) Custom(y []byte) (*Alignment, error) {
	if len(m.contigs) == 0 {
		return nil, newConfigError("no contigs registered")
	}

	n := len(y)

	for _, c := range m.contigs {
		c.aligner.InitMatrices(c.len(), n)
	}

	for j := 1; j <= n; j++ {
		curr := j % 2
		prev := 1 - curr

		for _, c := range m.contigs {
			c.aligner.InitColumn(j, curr, n)
		}

		interContigJumpInfos := make([]JumpInfo, len(m.contigs))
		for i, c := range m.contigs {
			info := c.aligner.GetJumpInfo(c.len(), j-1, c.aligner.Scoring.JumpInterContig)
			info.Idx = c.aligner.ContigIdx()
			interContigJumpInfos[i] = info
		}

		bestJumpInfos := make([]JumpInfo, len(m.contigs))
		for i, c := range m.contigs {
			oppIdx, hasOpp := m.hashmapForStrand(!c.isForward)[c.name]
			if !hasOpp {
				oppIdx = -1
			}

			same := jumpInfoForContig(c, j)
			flip, hasFlip := m.jumpInfoForOppositeStrand(oppIdx, j)
			inter, hasInter := jumpInfoForInterContig(c, interContigJumpInfos, oppIdx)

			best := same
			if hasFlip && flip.Score > best.Score {
				best = flip
			}
			if hasInter && inter.Score > best.Score {
				best = inter
			}
			bestJumpInfos[i] = best
		}

		for i, c := range m.contigs {
			c.aligner.FillColumn(c.seq, y, c.len(), n, j, prev, curr, bestJumpInfos[i])
		}
	}

	for _, c := range m.contigs {
		c.aligner.FillLastColumnAndEndClipping(c.len(), n)
	}

	aligners := make([]*SingleContigAligner, len(m.contigs))
	for i, c := range m.contigs {
		aligners[i] = c.aligner
	}
	return walk(aligners, n)
}
