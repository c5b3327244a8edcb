package align

// SingleContigAligner owns one contig's DP state: the rolling two-column
// S/I/D score arrays and the full traceback matrix for that contig alone.
// MultiContigAligner drives many of these in lockstep, one column of the
// query at a time, so that a jump from any other contig can read that
// contig's already-filled S values for the previous query column.
//
// Layer naming follows the traceback dispatch, not the classic "insertion
// consumes the column" mnemonic: the I layer is the one the walker
// retraces by decrementing the row (it consumes a contig base with no
// query counterpart), and the D layer is retraced by decrementing the
// column (it consumes a query base with no contig counterpart). See
// DESIGN.md for why this differs from a literal reading of the layer
// recurrences as originally drafted.
type SingleContigAligner struct {
	Contig  Contig
	Scoring *Scoring

	S [2][]int
	I [2][]int
	D [2][]int

	// yClipBest[i] / Ly[i]: running best "end the alignment at row i,
	// clip the remaining query suffix" candidate, updated every column
	// since older columns are not retained once the rolling buffer moves on.
	yClipBest []int
	Ly        []int

	// Lx[j]: x-suffix clip length resolved once, at the final column.
	Lx []int

	tb *Matrix
}

// NewSingleContigAligner allocates state sized for contigs/queries up to
// mCap/nCap without reallocating; InitMatrices grows further if needed.
func NewSingleContigAligner(mCap, nCap int, scoring *Scoring) *SingleContigAligner {
	a := &SingleContigAligner{Scoring: scoring, tb: NewMatrix()}
	a.growRows(mCap)
	a.growCols(nCap)
	return a
}

func (a *SingleContigAligner) growRows(m int) {
	for k := 0; k < 2; k++ {
		if len(a.S[k]) < m+1 {
			a.S[k] = make([]int, m+1)
			a.I[k] = make([]int, m+1)
			a.D[k] = make([]int, m+1)
		}
	}
	if len(a.yClipBest) < m+1 {
		a.yClipBest = make([]int, m+1)
		a.Ly = make([]int, m+1)
	}
}

func (a *SingleContigAligner) growCols(n int) {
	if len(a.Lx) < n+1 {
		a.Lx = make([]int, n+1)
	}
}

func (a *SingleContigAligner) SetContigIdx(idx uint32) { a.Contig.idx = idx }
func (a *SingleContigAligner) SetCircular(c bool)      { a.Contig.Circular = c }
func (a *SingleContigAligner) ContigIdx() uint32       { return a.Contig.idx }

// Traceback exposes the full traceback matrix, used by the walker.
func (a *SingleContigAligner) Traceback() *Matrix { return a.tb }

// InitMatrices resizes DP state for a contig of length m against a query
// of length n, and primes column 0 (the x-prefix boundary): row i there is
// either a flat xclip_prefix (free/fixed cost restart before any contig
// base) or a paid affine-gap run down from row 0, whichever scores higher.
func (a *SingleContigAligner) InitMatrices(m, n int) {
	a.growRows(m)
	a.growCols(n)
	a.tb.Init(m, n)

	for i := range a.yClipBest[:m+1] {
		a.yClipBest[i] = MinScore
		a.Ly[i] = 0
	}
	for j := range a.Lx[:n+1] {
		a.Lx[j] = 0
	}

	s := a.Scoring
	a.S[0][0] = 0
	a.I[0][0] = MinScore
	a.D[0][0] = MinScore
	a.tb.Get(0, 0).setAll(tbStart, 0)
	a.tb.Get(0, 0).setSAll(tbStart, 0, a.Contig.idx, 0)

	for i := 1; i <= m; i++ {
		var gapScore int
		if i == 1 {
			gapScore = a.S[0][0] + s.GapOpen + s.GapExtend
		} else {
			gapScore = a.D[0][i-1] + s.GapExtend
		}
		a.D[0][i] = gapScore
		a.I[0][i] = MinScore

		clipScore := s.XClipPrefix
		if gapScore >= clipScore {
			a.S[0][i] = gapScore
			prevLen := a.tb.Get(i-1, 0).getSLen()
			a.tb.Get(i, 0).setD(tbDel, 1)
			a.tb.Get(i, 0).setSAll(tbDel, prevLen+1, a.Contig.idx, uint32(i-1))
		} else {
			a.S[0][i] = clipScore
			a.tb.Get(i, 0).setD(tbXClipPrefix, 0)
			a.tb.Get(i, 0).setSAll(tbXClipPrefix, 0, a.Contig.idx, 0)
		}
	}
}

// InitColumn primes row 0 of column j (the y-prefix boundary): the query
// prefix y[0:j) can either be clipped flat (yclip_prefix) or paid for by
// extending an insertion run across columns.
func (a *SingleContigAligner) InitColumn(j, curr int, n int) {
	s := a.Scoring
	prev := 1 - curr

	openScore := a.S[prev][0] + s.GapOpen + s.GapExtend
	extendScore := a.I[prev][0] + s.GapExtend
	gapScore := max(openScore, extendScore)
	a.I[curr][0] = gapScore
	a.D[curr][0] = MinScore

	clipScore := s.YClipPrefix
	if gapScore >= clipScore {
		a.S[curr][0] = gapScore
		var prevLen uint32
		if extendScore > openScore {
			prevLen = a.tb.Get(0, j-1).getILen()
		}
		a.tb.Get(0, j).setI(tbIns, prevLen+1)
		a.tb.Get(0, j).setSAll(tbIns, a.tb.Get(0, j-1).getS().len+1, a.Contig.idx, 0)
	} else {
		a.S[curr][0] = clipScore
		a.tb.Get(0, j).setI(tbYClipPrefix, 0)
		a.tb.Get(0, j).setSAll(tbYClipPrefix, 0, a.Contig.idx, 0)
	}

	candidate := a.S[curr][0] + s.YClipSuffix
	if candidate >= a.yClipBest[0] {
		a.yClipBest[0] = candidate
		a.Ly[0] = n - j
	}
}

// GetJumpInfo returns the best donor row within this contig's column
// prevCol (== j-1 of the column being filled) under the given jump
// penalty, with ties broken by (score desc, alignment length desc).
func (a *SingleContigAligner) GetJumpInfo(m, prevCol, jumpPenalty int) JumpInfo {
	parity := prevCol % 2
	best := JumpInfo{Score: MinScore, Len: 0, Idx: a.Contig.idx, From: 0}
	for i := 0; i <= m; i++ {
		score := a.S[parity][i] + jumpPenalty
		length := a.tb.Get(i, prevCol).getSLen()
		if betterJump(score, length, best.Score, best.Len) {
			best = JumpInfo{Score: score, Len: length, Idx: a.Contig.idx, From: uint32(i)}
		}
	}
	if a.Contig.Circular {
		wrapScore := a.S[parity][m]
		wrapLen := a.tb.Get(m, prevCol).getSLen()
		if betterJump(wrapScore, wrapLen, best.Score, best.Len) {
			best = JumpInfo{Score: wrapScore, Len: wrapLen, Idx: a.Contig.idx, From: 0}
		}
	}
	return best
}

func betterJump(score int, length uint32, bestScore int, bestLen uint32) bool {
	if score != bestScore {
		return score > bestScore
	}
	return length > bestLen
}

// FillColumn computes column j of the I/D/S DP matrices for this contig,
// given the jump candidate chosen for this contig in this column by the
// multi-contig coordinator.
func (a *SingleContigAligner) FillColumn(x, y []byte, m, n, j, prev, curr int, chosenJump JumpInfo) {
	s := a.Scoring

	for i := 1; i <= m; i++ {
		// I layer: consumes a contig base only (same column, prior row).
		sOpenI := a.S[curr][i-1] + s.GapOpen + s.GapExtend
		iExtend := a.I[curr][i-1] + s.GapExtend
		var iTag uint16
		var iLen uint32
		if iExtend > sOpenI {
			a.I[curr][i] = iExtend
			iTag = tbIns
			_, prevLen := a.tb.Get(i-1, j).getI()
			iLen = prevLen + 1
		} else {
			a.I[curr][i] = sOpenI
			iTag = a.tb.Get(i-1, j).getS().tb
			iLen = 1
		}
		a.tb.Get(i, j).setI(iTag, iLen)

		// D layer: consumes a query base only (prior column, same row).
		sOpenD := a.S[prev][i] + s.GapOpen + s.GapExtend
		dExtend := a.D[prev][i] + s.GapExtend
		var dTag uint16
		var dLen uint32
		if dExtend > sOpenD {
			a.D[curr][i] = dExtend
			dTag = tbDel
			_, prevLen := a.tb.Get(i, j-1).getD()
			dLen = prevLen + 1
		} else {
			a.D[curr][i] = sOpenD
			dTag = a.tb.Get(i, j-1).getS().tb
			dLen = 1
		}
		a.tb.Get(i, j).setD(dTag, dLen)

		matchScore := s.match(x[i-1], y[j-1])
		isMatch := x[i-1] == y[j-1]
		diagTag := tbSubst
		if isMatch {
			diagTag = tbMatch
		}

		diag := a.S[prev][i-1] + matchScore
		viaD := a.D[curr][i]
		viaI := a.I[curr][i]
		jumpDiag := chosenJump.Score + matchScore
		xclip := s.XClipPrefix
		yclip := s.YClipPrefix

		best := diag
		bestTag := diagTag
		bestLen := a.tb.Get(i-1, j-1).getS().len + 1
		bestIdx := a.Contig.idx
		bestFrom := uint32(i - 1)

		if viaD > best {
			best = viaD
			bestTag = tbDel
			bestLen = a.tb.Get(i, j-1).getS().len + 1
			bestIdx = a.Contig.idx
			bestFrom = uint32(i - 1)
		}
		if viaI > best {
			best = viaI
			bestTag = tbIns
			bestLen = a.tb.Get(i-1, j).getS().len + 1
			bestIdx = a.Contig.idx
			bestFrom = uint32(i - 1)
		}
		if jumpDiag > best {
			best = jumpDiag
			bestTag = diagTag
			bestLen = chosenJump.Len + 1
			bestIdx = chosenJump.Idx
			bestFrom = chosenJump.From
		}
		if xclip > best {
			best = xclip
			bestTag = tbXClipPrefix
			bestLen = 0
			bestIdx = a.Contig.idx
			bestFrom = 0
		}
		if yclip > best {
			best = yclip
			bestTag = tbYClipPrefix
			bestLen = 0
			bestIdx = a.Contig.idx
			bestFrom = 0
		}

		a.S[curr][i] = best
		a.tb.Get(i, j).setSAll(bestTag, bestLen, bestIdx, bestFrom)

		candidate := best + s.YClipSuffix
		if candidate >= a.yClipBest[i] {
			a.yClipBest[i] = candidate
			a.Ly[i] = n - j
		}
	}
}

// FillLastColumnAndEndClipping applies the x-suffix and y-suffix clip
// corrections to row m of the final column, once the whole matrix for
// this contig has been filled.
func (a *SingleContigAligner) FillLastColumnAndEndClipping(m, n int) {
	s := a.Scoring
	curr := n % 2

	final := a.S[curr][m]
	finalTag := a.tb.Get(m, n).getS().tb
	finalLen := a.tb.Get(m, n).getS().len

	bestXScore := MinScore
	bestXRow := m
	for i := 0; i <= m; i++ {
		candidate := a.S[curr][i] + s.XClipSuffix
		if candidate > bestXScore {
			bestXScore = candidate
			bestXRow = i
		}
	}
	if bestXScore > final {
		final = bestXScore
		finalTag = tbXClipSuffix
		finalLen = a.tb.Get(bestXRow, n).getSLen()
		a.Lx[n] = m - bestXRow
	}

	if a.yClipBest[m] > final {
		final = a.yClipBest[m]
		finalTag = tbYClipSuffix
	}

	a.S[curr][m] = final
	cur := a.tb.Get(m, n)
	s2 := cur.getS()
	cur.setSAll(finalTag, finalLen, s2.idx, s2.from)
}
