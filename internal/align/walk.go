package align

// walk reconstructs the single best alignment across every contig's
// filled traceback matrix: it first picks the contig/row whose final S
// value is the overall winner, then replays that contig's traceback tags
// backwards, following a jump to a different contig or row whenever the
// S-layer predecessor recorded there doesn't point at "one row up, same
// contig".
func walk(aligners []*SingleContigAligner, n int) (*Alignment, error) {
	if len(aligners) == 0 {
		return nil, newInvariantError("walk: no aligners")
	}

	j := n
	var operations []Operation
	xstart := 0
	ystart := 0
	yend := n

	alignerIdx := 0
	score := MinScore
	alignmentLength := 0
	for curIdx, cur := range aligners {
		if int(cur.ContigIdx()) != curIdx {
			return nil, newInvariantError("walk: aligner %d reports contig idx %d", curIdx, cur.ContigIdx())
		}
		m := cur.Traceback().Rows() - 1
		curScore := cur.S[n%2][m]
		curLen := int(cur.Traceback().Get(m, n).getSLen())

		update := false
		if curScore > score {
			update = true
		} else if curScore == score && curLen > alignmentLength {
			update = true
		}
		if update {
			alignerIdx = curIdx
			score = curScore
			alignmentLength = curLen
		}
	}

	curAligner := aligners[alignerIdx]
	curContigIdx := int(curAligner.ContigIdx())
	xlen := curAligner.Traceback().Rows() - 1
	i := curAligner.Traceback().Rows() - 1
	xend := curAligner.Traceback().Rows() - 1
	lastLayer := curAligner.Traceback().Get(i, j).getS().tb

loop:
	for {
		curAligner = aligners[curContigIdx]
		var nextLayer uint16

		switch lastLayer {
		case tbStart:
			break loop

		case tbIns:
			operations = append(operations, Operation{Kind: Ins})
			nextLayer, _ = curAligner.Traceback().Get(i, j).getI()
			i--

		case tbDel:
			operations = append(operations, Operation{Kind: Del})
			nextLayer, _ = curAligner.Traceback().Get(i, j).getD()
			j--

		case tbMatch, tbSubst:
			if lastLayer == tbMatch {
				operations = append(operations, Operation{Kind: Match})
			} else {
				operations = append(operations, Operation{Kind: Subst})
			}
			sv := curAligner.Traceback().Get(i, j).getS()
			sFrom := int(sv.from)
			if sv.idx != uint32(curContigIdx) || sFrom != i-1 {
				operations = append(operations, Operation{Kind: Xjump, FromContig: curContigIdx, Len: i - 1})
				curContigIdx = int(sv.idx)
				curAligner = aligners[curContigIdx]
			}
			i = sFrom
			j--
			nextLayer = curAligner.Traceback().Get(sFrom, j).getS().tb

		case tbXClipPrefix:
			nextLayer = curAligner.Traceback().Get(0, j).getS().tb
			// Only record the clip if nothing but more clips remain: a jump
			// may have already explained the rows before this one.
			if nextLayer == tbStart || nextLayer == tbYClipPrefix {
				operations = append(operations, Operation{Kind: Xclip, Len: i})
				xstart = i
			}
			i = 0

		case tbXClipSuffix:
			if len(operations) == 0 || operations[0].Kind == Yclip {
				operations = append(operations, Operation{Kind: Xclip, Len: curAligner.Lx[j]})
				xend = i - curAligner.Lx[j]
			}
			i -= curAligner.Lx[j]
			nextLayer = curAligner.Traceback().Get(i, j).getS().tb

		case tbYClipPrefix:
			operations = append(operations, Operation{Kind: Yclip, Len: j})
			ystart = j
			j = 0
			nextLayer = curAligner.Traceback().Get(i, 0).getS().tb

		case tbYClipSuffix:
			operations = append(operations, Operation{Kind: Yclip, Len: curAligner.Ly[i]})
			sFrom := int(curAligner.Traceback().Get(i, j).getS().from)
			j -= curAligner.Ly[i]
			if sFrom != i {
				operations = append(operations, Operation{Kind: Xjump, FromContig: curContigIdx, Len: i})
				i = sFrom
			}
			yend = j
			nextLayer = curAligner.Traceback().Get(i, j).getS().tb

		case tbXJump:
			sv := curAligner.Traceback().Get(i, j).getS()
			operations = append(operations, Operation{Kind: Xjump, FromContig: curContigIdx, Len: i})
			curContigIdx = int(sv.idx)
			curAligner = aligners[curContigIdx]
			i = int(sv.from)
			nextLayer = curAligner.Traceback().Get(i, j).getS().tb

		default:
			return nil, newInvariantError("walk: unexpected traceback tag %d", lastLayer)
		}

		lastLayer = nextLayer
	}

	for l, r := 0, len(operations)-1; l < r; l, r = l+1, r-1 {
		operations[l], operations[r] = operations[r], operations[l]
	}

	allClipOrJump := true
	for _, op := range operations {
		if op.Kind != Xclip && op.Kind != Yclip && op.Kind != Xjump {
			allClipOrJump = false
			break
		}
	}
	if allClipOrJump {
		xstart, xend, ystart, yend = 0, 0, 0, 0
	}

	return &Alignment{
		Score:      score,
		XStart:     xstart,
		XEnd:       xend,
		YStart:     ystart,
		YEnd:       yend,
		XLen:       xlen,
		YLen:       n,
		ContigIdx:  curContigIdx,
		Length:     alignmentLength,
		Operations: operations,
	}, nil
}
