package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reverseComplement(seq []byte) []byte {
	complement := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = complement[b]
	}
	return out
}

func scoringGlobalCustom(mismatch, gapOpen, gapExtend, jumpScore int) *Scoring {
	s := WithJumpScore(gapOpen, gapExtend, jumpScore, SimpleMatchFunc(1, mismatch))
	return s.SetClipsGlobal()
}

func scoringGlobal() *Scoring {
	return scoringGlobalCustom(-1, -5, -1, -10)
}

func scoringLocalCustom(mismatch, gapOpen, gapExtend, jumpScore int) *Scoring {
	s := WithJumpScore(gapOpen, gapExtend, jumpScore, SimpleMatchFunc(1, mismatch))
	return s.SetClipsLocal()
}

func assertAlignment(t *testing.T, a *Alignment, xstart, xend, ystart, yend, score, contigIdx, length int) {
	t.Helper()
	assert.Equal(t, xstart, a.XStart, "xstart")
	assert.Equal(t, xend, a.XEnd, "xend")
	assert.Equal(t, ystart, a.YStart, "ystart")
	assert.Equal(t, yend, a.YEnd, "yend")
	assert.Equal(t, score, a.Score, "score")
	assert.Equal(t, contigIdx, a.ContigIdx, "contig_idx")
	assert.Equal(t, length, a.Length, "length")
}

func TestMultiContigAligner_Identical(t *testing.T) {
	x := []byte("ACGTAACC")
	xRevcomp := reverseComplement(x)
	y := []byte("ACGTAACC")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobal()))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobal()))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 8, 0, 8, 8, 0, 8)
}

func TestMultiContigAligner_IdenticalRevcomp(t *testing.T) {
	x := []byte("ACGTAACC")
	xRevcomp := reverseComplement(x)
	y := reverseComplement([]byte("ACGTAACC"))

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobal()))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobal()))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 8, 0, 8, 8, 1, 8)
}

func TestMultiContigAligner_FwdToFwdJump(t *testing.T) {
	x := []byte("AAGGCCTT")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-1, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-1, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 8, 0, 8, 8-1-1-1, 0, 8)
}

func TestMultiContigAligner_FwdToRevJump(t *testing.T) {
	x := []byte("AACCTTGG")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 8, 0, 8, 8-1, 0, 8)
}

func TestMultiContigAligner_RevToFwdJump(t *testing.T) {
	x := []byte("CCAAGGTT")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 8, 0, 8, 8-1, 1, 8)
}

func TestMultiContigAligner_FwdToRevLongJump(t *testing.T) {
	x := []byte("AACCAAAATTGG")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 12, 0, 8, 8-1, 0, 8)
}

func TestMultiContigAligner_RevToFwdLongJump(t *testing.T) {
	x := []byte("CCAANNNNGGTT")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-100_000, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 12, 0, 8, 8-1, 1, 8)
}

func TestMultiContigAligner_ManyContigs(t *testing.T) {
	x1 := []byte("TATATCCCCCTATATATATATATATATA")
	x2 := []byte("ATATATTATATATATATATATATGGGGG")
	x3 := []byte("AAAAA")
	x4 := []byte("TTTTTTTTTTTTTTTT")
	y1 := []byte("AAAAACCCCCGGGGGAAAAATTTTTTTTTTTTTTTT")

	aligner := NewMultiContigAligner()
	for i, x := range [][]byte{x1, x2, x3, x4} {
		name := []byte("contig-0")
		name[len(name)-1] = byte('0' + i)
		require.NoError(t, aligner.AddContig(string(name), true, x, false, scoringLocalCustom(-100_000, -100_000, -100_000, -1)))
	}

	a, err := aligner.Custom(y1)
	require.NoError(t, err)
	assertAlignment(t, a, 0, 16, 0, 36, 36-1-1-1-1, 2, 36)
}

func TestMultiContigAligner_JumpScores(t *testing.T) {
	x1 := []byte("AAAAATTTTTAAAAA")
	x2 := reverseComplement(x1)
	x3 := []byte("AAAAA")
	y1 := []byte("AAAAAAAAAA")

	build := func() *MultiContigAligner {
		aligner := NewMultiContigAligner()
		require.NoError(t, aligner.AddContig("chr1", true, x1, false, scoringLocalCustom(-1, -100_000, -100_000, -1)))
		require.NoError(t, aligner.AddContig("chr1", false, x2, false, scoringLocalCustom(-1, -100_000, -100_000, -1)))
		require.NoError(t, aligner.AddContig("chr2", true, x3, false, scoringLocalCustom(-1, -100_000, -100_000, -1)))
		return aligner
	}

	setJumps := func(a *MultiContigAligner, same, flip, inter int) {
		for _, c := range a.contigs {
			c.aligner.Scoring.SetJumpScores(same, flip, inter)
		}
	}

	t.Run("same contig and strand prioritized", func(t *testing.T) {
		a := build()
		setJumps(a, -1, -2, -2)
		alignment, err := a.Custom(y1)
		require.NoError(t, err)
		assertAlignment(t, alignment, 0, 15, 0, 10, 10-1, 0, 10)
	})

	t.Run("same contig opposite strand prioritized", func(t *testing.T) {
		a := build()
		setJumps(a, -2, -1, -2)
		alignment, err := a.Custom(y1)
		require.NoError(t, err)
		assertAlignment(t, alignment, 5, 15, 0, 10, 10-1, 1, 10)
	})

	t.Run("inter-contig jump prioritized", func(t *testing.T) {
		a := build()
		setJumps(a, -2, -2, -1)
		alignment, err := a.Custom(y1)
		require.NoError(t, err)
		assertAlignment(t, alignment, 0, 15, 0, 10, 10-1, 2, 10)
	})

	t.Run("tie favors same contig and strand", func(t *testing.T) {
		a := build()
		setJumps(a, -1, -1, -1)
		alignment, err := a.Custom(y1)
		require.NoError(t, err)
		assertAlignment(t, alignment, 0, 15, 0, 10, 10-1, 0, 10)
	})

	t.Run("tie favors same contig opposite strand over inter-contig", func(t *testing.T) {
		a := build()
		setJumps(a, -2, -1, -1)
		alignment, err := a.Custom(y1)
		require.NoError(t, err)
		assertAlignment(t, alignment, 5, 15, 0, 10, 10-1, 1, 10)
	})
}

func TestJumpInfoForInterContig_TieBreaksToLastCandidate(t *testing.T) {
	self := NewSingleContigAligner(0, 0, nil)
	self.SetContigIdx(0)
	c := &contigAligner{name: "self", isForward: true, aligner: self}

	infos := []JumpInfo{
		{Score: 5, Len: 3, Idx: 0, From: 0},  // self, excluded
		{Score: 10, Len: 4, Idx: 1, From: 7}, // tied with idx 2 below
		{Score: 10, Len: 4, Idx: 2, From: 9}, // same (score, len): Rust's max_by_key keeps this, the LAST one
	}

	best, found := jumpInfoForInterContig(c, infos, -1)
	require.True(t, found)
	assert.Equal(t, uint32(2), best.Idx, "ties must resolve to the last-registered candidate, not the first")
	assert.Equal(t, uint32(9), best.From)
}

func TestMultiContigAligner_ConfigErrors(t *testing.T) {
	t.Run("duplicate contig", func(t *testing.T) {
		aligner := NewMultiContigAligner()
		require.NoError(t, aligner.AddContig("fwd", true, []byte("ACGT"), false, scoringGlobal()))
		err := aligner.AddContig("fwd", true, []byte("ACGT"), false, scoringGlobal())
		require.Error(t, err)
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("no contigs", func(t *testing.T) {
		aligner := NewMultiContigAligner()
		_, err := aligner.Custom([]byte("ACGT"))
		require.Error(t, err)
	})
}
