package align

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCigar_SimpleMatch(t *testing.T) {
	x := []byte("ACGTAACC")
	y := []byte("ACGTAACC")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobal()))

	a, err := aligner.Custom(y)
	require.NoError(t, err)

	cigar := Cigar(a, []Contig{{Name: "fwd", Forward: true, Seq: x}})
	assert.Equal(t, "8=", cigar)
}

func TestCigar_ContainsJumpOperator(t *testing.T) {
	x := []byte("AAGGCCTT")
	xRevcomp := reverseComplement(x)
	y := []byte("AACCGGTT")

	aligner := NewMultiContigAligner()
	require.NoError(t, aligner.AddContig("fwd", true, x, false, scoringGlobalCustom(-1, -100_000, -100_000, -1)))
	require.NoError(t, aligner.AddContig("revcomp", false, xRevcomp, false, scoringGlobalCustom(-1, -100_000, -100_000, -1)))

	a, err := aligner.Custom(y)
	require.NoError(t, err)

	contigs := []Contig{
		{Name: "fwd", Forward: true, Seq: x},
		{Name: "revcomp", Forward: false, Seq: xRevcomp},
	}
	cigar := Cigar(a, contigs)
	assert.True(t, strings.ContainsAny(cigar, "JjCc"), "expected a jump operator in %q", cigar)
}
