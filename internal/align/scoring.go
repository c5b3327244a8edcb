// Package align implements the multi-contig jump alignment engine: an
// affine-gap dynamic-programming aligner that can teleport the alignment
// cursor between contigs and strands mid-alignment.
//
// Aria equivalent:
//
//	fn custom(query: Bytes, contigs: [Contig], scoring: Scoring) -> Alignment
//	  requires contigs.len() > 0
//	  ensures result.operations.count(Match | Subst | Ins | Del) == result.length
package align

// MinScore is the sentinel for "impossible". It is kept far enough from
// zero that adding any bounded gap or clip penalty to it cannot overflow
// or wrap back toward a competitive score.
const MinScore = -(1 << 30)

// MatchFunc scores a pair of reference/query bytes.
type MatchFunc func(a, b byte) int

// SimpleMatchFunc returns a MatchFunc that scores identical bytes as match
// and everything else as mismatch.
func SimpleMatchFunc(match, mismatch int) MatchFunc {
	return func(a, b byte) int {
		if a == b {
			return match
		}
		return mismatch
	}
}

// Scoring holds the numeric parameters for the alignment engine: match
// scoring, affine gap costs, clip costs on all four ends, and the three
// jump penalties.
//
// Setting an xclip/yclip field to MinScore makes that end behave globally
// (the clip is never worth taking); setting it to 0 makes that end local
// (the clip is always free).
type Scoring struct {
	MatchFn MatchFunc

	GapOpen   int
	GapExtend int

	XClipPrefix int
	XClipSuffix int
	YClipPrefix int
	YClipSuffix int

	JumpSameContigSameStrand     int
	JumpSameContigOppositeStrand int
	JumpInterContig              int
}

// NewScoring builds a Scoring with global clip behaviour (no free clips)
// and jumps disabled (MinScore), matching the conventional Needleman-Wunsch
// starting point. Callers relax clip/jump fields afterwards as needed.
func NewScoring(matchFn MatchFunc, gapOpen, gapExtend int) *Scoring {
	return &Scoring{
		MatchFn:                      matchFn,
		GapOpen:                      gapOpen,
		GapExtend:                    gapExtend,
		XClipPrefix:                  MinScore,
		XClipSuffix:                  MinScore,
		YClipPrefix:                  MinScore,
		YClipSuffix:                  MinScore,
		JumpSameContigSameStrand:     MinScore,
		JumpSameContigOppositeStrand: MinScore,
		JumpInterContig:              MinScore,
	}
}

// WithJumpScore is a convenience constructor that sets all three jump
// penalties to the same value, mirroring the common case of a single
// flat jump cost regardless of destination.
func WithJumpScore(gapOpen, gapExtend, jumpScore int, matchFn MatchFunc) *Scoring {
	s := NewScoring(matchFn, gapOpen, gapExtend)
	return s.SetJumpScores(jumpScore, jumpScore, jumpScore)
}

// SetJumpScores rescores the three jump variants in place and returns the
// receiver for chaining.
func (s *Scoring) SetJumpScores(same, flip, inter int) *Scoring {
	s.JumpSameContigSameStrand = same
	s.JumpSameContigOppositeStrand = flip
	s.JumpInterContig = inter
	return s
}

// SetClipsLocal sets all four clip scores to 0 (fully local on every end).
func (s *Scoring) SetClipsLocal() *Scoring {
	s.XClipPrefix, s.XClipSuffix, s.YClipPrefix, s.YClipSuffix = 0, 0, 0, 0
	return s
}

// SetClipsGlobal sets all four clip scores to MinScore (fully global).
func (s *Scoring) SetClipsGlobal() *Scoring {
	s.XClipPrefix, s.XClipSuffix, s.YClipPrefix, s.YClipSuffix = MinScore, MinScore, MinScore, MinScore
	return s
}

func (s *Scoring) match(a, b byte) int {
	return s.MatchFn(a, b)
}
