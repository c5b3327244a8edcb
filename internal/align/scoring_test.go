package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoring_Defaults(t *testing.T) {
	s := NewScoring(SimpleMatchFunc(1, -1), -5, -1)
	assert.Equal(t, MinScore, s.XClipPrefix)
	assert.Equal(t, MinScore, s.YClipSuffix)
	assert.Equal(t, MinScore, s.JumpSameContigSameStrand)
}

func TestScoring_SetClipsLocal(t *testing.T) {
	s := NewScoring(SimpleMatchFunc(1, -1), -5, -1).SetClipsLocal()
	assert.Zero(t, s.XClipPrefix)
	assert.Zero(t, s.XClipSuffix)
	assert.Zero(t, s.YClipPrefix)
	assert.Zero(t, s.YClipSuffix)
}

func TestScoring_WithJumpScore(t *testing.T) {
	s := WithJumpScore(-5, -1, -2, SimpleMatchFunc(1, -1))
	assert.Equal(t, -2, s.JumpSameContigSameStrand)
	assert.Equal(t, -2, s.JumpSameContigOppositeStrand)
	assert.Equal(t, -2, s.JumpInterContig)
}

func TestScoring_SetJumpScores(t *testing.T) {
	s := NewScoring(SimpleMatchFunc(1, -1), -5, -1).SetJumpScores(-1, -2, -3)
	assert.Equal(t, -1, s.JumpSameContigSameStrand)
	assert.Equal(t, -2, s.JumpSameContigOppositeStrand)
	assert.Equal(t, -3, s.JumpInterContig)
}

func TestSimpleMatchFunc(t *testing.T) {
	f := SimpleMatchFunc(2, -3)
	assert.Equal(t, 2, f('A', 'A'))
	assert.Equal(t, -3, f('A', 'T'))
}
