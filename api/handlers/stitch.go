package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/stitch/internal/align"
	"github.com/aria-lang/stitch/pkg/bioflow"
)

// StitchContig is one contig entry in a StitchRequest.
type StitchContig struct {
	Name     string `json:"name"`
	Forward  bool   `json:"forward"`
	Sequence string `json:"sequence"`
	Circular bool   `json:"circular"`
}

// StitchRequest asks for a jump-capable alignment of Query against every
// listed contig. Scoring fields default to a gap-affine, fully global
// model with jumps disabled when omitted (zero value); set Local to relax
// all four clip scores to 0, and the jump fields to allow jumps.
type StitchRequest struct {
	Query   string         `json:"query"`
	Contigs []StitchContig `json:"contigs"`

	Match     int  `json:"match"`
	Mismatch  int  `json:"mismatch"`
	GapOpen   int  `json:"gap_open"`
	GapExtend int  `json:"gap_extend"`
	Local     bool `json:"local"`

	JumpSameContigSameStrand     int `json:"jump_same_contig_same_strand"`
	JumpSameContigOppositeStrand int `json:"jump_same_contig_opposite_strand"`
	JumpInterContig              int `json:"jump_inter_contig"`
}

// StitchResponse reports the winning alignment's coordinates, score, and
// rendered CIGAR (including jump operators).
type StitchResponse struct {
	Score     int    `json:"score"`
	ContigIdx int    `json:"contig_idx"`
	XStart    int    `json:"xstart"`
	XEnd      int    `json:"xend"`
	YStart    int    `json:"ystart"`
	YEnd      int    `json:"yend"`
	Length    int    `json:"length"`
	CIGAR     string `json:"cigar"`
}

// StitchHandler runs the multi-contig jump alignment engine against the
// query and contigs in the request body.
func StitchHandler(w http.ResponseWriter, r *http.Request) {
	var req StitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(req.Contigs) == 0 {
		http.Error(w, `{"error": "at least one contig is required"}`, http.StatusBadRequest)
		return
	}

	match, mismatch := req.Match, req.Mismatch
	if match == 0 && mismatch == 0 {
		match, mismatch = 1, -1
	}
	gapOpen, gapExtend := req.GapOpen, req.GapExtend
	if gapOpen == 0 && gapExtend == 0 {
		gapOpen, gapExtend = -5, -1
	}

	aligner := align.NewMultiContigAligner()
	contigs := make([]align.Contig, 0, len(req.Contigs))
	for _, c := range req.Contigs {
		scoring := align.NewScoring(align.SimpleMatchFunc(match, mismatch), gapOpen, gapExtend)
		jump := func(v int) int {
			if v == 0 {
				return align.MinScore
			}
			return v
		}
		scoring.SetJumpScores(jump(req.JumpSameContigSameStrand), jump(req.JumpSameContigOppositeStrand), jump(req.JumpInterContig))
		if req.Local {
			scoring.SetClipsLocal()
		} else {
			scoring.SetClipsGlobal()
		}

		validated, err := bioflow.NewSequence(c.Sequence)
		if err != nil {
			http.Error(w, `{"error": "contig `+c.Name+`: `+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		seq := []byte(validated.Bases)
		if err := aligner.AddContig(c.Name, c.Forward, seq, c.Circular, scoring); err != nil {
			http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		contigs = append(contigs, align.Contig{Name: c.Name, Forward: c.Forward, Seq: seq, Circular: c.Circular})
	}

	validatedQuery, err := bioflow.NewSequence(req.Query)
	if err != nil {
		http.Error(w, `{"error": "query: `+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := aligner.Custom([]byte(validatedQuery.Bases))
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StitchResponse{
		Score:     alignment.Score,
		ContigIdx: alignment.ContigIdx,
		XStart:    alignment.XStart,
		XEnd:      alignment.XEnd,
		YStart:    alignment.YStart,
		YEnd:      alignment.YEnd,
		Length:    alignment.Length,
		CIGAR:     align.Cigar(alignment, contigs),
	})
}
