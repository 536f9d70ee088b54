// Package leaderboarddomain orders per-player results into tie-aware ranked
// leaderboard entries. Ranking is a global property of the whole result set,
// so entries are rebuilt wholesale on every computation; nothing here mutates
// its inputs.
package leaderboarddomain

import (
	"sort"

	"github.com/google/uuid"

	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// NoDivision is the fallback bucket for participants without a division.
const NoDivision = "No Division"

// Result is one player's computed round, produced fresh per computation
// cycle and never mutated in place.
type Result struct {
	ParticipantID    uuid.UUID `json:"participant_id"`
	DisplayName      string    `json:"display_name"`
	Division         string    `json:"division,omitempty"`
	DeclaredHandicap float64   `json:"declared_handicap"`
	HolesCompleted   int       `json:"holes_completed"`
	GrossScore       int       `json:"gross_score"`
	ToPar            int       `json:"to_par"`
	NetScore         *int      `json:"net_score,omitempty"`
	Points           *int      `json:"points,omitempty"`
	CourseHandicap   *int      `json:"course_handicap,omitempty"`
	Provisional      bool      `json:"provisional"`
}

// LeaderboardEntry is a Result with its computed rank and tie annotations.
type LeaderboardEntry struct {
	Result
	// Rank is the overall competition rank (1,1,3 — not 1,1,2). Zero for
	// unranked rows.
	Rank int `json:"rank"`
	// DivisionRank is local to the entry's division subset.
	DivisionRank int  `json:"division_rank"`
	IsTied       bool `json:"is_tied"`
	TieGroupSize int  `json:"tie_group_size"`
}

// comparisonValue is the format's sort key. Stableford inverts direction, so
// the value is negated there to keep one ascending comparison everywhere.
func comparisonValue(r Result, format scoringdomain.Format) int {
	if format == scoringdomain.FormatStableford {
		points := 0
		if r.Points != nil {
			points = *r.Points
		}
		return -points
	}
	if r.NetScore != nil {
		return *r.NetScore
	}
	return r.GrossScore
}

// Rank orders results and assigns overall and division ranks with standard
// competition ranking. Players with no completed holes are excluded from
// ranking but kept as unranked rows at the tail, in input order, for display
// completeness. Ties share a rank; no countback is applied — tie groups are
// annotated, not broken.
func Rank(results []Result, format scoringdomain.Format) []LeaderboardEntry {
	ranked := make([]Result, 0, len(results))
	unranked := make([]Result, 0)
	for _, r := range results {
		if r.HolesCompleted > 0 {
			ranked = append(ranked, r)
		} else {
			unranked = append(unranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return comparisonValue(ranked[i], format) < comparisonValue(ranked[j], format)
	})

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, r := range ranked {
		entries = append(entries, LeaderboardEntry{Result: r})
	}

	assignOverallRanks(entries, format)
	assignDivisionRanks(entries, format)

	for _, r := range unranked {
		entries = append(entries, LeaderboardEntry{Result: r})
	}

	return entries
}

func assignOverallRanks(entries []LeaderboardEntry, format scoringdomain.Format) {
	for i := 0; i < len(entries); {
		j := i
		for j < len(entries) &&
			comparisonValue(entries[j].Result, format) == comparisonValue(entries[i].Result, format) {
			j++
		}
		for k := i; k < j; k++ {
			entries[k].Rank = i + 1
		}
		i = j
	}
}

func assignDivisionRanks(entries []LeaderboardEntry, format scoringdomain.Format) {
	byDivision := make(map[string][]int)
	for i, e := range entries {
		div := DivisionOf(e.Result)
		byDivision[div] = append(byDivision[div], i)
	}

	for _, idxs := range byDivision {
		// Entries are already globally sorted, so each division subset is
		// sorted too; walk it assigning competition ranks and tie groups.
		for i := 0; i < len(idxs); {
			j := i
			for j < len(idxs) &&
				comparisonValue(entries[idxs[j]].Result, format) == comparisonValue(entries[idxs[i]].Result, format) {
				j++
			}
			groupSize := j - i
			for k := i; k < j; k++ {
				entries[idxs[k]].DivisionRank = i + 1
				entries[idxs[k]].IsTied = groupSize > 1
				entries[idxs[k]].TieGroupSize = groupSize
			}
			i = j
		}
	}
}

// DivisionOf maps an empty division to the fallback bucket.
func DivisionOf(r Result) string {
	if r.Division == "" {
		return NoDivision
	}
	return r.Division
}
