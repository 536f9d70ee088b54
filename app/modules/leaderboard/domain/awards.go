package leaderboarddomain

import (
	scoringdomain "github.com/ishaki/abhimatagolf-sub001/app/modules/scoring/domain"
)

// AwardKind selects the comparison a special award runs over the whole field.
type AwardKind string

const (
	AwardBestGross  AwardKind = "best_gross"
	AwardBestNet    AwardKind = "best_net"
	AwardBestPoints AwardKind = "best_points"
)

// AwardDefinition declares one special award. Definition order is display
// order; it is never re-sorted.
type AwardDefinition struct {
	// Category tags the winner's row, distinct from any division name.
	Category string    `json:"category"`
	Kind     AwardKind `json:"kind"`
}

// AwardWinner pairs a definition with the winning entry. The entry is a copy;
// the winner still appears, unchanged, in their division list — hiding a
// double winner from either list is a display bug.
type AwardWinner struct {
	Category string           `json:"category"`
	Entry    LeaderboardEntry `json:"entry"`
}

// DefaultAwardDefinitions is the award slate for a format, in display order.
func DefaultAwardDefinitions(format scoringdomain.Format) []AwardDefinition {
	switch format {
	case scoringdomain.FormatStableford:
		return []AwardDefinition{
			{Category: "Best Points Overall", Kind: AwardBestPoints},
			{Category: "Best Gross Overall", Kind: AwardBestGross},
		}
	case scoringdomain.FormatNetStroke, scoringdomain.FormatSystem36:
		return []AwardDefinition{
			{Category: "Best Net Overall", Kind: AwardBestNet},
			{Category: "Best Gross Overall", Kind: AwardBestGross},
		}
	default:
		return []AwardDefinition{
			{Category: "Best Gross Overall", Kind: AwardBestGross},
		}
	}
}

// SelectSpecialAwards extracts cross-division award winners from ranked
// entries. A participant takes at most one special award (earlier-defined
// awards claim first), but division results are never altered. Winners are
// emitted in definition order. Unranked entries are not eligible.
func SelectSpecialAwards(entries []LeaderboardEntry, defs []AwardDefinition) []AwardWinner {
	winners := make([]AwardWinner, 0, len(defs))
	claimed := make(map[string]bool, len(defs))

	for _, def := range defs {
		best := -1
		for i, e := range entries {
			if e.Rank == 0 || claimed[e.ParticipantID.String()] {
				continue
			}
			if !eligible(e, def.Kind) {
				continue
			}
			if best == -1 || beats(e, entries[best], def.Kind) {
				best = i
			}
		}
		if best == -1 {
			continue
		}
		claimed[entries[best].ParticipantID.String()] = true
		winners = append(winners, AwardWinner{
			Category: def.Category,
			Entry:    entries[best],
		})
	}

	return winners
}

func eligible(e LeaderboardEntry, kind AwardKind) bool {
	switch kind {
	case AwardBestNet:
		return e.NetScore != nil
	case AwardBestPoints:
		return e.Points != nil
	default:
		return true
	}
}

// beats reports whether a strictly improves on b for the award kind. Ties
// keep the earlier (already ranked-higher) entry.
func beats(a, b LeaderboardEntry, kind AwardKind) bool {
	switch kind {
	case AwardBestNet:
		return *a.NetScore < *b.NetScore
	case AwardBestPoints:
		return *a.Points > *b.Points
	default:
		return a.GrossScore < b.GrossScore
	}
}
