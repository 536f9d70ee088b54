package scoringdomain

import (
	"fmt"
	"math"

	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
)

// slopeBase is the neutral slope rating the standard handicap-differential
// conversion divides by.
const slopeBase = 113

// Resolution is the format-specific view of an aggregated round. Net, Points,
// and the handicap fields are present only when the format defines them.
type Resolution struct {
	Format           Format          `json:"format"`
	Aggregate        AggregateResult `json:"aggregate"`
	Net              *int            `json:"net,omitempty"`
	Points           *int            `json:"points,omitempty"`
	CourseHandicap   *int            `json:"course_handicap,omitempty"`
	System36Handicap *int            `json:"system36_handicap,omitempty"`
	// Provisional marks net figures derived from fewer than 18 completed
	// holes; a System-36 handicap only finalizes at a full round.
	Provisional bool `json:"provisional"`
}

// CourseHandicap converts a declared handicap through a teebox's slope rating,
// rounded to the nearest integer.
func CourseHandicap(declaredHandicap float64, slopeRating int) int {
	return int(math.Round(declaredHandicap * float64(slopeRating) / slopeBase))
}

// Resolve computes the format's net/points view of a round. It is stateless:
// behavior branches purely on format. An unrecognized format fails fast, and
// net formats fail without rating data rather than guessing.
func Resolve(
	format Format,
	holes []coursedomain.HoleDefinition,
	strokes map[int]int,
	declaredHandicap float64,
	rating *coursedomain.TeeBox,
) (Resolution, error) {
	agg := Aggregate(holes, strokes)
	res := Resolution{Format: format, Aggregate: agg}

	switch format {
	case FormatStroke:
		// Gross-only: ranking uses the aggregate directly.
		return res, nil

	case FormatNetStroke:
		if rating == nil {
			return Resolution{}, fmt.Errorf("%w: format %q", ErrMissingRating, format)
		}
		ch := CourseHandicap(declaredHandicap, rating.SlopeRating)
		net := agg.GrossScore - ch
		res.CourseHandicap = &ch
		res.Net = &net
		return res, nil

	case FormatSystem36:
		if agg.HolesCompleted == 0 {
			res.Provisional = true
			return res, nil
		}
		points := 0
		for _, hole := range holes {
			s, ok := strokes[hole.Number]
			if !ok || s <= NotEntered {
				continue
			}
			points += system36Points(BandForScore(s, hole.Par))
		}
		hcp := system36Handicap(points, agg.HolesCompleted)
		net := agg.GrossScore - hcp
		res.Points = &points
		res.System36Handicap = &hcp
		res.Net = &net
		res.Provisional = agg.HolesCompleted < HolesPerRound
		return res, nil

	case FormatStableford:
		points := 0
		for _, hole := range holes {
			s, ok := strokes[hole.Number]
			if !ok || s <= NotEntered {
				continue
			}
			points += stablefordPoints(BandForScore(s, hole.Par))
		}
		res.Points = &points
		return res, nil
	}

	return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// system36Handicap derives the handicap from a round's points. A full round
// is exactly 36 minus points. A partial round extrapolates the per-hole point
// deficit to an 18-hole equivalent; callers must treat that figure as
// provisional until 18 holes are completed.
func system36Handicap(points, holesCompleted int) int {
	deficit := 2*holesCompleted - points
	if holesCompleted == HolesPerRound {
		return deficit // == 36 - points
	}
	return int(math.Round(float64(deficit) * HolesPerRound / float64(holesCompleted)))
}
