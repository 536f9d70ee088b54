package scoringdomain

import (
	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
)

// AggregateResult is the reduction of a sparse stroke map over a course's
// hole set. To-par figures count only completed holes, so a partially played
// round reflects the holes actually played; CoursePar is the fixed full-course
// reference.
type AggregateResult struct {
	OutTotal       int `json:"out_total"`
	InTotal        int `json:"in_total"`
	GrossScore     int `json:"gross_score"`
	OutToPar       int `json:"out_to_par"`
	InToPar        int `json:"in_to_par"`
	ToPar          int `json:"to_par"`
	HolesCompleted int `json:"holes_completed"`
	CoursePar      int `json:"course_par"`
}

// Aggregate reduces {hole → strokes} into front/back/total sums. Strokes for
// hole numbers outside the course's hole set are ignored, not rejected: the
// map may be ahead of course configuration and aggregation is a defensive
// default, not a validator. Holes without an entry contribute nothing and are
// excluded from HolesCompleted.
func Aggregate(holes []coursedomain.HoleDefinition, strokes map[int]int) AggregateResult {
	var result AggregateResult
	var outPar, inPar int

	for _, hole := range holes {
		result.CoursePar += hole.Par

		s, ok := strokes[hole.Number]
		if !ok || s <= NotEntered {
			continue
		}

		result.HolesCompleted++
		if hole.Number <= FrontNineEnd {
			result.OutTotal += s
			outPar += hole.Par
		} else {
			result.InTotal += s
			inPar += hole.Par
		}
	}

	result.GrossScore = result.OutTotal + result.InTotal
	result.OutToPar = result.OutTotal - outPar
	result.InToPar = result.InTotal - inPar
	result.ToPar = result.GrossScore - (outPar + inPar)

	return result
}
