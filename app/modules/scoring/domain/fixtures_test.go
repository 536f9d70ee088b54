package scoringdomain

import (
	coursedomain "github.com/ishaki/abhimatagolf-sub001/app/modules/course/domain"
)

// testHoles is a par-72 layout with 36 out and 36 in.
func testHoles() []coursedomain.HoleDefinition {
	pars := []int{4, 4, 3, 5, 4, 4, 3, 5, 4, 4, 5, 3, 4, 4, 5, 3, 4, 4}
	holes := make([]coursedomain.HoleDefinition, len(pars))
	for i, par := range pars {
		holes[i] = coursedomain.HoleDefinition{
			Number:      i + 1,
			Par:         par,
			StrokeIndex: i + 1,
		}
	}
	return holes
}

// strokesAtPar fills holes [from, to] with their par value.
func strokesAtPar(holes []coursedomain.HoleDefinition, from, to int) map[int]int {
	strokes := make(map[int]int)
	for _, h := range holes {
		if h.Number >= from && h.Number <= to {
			strokes[h.Number] = h.Par
		}
	}
	return strokes
}
