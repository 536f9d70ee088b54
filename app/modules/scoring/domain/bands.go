package scoringdomain

// ScoreBand classifies a hole's score against its par. The classification
// drives both display color coding and the System-36/Stableford point tables,
// and is always recomputed from strokes, never cached.
type ScoreBand int

const (
	BandEagleOrBetter ScoreBand = iota
	BandBirdie
	BandPar
	BandBogey
	BandDoubleBogeyOrWorse
)

func (b ScoreBand) String() string {
	switch b {
	case BandEagleOrBetter:
		return "eagle_or_better"
	case BandBirdie:
		return "birdie"
	case BandPar:
		return "par"
	case BandBogey:
		return "bogey"
	default:
		return "double_bogey_or_worse"
	}
}

// BandForScore classifies strokes on a hole of the given par.
func BandForScore(strokes, par int) ScoreBand {
	switch diff := strokes - par; {
	case diff <= -2:
		return BandEagleOrBetter
	case diff == -1:
		return BandBirdie
	case diff == 0:
		return BandPar
	case diff == 1:
		return BandBogey
	default:
		return BandDoubleBogeyOrWorse
	}
}

// system36Points awards points per hole in System-36's penalty framing:
// losing strokes costs points, to a floor of zero.
func system36Points(band ScoreBand) int {
	switch band {
	case BandDoubleBogeyOrWorse:
		return 0
	case BandBogey:
		return 1
	case BandPar:
		return 2
	default: // birdie or better
		return 3
	}
}

// stablefordPoints awards points per hole with the direction inverted from
// System-36's framing: better holes earn more, floored at zero.
func stablefordPoints(band ScoreBand) int {
	switch band {
	case BandDoubleBogeyOrWorse:
		return 0
	case BandBogey:
		return 1
	case BandPar:
		return 2
	case BandBirdie:
		return 3
	default: // eagle or better
		return 4
	}
}
