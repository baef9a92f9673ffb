package risk

// Band is the qualitative bucket a numeric risk score falls into.
type Band int

const (
	BandAcceptable   Band = iota // 1-2
	BandTolerable                // 3-4
	BandSignificant              // 5-9
	BandUnacceptable             // 10-16
)

func (b Band) String() string {
	switch b {
	case BandAcceptable:
		return "acceptable"
	case BandTolerable:
		return "tolerable"
	case BandSignificant:
		return "significant"
	case BandUnacceptable:
		return "unacceptable"
	default:
		return "unknown"
	}
}

// BandFor maps a probability x severity score onto its band. Scores are
// clamped into the 1-16 matrix range first.
func BandFor(score int) Band {
	if score < 1 {
		score = 1
	}
	if score > 16 {
		score = 16
	}
	switch {
	case score <= 2:
		return BandAcceptable
	case score <= 4:
		return BandTolerable
	case score <= 9:
		return BandSignificant
	default:
		return BandUnacceptable
	}
}

// ActionRequired reports whether the band demands a risk-reduction action.
// Everything above acceptable goes on the action plan.
func (b Band) ActionRequired() bool {
	return b != BandAcceptable
}
