package allocation

// DefaultProfitThreshold is the ROI percentage above which an allocation
// is labelled profitable.
const DefaultProfitThreshold = 100.0

// Outcome labels an allocation for display.
type Outcome int

const (
	LossMaking Outcome = iota
	Profitable
)

func (o Outcome) String() string {
	if o == Profitable {
		return "profitable allocation"
	}
	return "loss-making allocation"
}

// Classify labels roi against threshold. ROI equal to the threshold is
// loss-making.
func Classify(roi, threshold float64) Outcome {
	if roi > threshold {
		return Profitable
	}
	return LossMaking
}
