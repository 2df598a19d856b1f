package governance

import (
	"github.com/blackbird014/contract-ownership-governance/errors"
)

// Weight represents the voting power of a single governor. A zero weight
// means no authority at all, it is never stored in a governor table.
type Weight uint64

// Add returns the sum of this and the given weight. It fails with an
// overflow error instead of wrapping around when exceeding the type
// capacity.
func (w Weight) Add(o Weight) (Weight, error) {
	sum := w + o
	if sum < w {
		return 0, errors.ErrOverflow.Newf("weight %d + %d", w, o)
	}
	return sum, nil
}

// Sub returns the difference of this and the given weight. It fails with an
// overflow error instead of wrapping around when the result would be
// negative.
func (w Weight) Sub(o Weight) (Weight, error) {
	if o > w {
		return 0, errors.ErrOverflow.Newf("weight %d - %d", w, o)
	}
	return w - o, nil
}

// WeightChange is the notification payload observable whenever the voting
// power of a governor is set. Power carries the weight after the change.
type WeightChange struct {
	Governor Address `json:"governor"`
	Power    Weight  `json:"power"`
}

func (wc WeightChange) Validate() error {
	if err := wc.Governor.Validate(); err != nil {
		return errors.Wrap(err, "governor")
	}
	return nil
}
