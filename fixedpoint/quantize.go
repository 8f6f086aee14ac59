package fixedpoint

import (
	"math"

	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// Quantize converts a floating-point value in [-1, +1] to a Coord on the
// [-Scale, +Scale] grid.
//
// Quantize rejects non-finite input and input whose magnitude exceeds 1,
// returning a *sweeperr.QuantizeError. Otherwise it returns
// round(value * Scale), rounding half away from zero — the rounding mode
// spec.md leaves as an open question for implementers to fix; this module
// documents the choice here and nowhere else needs to re-decide it.
// Round-half-away-from-zero is chosen to match math.Round's documented
// behavior, which is also what this module's nearest analogue to a "snap to
// an integer" helper (numeric.SnapToEpsilon in the teacher library) already
// relies on.
//
// Quantization happens only at this boundary; nothing inside the sweep
// kernel ever rounds.
func Quantize(value float64) (Coord, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &sweeperr.QuantizeError{Kind: sweeperr.NonFinite}
	}
	if math.Abs(value) > 1 {
		return 0, &sweeperr.QuantizeError{Kind: sweeperr.OutOfRange}
	}
	return Coord(math.Round(value * float64(Scale))), nil
}
