// Package preprocess turns raw floating-point input segments into the
// canonicalized segstore.Store the sweep engine operates on, grounded on
// the role github.com/mikenye/geom2d/linesegment.NewFromPoints plays in the
// teacher library — a single validating/canonicalizing entry point sitting
// in front of the exact kernel — generalized here to also collect, rather
// than reject outright, input the kernel cannot accept.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/jiangshengdev/sweep-line/fixedpoint"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

// Coord names which of a raw input segment's four floats a warning refers
// to.
type Coord int8

const (
	AX Coord = iota
	AY
	BX
	BY
)

// String returns the wire name for c.
func (c Coord) String() string {
	switch c {
	case AX:
		return "ax"
	case AY:
		return "ay"
	case BX:
		return "bx"
	case BY:
		return "by"
	default:
		return "unknown"
	}
}

// WarningKind names the three reasons an input segment can be dropped
// during preprocessing.
type WarningKind int8

const (
	// DroppedInvalidCoordinate means one of the segment's four floats was
	// non-finite or outside [-1, +1].
	DroppedInvalidCoordinate WarningKind = iota
	// DroppedZeroLength means the segment's two endpoints quantized to the
	// same grid point.
	DroppedZeroLength
	// DroppedDuplicate means the segment's canonical (a, b) key matches an
	// already-kept segment's.
	DroppedDuplicate
)

// String returns a human-readable name for k.
func (k WarningKind) String() string {
	switch k {
	case DroppedInvalidCoordinate:
		return "DroppedInvalidCoordinate"
	case DroppedZeroLength:
		return "DroppedZeroLength"
	case DroppedDuplicate:
		return "DroppedDuplicate"
	default:
		return "unknown"
	}
}

// Warning records why one input segment was dropped instead of being
// admitted into the store.
type Warning struct {
	Kind WarningKind
	// InputIndex is the index, into the original input slice, of the
	// dropped segment.
	InputIndex int
	// Coord and Reason are valid only when Kind == DroppedInvalidCoordinate.
	Coord  Coord
	Reason sweeperr.QuantizeErrorKind
	// KeptInputIndex is valid only when Kind == DroppedDuplicate: the index
	// of the earlier input segment this one duplicates.
	KeptInputIndex int
}

// String renders w for inclusion in a Trace's warning log.
func (w Warning) String() string {
	switch w.Kind {
	case DroppedInvalidCoordinate:
		return fmt.Sprintf("input %d: dropped, invalid coordinate %s (%s)", w.InputIndex, w.Coord, w.Reason)
	case DroppedZeroLength:
		return fmt.Sprintf("input %d: dropped, zero-length segment", w.InputIndex)
	case DroppedDuplicate:
		return fmt.Sprintf("input %d: dropped, duplicate of input %d", w.InputIndex, w.KeptInputIndex)
	default:
		return fmt.Sprintf("input %d: dropped, unknown reason", w.InputIndex)
	}
}

// InputSegment is one raw segment as received from outside the kernel: four
// floats, each expected to lie in [-1, +1].
type InputSegment struct {
	AX, AY, BX, BY float64
}

// Result is the outcome of preprocessing a batch of InputSegment values.
type Result struct {
	// Store holds every admitted segment, canonicalized and quantized.
	Store *segstore.Store
	// Mapping has one entry per input segment: the SegmentId it was
	// admitted as, or nil if it was dropped.
	Mapping []*segstore.SegmentId
	// Warnings records every dropped input segment, in input order.
	Warnings []Warning
}

// Run quantizes, canonicalizes, and deduplicates inputs, admitting each
// surviving segment into a fresh segstore.Store in input order (so
// SegmentId == admission order), per §6.1.
func Run(inputs []InputSegment) Result {
	store := segstore.NewStore()
	mapping := make([]*segstore.SegmentId, len(inputs))
	seen := map[key]int{}
	var warnings []Warning

	for i, in := range inputs {
		a, ok, w := quantizePoint(i, in.AX, AX, in.AY, AY)
		if !ok {
			warnings = append(warnings, w)
			continue
		}
		b, ok, w := quantizePoint(i, in.BX, BX, in.BY, BY)
		if !ok {
			warnings = append(warnings, w)
			continue
		}

		if a.Eq(b) {
			warnings = append(warnings, Warning{Kind: DroppedZeroLength, InputIndex: i})
			continue
		}
		if b.Cmp(a) < 0 {
			a, b = b, a
		}

		k := key{a, b}
		if kept, dup := seen[k]; dup {
			warnings = append(warnings, Warning{Kind: DroppedDuplicate, InputIndex: i, KeptInputIndex: kept})
			continue
		}
		seen[k] = i

		id := store.Push(segstore.New(a, b, i))
		mapping[i] = &id
	}

	return Result{Store: store, Mapping: mapping, Warnings: warnings}
}

type key struct {
	a, b fixedpoint.PointI64
}

// quantizePoint quantizes (x, y) into a grid point, reporting the first
// invalid coordinate (x before y) as a Warning on failure.
func quantizePoint(inputIdx int, x float64, xName Coord, y float64, yName Coord) (fixedpoint.PointI64, bool, Warning) {
	qx, err := fixedpoint.Quantize(x)
	if err != nil {
		return fixedpoint.PointI64{}, false, invalidWarning(inputIdx, xName, err)
	}
	qy, err := fixedpoint.Quantize(y)
	if err != nil {
		return fixedpoint.PointI64{}, false, invalidWarning(inputIdx, yName, err)
	}
	return fixedpoint.NewPointI64(qx, qy), true, Warning{}
}

func invalidWarning(inputIdx int, coord Coord, err error) Warning {
	reason := sweeperr.OutOfRange
	var qe *sweeperr.QuantizeError
	if errors.As(err, &qe) {
		reason = qe.Kind
	}
	return Warning{Kind: DroppedInvalidCoordinate, InputIndex: inputIdx, Coord: coord, Reason: reason}
}
