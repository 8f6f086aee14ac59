package sweeperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitExceeded_Error(t *testing.T) {
	err := &LimitExceeded{Kind: SessionBytes, Limit: 10, Actual: 42}
	assert.Contains(t, err.Error(), "SessionBytes")
	assert.Contains(t, err.Error(), "limit=10")
	assert.Contains(t, err.Error(), "actual=42")
	assert.Contains(t, err.Error(), "trace")
}

func TestLimitKind_String(t *testing.T) {
	assert.Equal(t, "TraceSteps", TraceSteps.String())
	assert.Equal(t, "ActiveEntriesTotal", ActiveEntriesTotal.String())
	assert.Equal(t, "Intersections", Intersections.String())
	assert.Equal(t, "SessionBytes", SessionBytes.String())
	assert.Equal(t, "unknown", LimitKind(99).String())
}

func TestSweepStatusError_Error(t *testing.T) {
	err := &SweepStatusError{Kind: SegmentNotFound, SegmentId: 7}
	assert.Contains(t, err.Error(), "SegmentNotFound")
	assert.Contains(t, err.Error(), "segment=7")
}

func TestSweepStatusKind_String(t *testing.T) {
	assert.Equal(t, "VerticalSegmentNotAllowed", VerticalSegmentNotAllowed.String())
	assert.Equal(t, "DuplicateSegmentId", DuplicateSegmentId.String())
	assert.Equal(t, "SegmentNotFound", SegmentNotFound.String())
	assert.Equal(t, "unknown", SweepStatusKind(99).String())
}

func TestArithmeticOverflow_Error(t *testing.T) {
	err := &ArithmeticOverflow{Operation: "y(s, x)"}
	assert.Contains(t, err.Error(), "y(s, x)")
}
