package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	l := Default()
	assert.EqualValues(t, DefaultMaxSessionBytes, l.MaxSessionBytes)
	assert.EqualValues(t, DefaultMaxTraceSteps, l.MaxTraceSteps)
	assert.EqualValues(t, DefaultMaxTraceActiveEntriesTotal, l.MaxTraceActiveEntriesTotal)
	assert.EqualValues(t, DefaultMaxIntersections, l.MaxIntersections)
}

func TestDefault_WithOverrides(t *testing.T) {
	l := Default(
		WithMaxSessionBytes(10),
		WithMaxTraceSteps(1),
		WithMaxTraceActiveEntriesTotal(5),
		WithMaxIntersections(0),
	)
	assert.EqualValues(t, 10, l.MaxSessionBytes)
	assert.EqualValues(t, 1, l.MaxTraceSteps)
	assert.EqualValues(t, 5, l.MaxTraceActiveEntriesTotal)
	assert.EqualValues(t, 0, l.MaxIntersections)
}
