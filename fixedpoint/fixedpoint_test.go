package fixedpoint

import (
	"math"
	"testing"

	"github.com/jiangshengdev/sweep-line/sweeperr"
	"github.com/stretchr/testify/assert"
)

func TestPointI64_Cmp(t *testing.T) {
	p1 := NewPointI64(1, 5)
	p2 := NewPointI64(1, 6)
	p3 := NewPointI64(2, 0)

	assert.True(t, p1.Cmp(p2) < 0)
	assert.True(t, p2.Cmp(p1) > 0)
	assert.True(t, p1.Cmp(p3) < 0)
	assert.Equal(t, 0, p1.Cmp(NewPointI64(1, 5)))
}

func TestQuantize(t *testing.T) {
	tests := map[string]struct {
		in      float64
		want    Coord
		wantErr sweeperr.QuantizeErrorKind
		isErr   bool
	}{
		"zero":              {in: 0, want: 0},
		"one":               {in: 1, want: Coord(Scale)},
		"minus one":         {in: -1, want: -Coord(Scale)},
		"half":              {in: 0.5, want: Coord(Scale / 2)},
		"rounds half away":  {in: 0.0000000005, want: 1}, // exactly half an LSB
		"nan":               {in: math.NaN(), isErr: true, wantErr: sweeperr.NonFinite},
		"+inf":              {in: math.Inf(1), isErr: true, wantErr: sweeperr.NonFinite},
		"-inf":              {in: math.Inf(-1), isErr: true, wantErr: sweeperr.NonFinite},
		"just over range":   {in: 1.0000001, isErr: true, wantErr: sweeperr.OutOfRange},
		"just under -range": {in: -1.0000001, isErr: true, wantErr: sweeperr.OutOfRange},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Quantize(tc.in)
			if tc.isErr {
				assert.Error(t, err)
				qerr, ok := err.(*sweeperr.QuantizeError)
				assert.True(t, ok)
				assert.Equal(t, tc.wantErr, qerr.Kind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoord_InRange(t *testing.T) {
	assert.True(t, Coord(Scale).InRange())
	assert.True(t, Coord(-Scale).InRange())
	assert.False(t, Coord(Scale+1).InRange())
	assert.False(t, Coord(-Scale-1).InRange())
}
