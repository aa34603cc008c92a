package boxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	type tc struct {
		setup     func() []Sizer
		index     int
		delta     float64
		wantHints []float64
	}

	tests := map[string]tc{
		"grow spills left and shrinks right in order": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50, 50, 50, 50)
				sizers[2].MaxSize = 60
				sizers[3].MinSize = 40
				Calc(sizers, 250)
				return sizers
			},
			index:     2,
			delta:     30,
			wantHints: []float64{50, 70, 60, 40, 30},
		},
		"shrink grows the following sizer": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50, 50)
				Calc(sizers, 150)
				return sizers
			},
			index:     1,
			delta:     -20,
			wantHints: []float64{50, 30, 70},
		},
		"shrink spills into earlier sizers": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50, 50)
				sizers[1].MinSize = 40
				Calc(sizers, 150)
				return sizers
			},
			index:     1,
			delta:     -30,
			wantHints: []float64{30, 40, 80},
		},
		"delta limited by minimums on the far side": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50)
				sizers[1].MinSize = 40
				Calc(sizers, 100)
				return sizers
			},
			index:     0,
			delta:     30,
			wantHints: []float64{60, 40},
		},
		"delta limited by maximums on the near side": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50)
				sizers[0].MaxSize = 55
				Calc(sizers, 100)
				return sizers
			},
			index:     0,
			delta:     30,
			wantHints: []float64{55, 45},
		},
		"zero delta is a no-op": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50)
				Calc(sizers, 100)
				return sizers
			},
			index:     0,
			delta:     0,
			wantHints: []float64{50, 50},
		},
		"index out of range is a no-op": {
			setup: func() []Sizer {
				sizers := sizersFromHints(50, 50)
				Calc(sizers, 100)
				return sizers
			},
			index:     5,
			delta:     10,
			wantHints: []float64{50, 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sizers := tt.setup()
			sizesBefore := Sizes(sizers)

			Adjust(sizers, tt.index, tt.delta)

			hints := make([]float64, len(sizers))
			for i := range sizers {
				hints[i] = sizers[i].SizeHint
			}
			assert.InDeltaSlice(t, tt.wantHints, hints, 1e-9)
			assert.Equal(t, sizesBefore, Sizes(sizers), "Adjust must not write Size")
		})
	}
}

func TestAdjust_SticksThroughCalc(t *testing.T) {
	sizers := sizersFromHints(50, 50, 50)
	Calc(sizers, 150)

	Adjust(sizers, 0, 20)
	Calc(sizers, 150)

	assert.InDeltaSlice(t, []float64{70, 30, 50}, Sizes(sizers), 1e-9)
}
