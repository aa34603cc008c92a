package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-dock/internal/boxengine"
)

func TestParseSizer(t *testing.T) {
	inf := math.Inf(1)

	type tc struct {
		spec string
		want boxengine.Sizer
	}

	tests := map[string]tc{
		"hint only": {
			spec: "40",
			want: boxengine.Sizer{SizeHint: 40, MaxSize: inf, Stretch: 1, Size: 40},
		},
		"all fields": {
			spec: "40:10:80:3",
			want: boxengine.Sizer{SizeHint: 40, MinSize: 10, MaxSize: 80, Stretch: 3, Size: 40},
		},
		"empty fields keep defaults": {
			spec: "::50",
			want: boxengine.Sizer{MaxSize: 50, Stretch: 1},
		},
		"rigid unbounded": {
			spec: "0:5:inf:0",
			want: boxengine.Sizer{MinSize: 5, MaxSize: inf},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseSizer(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizer_Errors(t *testing.T) {
	tests := map[string]string{
		"too many fields":    "1:2:3:4:5",
		"bad hint":           "abc",
		"negative min":       "0:-1",
		"fractional stretch": "0:0:1:1.5",
		"negative stretch":   "0:0:1:-2",
	}

	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseSizer(spec)
			assert.Error(t, err)
		})
	}
}

func TestParseSizers_StopsAtFirstError(t *testing.T) {
	_, err := parseSizers([]string{"1", "bad", "2"})
	assert.ErrorContains(t, err, `"bad"`)

	sizers, err := parseSizers([]string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, sizers, 2)
}
