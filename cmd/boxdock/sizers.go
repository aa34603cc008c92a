package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-dock/internal/boxengine"
)

// parseSizer parses HINT[:MIN[:MAX[:STRETCH]]]. Omitted or empty fields keep
// the defaults of boxengine.NewSizer: no minimum, no maximum and a stretch of
// one. MAX accepts "inf".
func parseSizer(spec string) (boxengine.Sizer, error) {
	parts := strings.Split(spec, ":")
	if len(parts) > 4 {
		return boxengine.Sizer{}, fmt.Errorf("sizer %q: want HINT[:MIN[:MAX[:STRETCH]]]", spec)
	}

	sz := boxengine.NewSizer(0)
	floats := []*float64{&sz.SizeHint, &sz.MinSize, &sz.MaxSize}
	names := []string{"hint", "min", "max"}
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 3 {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 {
				return boxengine.Sizer{}, fmt.Errorf("sizer %q: stretch must be a non-negative integer", spec)
			}
			sz.Stretch = n
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return boxengine.Sizer{}, fmt.Errorf("sizer %q: bad %s: %w", spec, names[i], err)
		}
		if v < 0 {
			return boxengine.Sizer{}, fmt.Errorf("sizer %q: %s must not be negative", spec, names[i])
		}
		*floats[i] = v
	}
	sz.Size = sz.SizeHint
	return sz, nil
}

func parseSizers(specs []string) ([]boxengine.Sizer, error) {
	sizers := make([]boxengine.Sizer, 0, len(specs))
	for _, spec := range specs {
		sz, err := parseSizer(spec)
		if err != nil {
			return nil, err
		}
		sizers = append(sizers, sz)
	}
	return sizers, nil
}

func sizerRows(sizers []boxengine.Sizer, value func(boxengine.Sizer) float64) [][]string {
	rows := make([][]string, len(sizers))
	for i, s := range sizers {
		rows[i] = []string{
			strconv.Itoa(i),
			formatNum(s.MinSize),
			formatNum(s.MaxSize),
			strconv.Itoa(s.Stretch),
			formatNum(value(s)),
		}
	}
	return rows
}
