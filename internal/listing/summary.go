package listing

import (
	"math"
	"sort"
)

// Summary is the metrics panel data. Averages are over non-missing
// values only; with no usable values at all they are NaN, and the
// renderer is expected to print a placeholder instead of a number.
type Summary struct {
	Count         int
	AvgPrice      float64
	AvgPricePerMq float64
}

func Summarize(table Table) Summary {
	return Summary{
		Count:         len(table),
		AvgPrice:      mean(table, func(l *Listing) *float64 { return l.PriceValueEUR }),
		AvgPricePerMq: mean(table, func(l *Listing) *float64 { return l.PricePerMq }),
	}
}

func mean(table Table, field func(*Listing) *float64) float64 {
	var sum float64
	var n int
	for _, l := range table {
		if v := field(l); v != nil {
			sum += *v
			n++
		}
	}

	if n == 0 {
		return math.NaN()
	}

	return sum / float64(n)
}

// Ranges holds the observed bounds of the filterable columns, used to
// seed the filter controls. Degenerate min==max ranges are widened by
// one unit so a range control always has room to move.
type Ranges struct {
	PriceMin    float64
	PriceMax    float64
	SizeMin     float64
	SizeMax     float64
	RoomOptions []int
}

func ObservedRanges(table Table) Ranges {
	var r Ranges
	r.PriceMin, r.PriceMax = observedBounds(table, func(l *Listing) *float64 { return l.PriceValueEUR })
	r.SizeMin, r.SizeMax = observedBounds(table, func(l *Listing) *float64 { return l.SizeMq })

	seen := make(map[int]struct{})
	for _, l := range table {
		if l.NumberOfRooms == nil {
			continue
		}
		rooms := int(*l.NumberOfRooms)
		if _, ok := seen[rooms]; !ok {
			seen[rooms] = struct{}{}
			r.RoomOptions = append(r.RoomOptions, rooms)
		}
	}
	sort.Ints(r.RoomOptions)

	return r
}

func observedBounds(table Table, field func(*Listing) *float64) (min, max float64) {
	first := true
	for _, l := range table {
		v := field(l)
		if v == nil {
			continue
		}
		if first {
			min, max = *v, *v
			first = false
			continue
		}
		if *v < min {
			min = *v
		}
		if *v > max {
			max = *v
		}
	}

	if min == max {
		max = min + 1
	}

	return min, max
}
