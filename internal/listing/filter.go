package listing

// FilterSpec is the transient, UI-driven filter state. An empty Rooms
// set means "no room constraint", not "exclude everything".
type FilterSpec struct {
	Rooms    []int
	PriceMin float64
	PriceMax float64
	SizeMin  float64
	SizeMax  float64
}

// Filter returns the listings satisfying every constraint of spec, in
// their original order. It never fails: a spec matching nothing simply
// yields an empty table.
func Filter(table Table, spec FilterSpec) Table {
	var rooms map[int]struct{}
	if len(spec.Rooms) > 0 {
		rooms = make(map[int]struct{}, len(spec.Rooms))
		for _, r := range spec.Rooms {
			rooms[r] = struct{}{}
		}
	}

	result := make(Table, 0, len(table))
	for _, l := range table {
		if rooms != nil {
			if l.NumberOfRooms == nil {
				continue
			}
			if _, ok := rooms[int(*l.NumberOfRooms)]; !ok {
				continue
			}
		}

		// A missing value never matches a range test.
		if !inRange(l.PriceValueEUR, spec.PriceMin, spec.PriceMax) {
			continue
		}
		if !inRange(l.SizeMq, spec.SizeMin, spec.SizeMax) {
			continue
		}

		result = append(result, l)
	}

	return result
}

func inRange(v *float64, min, max float64) bool {
	return v != nil && *v >= min && *v <= max
}
