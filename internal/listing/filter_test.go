package listing

import (
	"testing"
)

func ptr(v float64) *float64 { return &v }

func sampleTable() Table {
	return Derive([]*RawListing{
		{Name: "big", NumberOfRooms: int64(3), PriceValueEUR: 300000.0, SizeMq: 100.0},
		{Name: "ground floor", NumberOfRooms: int64(2), PriceValueEUR: 150000.0, SizeMq: 0.0},
		{Name: "no price", NumberOfRooms: int64(3), PriceValueEUR: nil, SizeMq: 50.0},
	})
}

func wideSpec() FilterSpec {
	return FilterSpec{PriceMin: 0, PriceMax: 1000000, SizeMin: 0, SizeMax: 200}
}

func names(table Table) []string {
	out := make([]string, 0, len(table))
	for _, l := range table {
		out = append(out, l.Name)
	}
	return out
}

func TestFilterEndToEndScenario(t *testing.T) {
	spec := wideSpec()
	spec.Rooms = []int{3}

	got := Filter(sampleTable(), spec)
	if len(got) != 1 || got[0].Name != "big" {
		t.Errorf("Filter kept %v, want only %q", names(got), "big")
	}
}

func TestFilterEmptyRoomsMeansNoConstraint(t *testing.T) {
	table := sampleTable()
	spec := wideSpec()

	withEmpty := Filter(table, spec)

	spec.Rooms = []int{2, 3}
	withAll := Filter(table, spec)

	if len(withEmpty) != len(withAll) {
		t.Fatalf("empty rooms kept %d rows, full selection kept %d", len(withEmpty), len(withAll))
	}
	for i := range withEmpty {
		if withEmpty[i] != withAll[i] {
			t.Errorf("row %d differs between empty and full room selection", i)
		}
	}
}

func TestFilterMissingValuesFailRangeTests(t *testing.T) {
	table := Table{
		{Name: "no price", SizeMq: ptr(50), PricePerMq: nil},
		{Name: "no size", PriceValueEUR: ptr(100000)},
	}

	got := Filter(table, wideSpec())
	if len(got) != 0 {
		t.Errorf("Filter kept %v, want nothing: missing values never match a range", names(got))
	}
}

func TestFilterMissingRoomsFailsNonEmptySelection(t *testing.T) {
	table := Table{
		{Name: "unknown rooms", PriceValueEUR: ptr(100), SizeMq: ptr(10)},
	}

	spec := wideSpec()
	spec.Rooms = []int{1, 2, 3}
	if got := Filter(table, spec); len(got) != 0 {
		t.Errorf("row with missing rooms survived a room selection")
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	table := Table{
		{Name: "edge", NumberOfRooms: ptr(2), PriceValueEUR: ptr(150000), SizeMq: ptr(80)},
	}

	spec := FilterSpec{PriceMin: 150000, PriceMax: 150000, SizeMin: 80, SizeMax: 80}
	if got := Filter(table, spec); len(got) != 1 {
		t.Errorf("boundary values must be included, got %d rows", len(got))
	}
}

func TestFilterIdempotent(t *testing.T) {
	table := sampleTable()
	spec := wideSpec()
	spec.Rooms = []int{3}

	once := Filter(table, spec)
	twice := Filter(once, spec)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d rows then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("row %d changed on second filter pass", i)
		}
	}
}

func TestFilterFullObservedRangeKeepsEverythingWithValues(t *testing.T) {
	table := Derive([]*RawListing{
		{Name: "a", NumberOfRooms: int64(1), PriceValueEUR: 100000.0, SizeMq: 40.0},
		{Name: "b", NumberOfRooms: int64(2), PriceValueEUR: 250000.0, SizeMq: 90.0},
		{Name: "c", NumberOfRooms: int64(4), PriceValueEUR: 400000.0, SizeMq: 150.0},
	})

	r := ObservedRanges(table)
	spec := FilterSpec{PriceMin: r.PriceMin, PriceMax: r.PriceMax, SizeMin: r.SizeMin, SizeMax: r.SizeMax}

	if got := Filter(table, spec); len(got) != len(table) {
		t.Errorf("full observed range kept %d of %d rows", len(got), len(table))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	table := sampleTable()
	spec := wideSpec()
	spec.Rooms = []int{2, 3}

	got := Filter(table, spec)

	// surviving rows keep their source order
	last := -1
	for _, l := range got {
		idx := -1
		for i, src := range table {
			if src == l {
				idx = i
				break
			}
		}
		if idx <= last {
			t.Fatalf("filter reordered rows: %v", names(got))
		}
		last = idx
	}

	if len(table) != 3 {
		t.Errorf("filter mutated its input, now %d rows", len(table))
	}
}
