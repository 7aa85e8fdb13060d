package listing

import (
	"math"
	"strconv"
	"strings"
)

// Derive coerces the numeric columns of every raw row and computes
// price_per_mq. The output has exactly one listing per raw row, in the
// same order. Values that fail coercion become missing, never an error.
func Derive(raw []*RawListing) Table {
	table := make(Table, 0, len(raw))
	for _, r := range raw {
		l := &Listing{
			Name:          r.Name,
			URL:           r.URL,
			Description:   r.Description,
			NumberOfRooms: coerceNumber(r.NumberOfRooms),
			PriceValueEUR: coerceNumber(r.PriceValueEUR),
			SizeMq:        coerceNumber(r.SizeMq),
		}
		l.PricePerMq = pricePerMq(l.PriceValueEUR, l.SizeMq)
		table = append(table, l)
	}

	return table
}

// pricePerMq guards only the denominator: a missing or zero size yields
// a flat 0 so downstream averaging stays simple, while a missing price
// with a usable size stays missing.
func pricePerMq(price, size *float64) *float64 {
	if size == nil || *size == 0 {
		zero := 0.0
		return &zero
	}

	if price == nil {
		return nil
	}

	v := *price / *size
	return &v
}

// coerceNumber turns whatever the driver handed back into a float, or
// nil when the value is absent or not numeric. Lenient on purpose.
func coerceNumber(v any) *float64 {
	var f float64

	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}
