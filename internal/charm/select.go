package charm

import (
	"math/rand/v2"
	"time"
)

// dateKeyLayout is the calendar-date format used both as the selector
// seed and as the history key.
const dateKeyLayout = "2006-01-02"

// DateKey formats t as a YYYY-MM-DD calendar date in UTC. UTC (not the
// device zone) is deliberate: every device must derive the same key for
// the same instant, otherwise two phones either side of midnight would
// disagree on today's charm.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// ForDate returns the charm for the given date. The mapping is a pure
// function of the date key: a polynomial hash with multiplier 31 over the
// key's bytes, reduced with 32-bit signed wraparound, then abs-mod'ed into
// the catalog. Any reimplementation must reproduce this exactly, since
// already-persisted history was produced by it.
func ForDate(t time.Time, catalog []Record) Record {
	return forKey(DateKey(t), catalog)
}

func forKey(key string, catalog []Record) Record {
	var hash int32
	for i := 0; i < len(key); i++ {
		hash = hash*31 + int32(key[i])
	}
	// Widen before abs: int32 negation overflows at math.MinInt32.
	idx := int(abs64(int64(hash))) % len(catalog)
	return catalog[idx]
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Random returns a uniformly random catalog entry. Used only for
// auxiliary text such as reminder bodies; the persisted daily charm
// always comes from ForDate.
func Random(catalog []Record) Record {
	return catalog[rand.IntN(len(catalog))]
}
