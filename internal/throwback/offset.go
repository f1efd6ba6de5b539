package throwback

import "time"

// Offset is one fixed historical distance resolved to a calendar date.
type Offset struct {
	Key   string    // stable id stored in the settings record, e.g. "7 years"
	Label string    // human readable label, e.g. "Seven years ago"
	Date  time.Time // midnight of the resolved day in today's location
}

type offsetDef struct {
	key    string
	label  string
	years  int
	months int
	days   int
}

// catalog is ordered from the most distant to the most recent offset.
var catalog = []offsetDef{ //nolint:gochecknoglobals
	{key: "7 years", label: "Seven years ago", years: 7},
	{key: "6 years", label: "Six years ago", years: 6},
	{key: "5 years", label: "Five years ago", years: 5},
	{key: "4 years", label: "Four years ago", years: 4},
	{key: "3 years", label: "Three years ago", years: 3},
	{key: "2 years", label: "Two years ago", years: 2},
	{key: "1 year", label: "One year ago", years: 1},
	{key: "6 months", label: "Six Months ago", months: 6},
	{key: "3 months", label: "Three Months ago", months: 3},
	{key: "1 month", label: "One Month ago", months: 1},
	{key: "1 week", label: "One Week ago", days: 7},
}

// ResolveOffsets returns the fixed offsets resolved against today.
//
// Years and months are subtracted from the calendar components and clamped to
// the last day of the target month, so 29 Feb minus one year is 28 Feb and
// 31 Mar minus one month is the last day of February. The result is never
// cached, every call recomputes it from today.
func ResolveOffsets(today time.Time) []Offset {
	offsets := make([]Offset, 0, len(catalog))

	for _, def := range catalog {
		var date time.Time

		switch {
		case def.days > 0:
			y, m, d := today.Date()
			date = time.Date(y, m, d-def.days, 0, 0, 0, 0, today.Location())
		default:
			date = subtractMonths(today, def.years*12+def.months) //nolint:mnd
		}

		offsets = append(offsets, Offset{
			Key:   def.key,
			Label: def.label,
			Date:  date,
		})
	}

	return offsets
}

// LookupOffset searches offsets for key. The second return value is false if
// the key is unknown, callers are expected to skip such keys.
func LookupOffset(offsets []Offset, key string) (Offset, bool) {
	for _, o := range offsets {
		if o.Key == key {
			return o, true
		}
	}

	return Offset{}, false
}

// OffsetKeys returns the keys of the catalog in their fixed order.
func OffsetKeys() []string {
	keys := make([]string, len(catalog))
	for i, def := range catalog {
		keys[i] = def.key
	}

	return keys
}

// subtractMonths moves t back by n months with month-end clamping and
// truncates the result to midnight.
func subtractMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()

	// day 1 never overflows, so the target month is exact
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())

	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
