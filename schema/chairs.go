package schema

import "time"

// DefaultTenures lists the Fed Chair terms covered by the animation,
// in chronological order. Dates are inclusive on both ends.
var DefaultTenures = []Tenure{
	{Chair: "Arthur Burns", Start: date(1970, 2, 1), End: date(1978, 1, 31)},
	{Chair: "William Miller", Start: date(1978, 3, 8), End: date(1979, 8, 6)},
	{Chair: "Paul Volcker", Start: date(1979, 8, 6), End: date(1987, 8, 11)},
	{Chair: "Alan Greenspan", Start: date(1987, 8, 11), End: date(2006, 1, 31)},
	{Chair: "Ben Bernanke", Start: date(2006, 2, 1), End: date(2014, 1, 31)},
	{Chair: "Janet Yellen", Start: date(2014, 2, 3), End: date(2018, 2, 3)},
	{Chair: "Jerome Powell", Start: date(2018, 2, 5), End: date(2025, 12, 31)},
}

// DefaultPalette maps each chair to its line and fill color.
// The values follow the ColorBrewer Set1 palette.
var DefaultPalette = map[string]RGB{
	"Arthur Burns":   mustRGB("rgb(228,26,28)"),
	"William Miller": mustRGB("rgb(55,126,184)"),
	"Paul Volcker":   mustRGB("rgb(77,175,74)"),
	"Alan Greenspan": mustRGB("rgb(152,78,163)"),
	"Ben Bernanke":   mustRGB("rgb(255,127,0)"),
	"Janet Yellen":   mustRGB("rgb(255,255,51)"),
	"Jerome Powell":  mustRGB("rgb(166,86,40)"),
}

// ChairAt returns the chair in office at the given date, or false if the date
// falls outside every tenure.
func ChairAt(tenures []Tenure, d time.Time) (string, bool) {
	for _, t := range tenures {
		if t.Contains(d) {
			return t.Chair, true
		}
	}
	return "", false
}

// ChairOrder returns the chair names of the given tenures in term order.
func ChairOrder(tenures []Tenure) []string {
	chairs := make([]string, len(tenures))
	for i, t := range tenures {
		chairs[i] = t.Chair
	}
	return chairs
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRGB(s string) RGB {
	c, err := ParseRGBString(s)
	if err != nil {
		panic(err)
	}
	return c
}
