package orbit

import (
	"fmt"
	"math"
	"time"
)

// Display geometry the planet table is scaled for: the original 240x240
// panel with the Sun on its center pixel.
const (
	DisplayWidth  = 240
	DisplayHeight = 240
	SunX          = DisplayWidth / 2
	SunY          = DisplayHeight / 2

	// SunRadius is the filled disc drawn for the Sun itself.
	SunRadius = 4
)

// TrackClass controls how bright a planet's orbit track is drawn.
type TrackClass uint8

const (
	TrackInner TrackClass = iota // rocky inner four, brighter track
	TrackOuter                   // gas and ice giants, darker track
)

// String returns the track class's label.
func (t TrackClass) String() string {
	if t == TrackInner {
		return "inner-rocky"
	}
	return "outer"
}

// Planet is one row of the static ephemeris table.
type Planet struct {
	Name       string
	PeriodDays float64    // sidereal orbital period
	RadiusPx   int        // orbit track radius in display pixels
	PhaseDeg   float64    // heliocentric mean longitude at BaselineDate
	Track      TrackClass // track brightness class
	Home       bool       // Earth: gets the distinct track color for orientation
}

// BaselineDate is the reference date the phase constants were derived for.
// Day counts fed to Position are measured from this instant.
var BaselineDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// planetCount is the number of rows the table must carry, one per planet.
const planetCount = 8

// Planets is the fixed eight-planet table, Mercury innermost.
// Radii follow the original panel layout (14*(n+1)+2 px); phases are mean
// longitudes on BaselineDate derived from the standard J2000 elements.
var Planets = [planetCount]Planet{
	{Name: "Mercury", PeriodDays: 87.97, RadiusPx: 16, PhaseDeg: 123.6459, Track: TrackInner},
	{Name: "Venus", PeriodDays: 224.70, RadiusPx: 30, PhaseDeg: 185.4537, Track: TrackInner},
	{Name: "Earth", PeriodDays: 365.25, RadiusPx: 44, PhaseDeg: 99.8212, Track: TrackInner, Home: true},
	{Name: "Mars", PeriodDays: 686.97, RadiusPx: 58, PhaseDeg: 268.8572, Track: TrackInner},
	{Name: "Jupiter", PeriodDays: 4332.59, RadiusPx: 72, PhaseDeg: 42.6940, Track: TrackOuter},
	{Name: "Saturn", PeriodDays: 10759.22, RadiusPx: 86, PhaseDeg: 343.3360, Track: TrackOuter},
	{Name: "Uranus", PeriodDays: 30688.5, RadiusPx: 100, PhaseDeg: 56.0679, Track: TrackOuter},
	{Name: "Neptune", PeriodDays: 60182, RadiusPx: 114, PhaseDeg: 357.3072, Track: TrackOuter},
}

// LongestPeriod returns the longest orbital period in the table (Neptune's),
// the demo mode's full-tour wrap boundary.
func LongestPeriod() float64 {
	longest := 0.0
	for _, p := range Planets {
		if p.PeriodDays > longest {
			longest = p.PeriodDays
		}
	}
	return longest
}

// ValidatePlanets sanity-checks the static table. A failure here means the
// binary shipped with corrupt data and must not enter the frame loop.
func ValidatePlanets() error {
	return validateTable(Planets[:])
}

func validateTable(ps []Planet) error {
	if len(ps) != planetCount {
		return fmt.Errorf("planet table has %d entries, want %d", len(ps), planetCount)
	}
	prevRadius := 0
	for i, p := range ps {
		if p.Name == "" {
			return fmt.Errorf("planet %d has no name", i)
		}
		if p.PeriodDays <= 0 || math.IsNaN(p.PeriodDays) || math.IsInf(p.PeriodDays, 0) {
			return fmt.Errorf("planet %s: bad orbital period %v", p.Name, p.PeriodDays)
		}
		if p.RadiusPx <= prevRadius {
			return fmt.Errorf("planet %s: track radius %d not above previous %d", p.Name, p.RadiusPx, prevRadius)
		}
		if math.IsNaN(p.PhaseDeg) || math.IsInf(p.PhaseDeg, 0) {
			return fmt.Errorf("planet %s: bad phase %v", p.Name, p.PhaseDeg)
		}
		prevRadius = p.RadiusPx
	}
	return nil
}

// DaysSince converts a calendar instant into fractional days from
// BaselineDate. Negative for dates before the baseline.
func DaysSince(t time.Time) float64 {
	return t.Sub(BaselineDate).Hours() / 24
}
