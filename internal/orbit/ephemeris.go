package orbit

import "math"

// Angle returns p's orbital angle in radians after days from BaselineDate.
// The angle wraps through the modulo, so any finite day count is valid.
func Angle(p Planet, days float64) float64 {
	frac := math.Mod(days, p.PeriodDays) / p.PeriodDays
	return p.PhaseDeg*math.Pi/180 + 2*math.Pi*frac
}

// Position returns p's display-space pixel position after days from
// BaselineDate, rounded to the nearest pixel. Pure query, no side effects.
func (p Planet) Position(days float64) (int, int) {
	angle := Angle(p, days)
	x := float64(SunX) + float64(p.RadiusPx)*math.Cos(angle)
	y := float64(SunY) + float64(p.RadiusPx)*math.Sin(angle)
	return int(math.Round(x)), int(math.Round(y))
}
