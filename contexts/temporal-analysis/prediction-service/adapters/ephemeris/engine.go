package ephemeris

import (
	"math"
	"time"

	"senkron/contexts/temporal-analysis/prediction-service/domain/services"
	"senkron/contexts/temporal-analysis/prediction-service/ports"
)

// j2000 is the standard epoch the mean elements are referenced to.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// orbit holds circular mean elements: longitude at epoch, daily motion,
// and orbital radius in AU. Radius zero marks bodies treated as directly
// geocentric (sun, moon), whose tabulated longitude already is the
// geocentric one.
type orbit struct {
	name     string
	epochLon float64
	dailyDeg float64
	radiusAU float64
}

// Mean elements at J2000. Planet longitudes are heliocentric; the
// engine converts them to geocentric using Earth's own orbit, which is
// what makes apparent retrograde motion fall out of the model.
var (
	earthOrbit = orbit{name: "earth", epochLon: 100.464, dailyDeg: 0.98560911, radiusAU: 1.0}

	bodies = []orbit{
		{name: "sun", epochLon: 280.460, dailyDeg: 0.98564736},
		{name: "moon", epochLon: 218.316, dailyDeg: 13.176396},
		{name: "mercury", epochLon: 252.251, dailyDeg: 4.09233445, radiusAU: 0.387098},
		{name: "venus", epochLon: 181.980, dailyDeg: 1.60213034, radiusAU: 0.723332},
		{name: "mars", epochLon: 355.447, dailyDeg: 0.52402068, radiusAU: 1.523679},
		{name: "jupiter", epochLon: 34.396, dailyDeg: 0.08308529, radiusAU: 5.2044},
		{name: "saturn", epochLon: 49.954, dailyDeg: 0.03344414, radiusAU: 9.5826},
		{name: "uranus", epochLon: 313.238, dailyDeg: 0.01172834, radiusAU: 19.2184},
		{name: "neptune", epochLon: 304.880, dailyDeg: 0.00598103, radiusAU: 30.110},
		{name: "pluto", epochLon: 238.929, dailyDeg: 0.00396, radiusAU: 39.482},
	}
)

// Engine computes geocentric ecliptic longitudes from mean circular
// orbits. The model trades arcminute accuracy for zero external data:
// good enough for sign placement and retrograde flags, not for
// eclipse-grade work.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// PositionsAt returns the geocentric position of every supported body
// at the given instant, ordered sun to pluto.
func (e *Engine) PositionsAt(when time.Time) ([]ports.BodyPosition, error) {
	positions := make([]ports.BodyPosition, 0, len(bodies))
	for _, body := range bodies {
		lon := geocentricLongitude(body, when)
		positions = append(positions, ports.BodyPosition{
			Name:       body.name,
			Longitude:  lon,
			Retrograde: isRetrograde(body, when),
			Zodiac:     services.DegreesToZodiac(lon),
		})
	}
	return positions, nil
}

// geocentricLongitude computes the apparent ecliptic longitude seen
// from Earth. Sun and moon use their tabulated geocentric longitude
// directly; planets are projected from heliocentric circular positions.
func geocentricLongitude(body orbit, when time.Time) float64 {
	days := when.Sub(j2000).Hours() / 24.0
	meanLon := services.NormalizeDegrees(body.epochLon + body.dailyDeg*days)
	if body.radiusAU == 0 {
		return meanLon
	}

	planetX, planetY := orbitalXY(body.radiusAU, meanLon)
	earthLon := services.NormalizeDegrees(earthOrbit.epochLon + earthOrbit.dailyDeg*days)
	earthX, earthY := orbitalXY(earthOrbit.radiusAU, earthLon)

	lon := math.Atan2(planetY-earthY, planetX-earthX) * 180.0 / math.Pi
	return services.NormalizeDegrees(lon)
}

func orbitalXY(radius, lonDeg float64) (float64, float64) {
	rad := lonDeg * math.Pi / 180.0
	return radius * math.Cos(rad), radius * math.Sin(rad)
}

// isRetrograde samples the geocentric longitude one day apart and flags
// a negative derivative. Sun and moon never show retrograde motion.
func isRetrograde(body orbit, when time.Time) bool {
	if body.name == "sun" || body.name == "moon" {
		return false
	}

	lon1 := geocentricLongitude(body, when)
	lon2 := geocentricLongitude(body, when.AddDate(0, 0, 1))

	// Unwrap across the 0/360 seam before differencing.
	if math.Abs(lon2-lon1) > 180 {
		if lon2 > lon1 {
			lon1 += 360
		} else {
			lon2 += 360
		}
	}
	return lon2-lon1 < 0
}
