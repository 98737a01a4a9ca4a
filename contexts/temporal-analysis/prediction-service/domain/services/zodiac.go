package services

import "math"

// ZodiacSigns in ecliptic order, 30 degrees each starting at 0 Aries.
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// DMS is an angle broken into degrees, arc minutes and arc seconds.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64
}

// ZodiacPosition locates an ecliptic longitude within its sign.
type ZodiacPosition struct {
	Sign         string
	SignIndex    int
	DegInSign    float64
	DegInSignDMS DMS
}

// NormalizeDegrees folds any angle into [0, 360). Adding 360 to a tiny
// negative remainder can round to exactly 360, so the result is clamped
// back to 0 to keep the half-open interval.
func NormalizeDegrees(angle float64) float64 {
	folded := math.Mod(angle, 360.0)
	if folded < 0 {
		folded += 360.0
	}
	if folded >= 360.0 {
		folded = 0.0
	}
	return folded
}

// DegreesToDMS splits an angle (folded to [0, 360)) into degrees,
// minutes and seconds.
func DegreesToDMS(angle float64) DMS {
	angle = NormalizeDegrees(angle)
	degrees := int(angle)
	minutesFloat := (angle - float64(degrees)) * 60.0
	minutes := int(minutesFloat)
	seconds := (minutesFloat - float64(minutes)) * 60.0
	return DMS{Degrees: degrees, Minutes: minutes, Seconds: seconds}
}

// DegreesToZodiac maps an ecliptic longitude to its zodiac sign and the
// offset inside that sign.
func DegreesToZodiac(angle float64) ZodiacPosition {
	angle = NormalizeDegrees(angle)
	signIndex := int(angle / 30.0)
	degInSign := math.Mod(angle, 30.0)
	return ZodiacPosition{
		Sign:         ZodiacSigns[signIndex],
		SignIndex:    signIndex,
		DegInSign:    degInSign,
		DegInSignDMS: DegreesToDMS(degInSign),
	}
}

// WholeSignHouses assigns one sign per house starting from the
// ascendant's sign (house 1). The returned slice is indexed house-1.
func WholeSignHouses(ascendantDeg float64) []string {
	ascIndex := DegreesToZodiac(ascendantDeg).SignIndex
	houses := make([]string, 12)
	for house := 0; house < 12; house++ {
		houses[house] = ZodiacSigns[(ascIndex+house)%12]
	}
	return houses
}
