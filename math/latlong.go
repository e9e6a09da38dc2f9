// math/latlong.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// NMPerLatitude is the number of nautical miles per degree of latitude;
// this is constant across the globe, unlike longitude, where the
// nautical-miles-per-degree conversion depends on the latitude of the
// airport in question.
const NMPerLatitude = 60

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude.
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 { return p[0] }
func (p Point2LL) Latitude() float32  { return p[1] }

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

func (p Point2LL) String() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0])
}

// NMDistance2LL returns the great-circle distance between two
// latitude-longitude points, in nautical miles.
func NMDistance2LL(a, b Point2LL) float32 {
	// https://www.movable-type.co.uk/scripts/latlong.html
	const R = 6371000 // metres
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(a[1]), rad(a[0])
	lat2, lon2 := rad(b[1]), rad(b[0])
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dm := R * c // metres

	return float32(dm * 0.000539957)
}

// NM2LL converts a point expressed in nautical miles relative to the
// origin into a latitude-longitude point, given the nautical-miles-per-
// degree-longitude conversion factor that applies at the origin's
// latitude.
func NM2LL(p [2]float32, nmPerLongitude float32) Point2LL {
	return Point2LL{p[0] / nmPerLongitude, p[1] / NMPerLatitude}
}

// LL2NM is the inverse of NM2LL.
func LL2NM(p Point2LL, nmPerLongitude float32) [2]float32 {
	return [2]float32{p[0] * nmPerLongitude, p[1] * NMPerLatitude}
}

// Offset2LL returns the point that is dist nautical miles from pll along
// heading hdg.
func Offset2LL(pll Point2LL, hdg float32, dist float32, nmPerLongitude float32) Point2LL {
	p := LL2NM(pll, nmPerLongitude)
	h := Radians(hdg)
	v := [2]float32{sin(h), cos(h)}
	v = Scale2f(v, dist)
	p = Add2f(p, v)
	return NM2LL(p, nmPerLongitude)
}

func sin(x float32) float32 { return float32(gomath.Sin(float64(x))) }
func cos(x float32) float32 { return float32(gomath.Cos(float64(x))) }
