// math/heading.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

// HeadingDifference returns the minimum difference between two headings,
// always in the range [0,180].
func HeadingDifference(a, b float32) float32 {
	d := Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// NormalizeHeading reduces h to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return Mod(360-NormalizeHeading(-h), 360)
	}
	return Mod(h, 360)
}

// OppositeHeading returns the reciprocal heading of h.
func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}

// Heading2LL returns the heading from the point from to the point to, in
// degrees, corrected for magnetic variation.
func Heading2LL(from, to Point2LL, nmPerLongitude, magCorrection float32) float32 {
	v := Point2LL{to[0] - from[0], to[1] - from[1]}
	angle := Degrees(atan2(v[0]*nmPerLongitude, v[1]*NMPerLatitude))
	return NormalizeHeading(angle + magCorrection)
}

func atan2(y, x float32) float32 {
	return float32(gomath.Atan2(float64(y), float64(x)))
}
