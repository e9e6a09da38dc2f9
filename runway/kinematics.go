// runway/kinematics.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import (
	"github.com/flightops/runwaytower/aviation"
	"github.com/flightops/runwaytower/math"
)

// RolloutSpeedKt is the ground-speed at or below which an aircraft on
// the ground on the runway strip is considered to be on its rollout.
const RolloutSpeedKt float32 = 40

// stoppedSpeedKt is the ground-speed at or below which a flight is
// treated as stationary for has_vacated purposes.
const stoppedSpeedKt float32 = 5

// SecondsToTouchdown estimates the remaining time until f's wheels
// touch, from its vertical speed and altitude above the field. Returns
// Infinity if f is not presently descending toward the ground.
func SecondsToTouchdown(f aviation.Flight) float32 {
	vs := f.VerticalSpeedFPM()
	if f.OnGround() || vs >= 0 {
		return Infinity
	}
	alt := f.AltitudeAGLFeet()
	if alt <= 0 {
		return 0
	}
	return alt / math.Abs(vs) * 60
}

// DistanceNMOnFinal returns the great-circle distance from f to the
// runway end's centerline, in nautical miles.
func DistanceNMOnFinal(f aviation.Flight, end aviation.RunwayEnd) float32 {
	return math.NMDistance2LL(f.Position(), end.Centerline())
}

// IsOnRollout reports whether f is on the ground, on the runway strip,
// and at or below RolloutSpeedKt; a faster ground roll does not count.
func IsOnRollout(f aviation.Flight, end aviation.RunwayEnd) bool {
	return f.OnGround() && end.Contains(f.Position()) && f.GroundSpeedKt() <= RolloutSpeedKt
}

// HasVacated reports whether f has come to rest (or is taxiing slowly)
// clear of the runway strip.
func HasVacated(f aviation.Flight, end aviation.RunwayEnd) bool {
	return f.OnGround() && f.GroundSpeedKt() <= stoppedSpeedKt && !end.Contains(f.Position())
}

// IsIncursion reports whether f is on the ground, on the runway strip,
// without any board slot accounting for its presence there. permitted
// must be true when some board slot (cleared-to-land, cleared-to-
// takeoff, crossing, etc.) already explains f's presence.
func IsIncursion(f aviation.Flight, end aviation.RunwayEnd, permitted bool) bool {
	return f.OnGround() && end.Contains(f.Position()) && !permitted
}
