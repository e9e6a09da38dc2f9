// runway/testflight_test.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import (
	"github.com/flightops/runwaytower/aviation"
	"github.com/flightops/runwaytower/math"
)

// fakeFlight is a minimal in-package aviation.Flight used by the
// arbiter's tests; it has no simulation of its own and is mutated
// directly by test code between ticks.
type fakeFlight struct {
	id           string
	pos          math.Point2LL
	altAGL       float32
	groundSpeed  float32
	verticalFPM  float32
	aircraftType string
	role         aviation.Role
	onGround     bool
}

func (f *fakeFlight) ID() string                     { return f.id }
func (f *fakeFlight) Position() math.Point2LL        { return f.pos }
func (f *fakeFlight) AltitudeAGLFeet() float32        { return f.altAGL }
func (f *fakeFlight) GroundSpeedKt() float32          { return f.groundSpeed }
func (f *fakeFlight) VerticalSpeedFPM() float32       { return f.verticalFPM }
func (f *fakeFlight) AircraftType() string            { return f.aircraftType }
func (f *fakeFlight) Role() aviation.Role             { return f.role }
func (f *fakeFlight) OnGround() bool                  { return f.onGround }

// arrivalAtSeconds builds a fake arrival whose SecondsToTouchdown
// evaluates to approximately s, holding altitude and ground speed
// fixed and deriving vertical speed and a final-approach position
// consistent with both.
func arrivalAtSeconds(id string, s float32) *fakeFlight {
	const altAGL = 1500.0
	const groundSpeed = 140.0
	vs := -altAGL / s * 60
	distNM := groundSpeed * s / 3600
	_, end := testRunway()
	pos := math.Offset2LL(end.Centerline(), math.OppositeHeading(end.HeadingDegrees()), distNM, 45)
	return &fakeFlight{
		id:           id,
		pos:          pos,
		altAGL:       altAGL,
		verticalFPM:  vs,
		groundSpeed:  groundSpeed,
		aircraftType: "A320",
		role:         aviation.RoleArrival,
		onGround:     false,
	}
}

// onRunway is a point guaranteed to fall within testRunway's strip
// polygon, used so fake ground traffic defaults to "on the runway"
// until a test explicitly moves it clear.
var onRunway = math.Point2LL{-73, 40}

func departure(id string) *fakeFlight {
	return &fakeFlight{id: id, pos: onRunway, aircraftType: "B738", role: aviation.RoleDeparture, onGround: true, groundSpeed: 0}
}

func crosser(id string) *fakeFlight {
	return &fakeFlight{id: id, pos: onRunway, aircraftType: "C172", role: aviation.RoleTaxi, onGround: true, groundSpeed: 10}
}

// recorder is a Listener that appends every event it receives.
type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) { r.events = append(r.events, e) }

func (r *recorder) last() (Event, bool) {
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// testRunway returns a runway/end pair with a nominal 2nm strip
// running east from a threshold at (-73, 40), suitable for
// HasVacated/Contains tests: arrivals are positioned in the air west
// of it, and only flights placed at onRunway sit inside the strip.
func testRunway() (aviation.Runway, aviation.RunwayEnd) {
	end := aviation.NewRunwayEnd("09", 90, math.Point2LL{-73, 40}, 600, 45, 2, 45)
	rec := aviation.NewRunwayEnd("27", 270, math.Point2LL{-73, 40}, 600, 45, 2, 45)
	return aviation.Runway{Id: "09/27", End: end, Rec: rec}, end
}
