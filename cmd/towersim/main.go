// cmd/towersim/main.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command towersim drives a runway.Arbiter with a small synthetic
// traffic feed, ticking a simulated clock and printing every event the
// arbiter emits. It exists to exercise the runway package the way a
// real simulation's tick loop would, not to model a full airport.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flightops/runwaytower/aviation"
	tlog "github.com/flightops/runwaytower/log"
	"github.com/flightops/runwaytower/math"
	"github.com/flightops/runwaytower/runway"
)

// scriptedFlight is a flight whose kinematic state advances on every
// tick according to a fixed closing speed, standing in for telemetry a
// real simulation would supply.
type scriptedFlight struct {
	id           string
	aircraftType string
	role         aviation.Role
	pos          math.Point2LL
	altAGL       float32
	groundSpeed  float32
	verticalFPM  float32
	onGround     bool
}

func (f *scriptedFlight) ID() string               { return f.id }
func (f *scriptedFlight) Position() math.Point2LL  { return f.pos }
func (f *scriptedFlight) AltitudeAGLFeet() float32 { return f.altAGL }
func (f *scriptedFlight) GroundSpeedKt() float32   { return f.groundSpeed }
func (f *scriptedFlight) VerticalSpeedFPM() float32 { return f.verticalFPM }
func (f *scriptedFlight) AircraftType() string     { return f.aircraftType }
func (f *scriptedFlight) Role() aviation.Role      { return f.role }
func (f *scriptedFlight) OnGround() bool           { return f.onGround }

func (f *scriptedFlight) tick(dtSeconds float32) {
	if !f.onGround {
		f.altAGL += f.verticalFPM / 60 * dtSeconds
		if f.altAGL <= 0 {
			f.altAGL = 0
			f.onGround = true
			f.verticalFPM = 0
		}
	}
}

type printListener struct{ id string }

func (p printListener) Notify(e runway.Event) {
	fmt.Printf("[%s] %s\n", p.id, e)
}

func main() {
	ticks := flag.Int("ticks", 20, "number of one-second ticks to simulate")
	logDir := flag.String("log-dir", "", "directory for the structured log (default: OS user config dir)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := tlog.New(*logLevel, *logDir)

	end := aviation.NewRunwayEnd("27", 270, math.Point2LL{-122.375, 37.621}, 13, 45, 2, 85)
	rec := aviation.NewRunwayEnd("09", 90, math.Point2LL{-122.375, 37.621}, 13, 45, 2, 85)
	rwy := aviation.Runway{Id: "09/27", End: end, Rec: rec}

	a := runway.NewArbiter(rwy, end, runway.DefaultTimingThresholds(), nil, logger)

	f1 := &scriptedFlight{id: "UAL123", aircraftType: "B738", role: aviation.RoleArrival, altAGL: 3000, verticalFPM: -900, groundSpeed: 150}
	f2 := &scriptedFlight{id: "SWA456", aircraftType: "B38M", role: aviation.RoleDeparture, onGround: true}

	a.CheckInArrival(f1, printListener{id: f1.id})
	a.CheckInDeparture(f2, printListener{id: f2.id})

	for t := 1; t <= *ticks; t++ {
		f1.tick(1)
		a.ProgressTo(float32(t))
	}

	diag := a.Board().Diagnostics()
	fmt.Fprintf(os.Stderr, "final board: %v\n", diag)
}
