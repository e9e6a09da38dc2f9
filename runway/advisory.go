// runway/advisory.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import (
	"github.com/flightops/runwaytower/aviation"
	"github.com/flightops/runwaytower/math"
)

const maxAdvisories = 2

// composeAdvisories builds the ordered advisory list that must
// accompany an event bound for s, given the current board and the
// runway end s's distance is measured against. Rules are applied in
// the enumeration order of §4.2; duplicates and self-references are
// dropped; the result never exceeds two items.
func composeAdvisories(s *FlightStrip, b *StripBoard, end aviation.RunwayEnd) []Advisory {
	var out []Advisory
	add := func(a Advisory) {
		if len(out) >= maxAdvisories {
			return
		}
		for _, existing := range out {
			if existing == a {
				return
			}
		}
		out = append(out, a)
	}

	milesOf := func(other *FlightStrip) int {
		d := DistanceNMOnFinal(other.Flight, end)
		miles := int(math.Floor(d))
		if miles < 1 {
			miles = 1
		}
		return miles
	}

	// Rule 1: another strip cleared to land, phrased for an outbound
	// arrival. Departures and crossers get the same fact via rule 5's
	// TrafficOnFinal wording instead, so this and rule 5 never both
	// fire for the same strip.
	if b.ClearedToLand != nil && b.ClearedToLand != s && s.Flight.Role() == aviation.RoleArrival {
		add(Advisory{Kind: AdvisoryLandingAhead, AircraftType: b.ClearedToLand.Flight.AircraftType(), Miles: milesOf(b.ClearedToLand)})
	}

	// Rule 2: a preceding arrival in the queue.
	if idx := indexOfStrip(b.ArrivalsLine, s); idx > 0 {
		ahead := b.ArrivalsLine[idx-1]
		add(Advisory{Kind: AdvisoryLandingAhead, AircraftType: ahead.Flight.AircraftType(), Miles: milesOf(ahead)})
	}

	// Rule 3: an active or authorized crossing, for a non-crossing outbound flight.
	if s.Flight.Role() != aviation.RoleTaxi {
		for _, c := range append(append([]*FlightStrip{}, b.Crossing...), b.ClearedToCross...) {
			if c == s {
				continue
			}
			add(Advisory{Kind: AdvisoryCrossingRunway, AircraftType: c.Flight.AircraftType()})
		}
	}

	// Rule 4: LUAW or cleared-to-takeoff, for an outbound arrival.
	if s.Flight.Role() == aviation.RoleArrival {
		if b.AuthorizedLUAW != nil && b.AuthorizedLUAW != s {
			add(Advisory{Kind: AdvisoryDepartingAhead, AircraftType: b.AuthorizedLUAW.Flight.AircraftType()})
		}
		if b.ClearedToTakeoff != nil && b.ClearedToTakeoff != s {
			add(Advisory{Kind: AdvisoryDepartingAhead, AircraftType: b.ClearedToTakeoff.Flight.AircraftType()})
		}
	}

	// Rule 5: the nearest landing traffic, for an outbound departure or
	// crosser — whether that traffic already holds cleared_to_land or
	// is simply the next strip up in arrivals_line, so a departure
	// being offered LUAW well before any clearance is issued still
	// hears about the arrival it is lining up ahead of.
	if s.Flight.Role() != aviation.RoleArrival {
		landing := b.ClearedToLand
		if landing == nil && len(b.ArrivalsLine) > 0 {
			landing = b.ArrivalsLine[0]
		}
		if landing != nil && landing != s {
			add(Advisory{Kind: AdvisoryTrafficOnFinal, AircraftType: landing.Flight.AircraftType(), Miles: milesOf(landing)})
		}
	}

	// Rule 6: a landing that touched down but hasn't vacated, for an outbound arrival.
	if s.Flight.Role() == aviation.RoleArrival && b.ClearedToLand != nil && b.ClearedToLand != s && b.ClearedToLand.Flight.OnGround() {
		add(Advisory{Kind: AdvisoryLandedOnRunway, AircraftType: b.ClearedToLand.Flight.AircraftType()})
	}

	return out
}
