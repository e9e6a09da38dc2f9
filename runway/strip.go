// runway/strip.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import "github.com/flightops/runwaytower/aviation"

// FlightStrip is the board's per-flight record: the flight it tracks,
// the sink its events are delivered to, and the last event sent, used
// to suppress duplicate emissions. Equality between strips is by
// flight identity.
type FlightStrip struct {
	Flight    aviation.Flight
	Listener  Listener
	LastEvent *Event

	checkedInAt float32 // seconds-to-touchdown observed at check-in (arrivals only; 0 otherwise), insertArrival's sort key
	seq         int     // insertion sequence, for stable ordering
}

func newStrip(f aviation.Flight, l Listener, seq int) *FlightStrip {
	return &FlightStrip{Flight: f, Listener: l, seq: seq}
}

// notify delivers e to the strip's listener unless it is semantically
// equal to the last event delivered.
func (s *FlightStrip) notify(e Event) {
	if s.LastEvent != nil && s.LastEvent.Equal(e) {
		return
	}
	ev := e
	s.LastEvent = &ev
	s.Listener.Notify(e)
}

func (s *FlightStrip) id() string { return s.Flight.ID() }
