// runway/board.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import (
	"sort"

	"github.com/iancoleman/orderedmap"
)

// Flags is a bitset of runway occupancy state.
type Flags int

const (
	FlagVacated Flags = 1 << iota
	FlagClearedLanding
	FlagClearedTakeoff
	FlagClearedCrossing
	FlagAuthorizedLUAW
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// StripBoard is the in-memory table of strips the arbiter maintains
// for one runway end: arrival, departure, and crossing queues, the
// singleton landing/takeoff/LUAW slots, the set of active crossings,
// and the occupancy flags.
//
// A flight appears in at most one collection at any time; callers
// should treat StripBoard as owned by a single Arbiter and never
// mutate it directly.
type StripBoard struct {
	ArrivalsLine   []*FlightStrip
	DeparturesLine []*FlightStrip
	CrossingsLine  []*FlightStrip

	ClearedToLand   *FlightStrip
	ClearedToTakeoff *FlightStrip
	AuthorizedLUAW  *FlightStrip

	ClearedToCross []*FlightStrip // cleared, not yet physically on the runway
	Crossing       []*FlightStrip // cleared and physically on the runway

	Flags Flags
}

// NewStripBoard returns an empty board.
func NewStripBoard() *StripBoard {
	return &StripBoard{}
}

// insertArrival appends s to ArrivalsLine, sorted by seconds-to-
// touchdown ascending; ties are broken by insertion order (§4.3).
func (b *StripBoard) insertArrival(s *FlightStrip, secondsToTouchdown float32) {
	s.checkedInAt = secondsToTouchdown
	i := 0
	for ; i < len(b.ArrivalsLine); i++ {
		if secondsToTouchdown < b.ArrivalsLine[i].checkedInAt {
			break
		}
	}
	b.ArrivalsLine = append(b.ArrivalsLine, nil)
	copy(b.ArrivalsLine[i+1:], b.ArrivalsLine[i:])
	b.ArrivalsLine[i] = s
}

// resortArrivals re-orders ArrivalsLine by each strip's *current*
// seconds-to-touchdown, so a later check-in that is closing faster
// than the existing head displaces it. Ties are broken by insertion
// order (§4.3), not by the insertion-time ordering insertArrival used.
func (b *StripBoard) resortArrivals() {
	sort.SliceStable(b.ArrivalsLine, func(i, j int) bool {
		si := SecondsToTouchdown(b.ArrivalsLine[i].Flight)
		sj := SecondsToTouchdown(b.ArrivalsLine[j].Flight)
		if si != sj {
			return si < sj
		}
		return b.ArrivalsLine[i].seq < b.ArrivalsLine[j].seq
	})
}

// insertDeparture appends s to DeparturesLine, FIFO.
func (b *StripBoard) insertDeparture(s *FlightStrip) {
	b.DeparturesLine = append(b.DeparturesLine, s)
}

// insertCrossing appends s to CrossingsLine, FIFO.
func (b *StripBoard) insertCrossing(s *FlightStrip) {
	b.CrossingsLine = append(b.CrossingsLine, s)
}

// canPromoteToLand reports whether the landing preconditions of §4.3
// hold: the runway is wholly clear of any other use.
func (b *StripBoard) canPromoteToLand() bool {
	return b.ClearedToLand == nil && b.ClearedToTakeoff == nil && len(b.Crossing) == 0 && b.AuthorizedLUAW == nil
}

// promoteToLand moves s from ArrivalsLine into ClearedToLand. Returns
// false without effect if the preconditions do not hold.
func (b *StripBoard) promoteToLand(s *FlightStrip) bool {
	if !b.canPromoteToLand() {
		return false
	}
	b.ArrivalsLine = removeStrip(b.ArrivalsLine, s)
	b.ClearedToLand = s
	b.Flags |= FlagClearedLanding
	return true
}

// canPromoteToTakeoff reports whether takeoff preconditions hold given
// the current nearest arrival's seconds-to-touchdown.
func (b *StripBoard) canPromoteToTakeoff(nearestArrivalSeconds float32, th TimingThresholds) bool {
	return b.ClearedToTakeoff == nil && b.ClearedToLand == nil && len(b.Crossing) == 0 && nearestArrivalSeconds > th.TakeoffBeforeLandingMin
}

// promoteToTakeoff moves s from DeparturesLine or AuthorizedLUAW into
// ClearedToTakeoff.
func (b *StripBoard) promoteToTakeoff(s *FlightStrip, nearestArrivalSeconds float32, th TimingThresholds) bool {
	if !b.canPromoteToTakeoff(nearestArrivalSeconds, th) {
		return false
	}
	if b.AuthorizedLUAW == s {
		b.AuthorizedLUAW = nil
		b.Flags &^= FlagAuthorizedLUAW
	} else {
		b.DeparturesLine = removeStrip(b.DeparturesLine, s)
	}
	b.ClearedToTakeoff = s
	b.Flags |= FlagClearedTakeoff
	return true
}

// canPromoteToLUAW reports whether LUAW preconditions hold: same as
// takeoff, except an arrival may exist provided it is comfortably
// further out than LUAWAuthBeforeLandingMin.
func (b *StripBoard) canPromoteToLUAW(nearestArrivalSeconds float32, th TimingThresholds) bool {
	return b.ClearedToTakeoff == nil && b.ClearedToLand == nil && len(b.Crossing) == 0 && nearestArrivalSeconds > th.LUAWAuthBeforeLandingMin
}

// promoteToLUAW moves s from DeparturesLine into AuthorizedLUAW.
func (b *StripBoard) promoteToLUAW(s *FlightStrip, nearestArrivalSeconds float32, th TimingThresholds) bool {
	if b.AuthorizedLUAW != nil || !b.canPromoteToLUAW(nearestArrivalSeconds, th) {
		return false
	}
	b.DeparturesLine = removeStrip(b.DeparturesLine, s)
	b.AuthorizedLUAW = s
	b.Flags |= FlagAuthorizedLUAW
	return true
}

// canPromoteToCross reports whether crossing preconditions hold.
func (b *StripBoard) canPromoteToCross(nearestArrivalSeconds float32, th TimingThresholds) bool {
	return b.ClearedToLand == nil && b.ClearedToTakeoff == nil && nearestArrivalSeconds > th.CrossBeforeLandingMin
}

// promoteToCross moves s from CrossingsLine into ClearedToCross.
func (b *StripBoard) promoteToCross(s *FlightStrip, nearestArrivalSeconds float32, th TimingThresholds) bool {
	if !b.canPromoteToCross(nearestArrivalSeconds, th) {
		return false
	}
	b.CrossingsLine = removeStrip(b.CrossingsLine, s)
	b.ClearedToCross = append(b.ClearedToCross, s)
	b.Flags |= FlagClearedCrossing
	return true
}

// enterRunway moves s from ClearedToCross into Crossing, marking that
// its aircraft has physically entered the runway.
func (b *StripBoard) enterRunway(s *FlightStrip) {
	b.ClearedToCross = removeStrip(b.ClearedToCross, s)
	b.Crossing = append(b.Crossing, s)
}

// retire removes s from every collection it might be a member of and
// clears any flag that solely referred to it.
func (b *StripBoard) retire(s *FlightStrip) {
	b.ArrivalsLine = removeStrip(b.ArrivalsLine, s)
	b.DeparturesLine = removeStrip(b.DeparturesLine, s)
	b.CrossingsLine = removeStrip(b.CrossingsLine, s)
	b.ClearedToCross = removeStrip(b.ClearedToCross, s)
	b.Crossing = removeStrip(b.Crossing, s)

	if b.ClearedToLand == s {
		b.ClearedToLand = nil
		b.Flags &^= FlagClearedLanding
		b.Flags |= FlagVacated
	}
	if b.ClearedToTakeoff == s {
		b.ClearedToTakeoff = nil
		b.Flags &^= FlagClearedTakeoff
		b.Flags |= FlagVacated
	}
	if b.AuthorizedLUAW == s {
		b.AuthorizedLUAW = nil
		b.Flags &^= FlagAuthorizedLUAW
	}
	if len(b.Crossing) == 0 && len(b.ClearedToCross) == 0 {
		b.Flags &^= FlagClearedCrossing
	}
}

func removeStrip(strips []*FlightStrip, s *FlightStrip) []*FlightStrip {
	for i, c := range strips {
		if c == s {
			return append(strips[:i], strips[i+1:]...)
		}
	}
	return strips
}

func indexOfStrip(strips []*FlightStrip, s *FlightStrip) int {
	for i, c := range strips {
		if c == s {
			return i
		}
	}
	return -1
}

// Diagnostics renders the board's slots into an order-preserving map,
// suitable for logging or test fixtures, with keys inserted in the
// fixed slot order of the data model.
func (b *StripBoard) Diagnostics() *orderedmap.OrderedMap {
	ids := func(strips []*FlightStrip) []string {
		out := make([]string, len(strips))
		for i, s := range strips {
			out[i] = s.id()
		}
		return out
	}
	single := func(s *FlightStrip) string {
		if s == nil {
			return ""
		}
		return s.id()
	}

	m := orderedmap.New()
	m.Set("arrivals_line", ids(b.ArrivalsLine))
	m.Set("departures_line", ids(b.DeparturesLine))
	m.Set("crossings_line", ids(b.CrossingsLine))
	m.Set("cleared_to_land", single(b.ClearedToLand))
	m.Set("cleared_to_takeoff", single(b.ClearedToTakeoff))
	m.Set("authorized_luaw", single(b.AuthorizedLUAW))
	m.Set("cleared_to_cross", ids(b.ClearedToCross))
	m.Set("crossing", ids(b.Crossing))
	m.Set("flags", int(b.Flags))
	return m
}
