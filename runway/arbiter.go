// runway/arbiter.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package runway implements a single-runway-end occupancy arbiter: it
// serializes landings, takeoffs, and surface crossings over a board of
// flight strips, issuing clearances, holds, line-up-and-wait
// authorizations, and go-arounds as a simulation clock ticks forward.
package runway

import (
	"github.com/brunoga/deep"

	"github.com/flightops/runwaytower/aviation"
	loglib "github.com/flightops/runwaytower/log"
)

// Arbiter owns one runway end's strip board and decides, tick by tick,
// who may land, depart, or cross. It is not safe for concurrent use:
// callers must serialize check-in and progress_to calls (§5 of the
// design notes this package implements).
type Arbiter struct {
	runway aviation.Runway
	end    aviation.RunwayEnd
	th     TimingThresholds
	board  *StripBoard
	log    *loglib.Logger

	now     float32 // last progress_to timestamp, seconds
	nowSet  bool
	running bool // re-entrancy guard
	nextSeq int

	// justVacatedDeparture names the aircraft type of a departure that
	// vacated the runway during this tick's phase 1, if any, so phase
	// 4's advisory composition can still credit it in a
	// DepartingAhead advisory for a crossing cleared the same tick.
	justVacatedDeparture string
}

// NewArbiter constructs an arbiter bound to end, with the given timing
// thresholds. board may be nil, in which case an empty board is used.
// log may be nil; a nil Logger silently discards Debug/Info traffic.
func NewArbiter(rwy aviation.Runway, end aviation.RunwayEnd, th TimingThresholds, board *StripBoard, log *loglib.Logger) *Arbiter {
	if board == nil {
		board = NewStripBoard()
	}
	return &Arbiter{runway: rwy, end: end, th: th, board: board, log: log}
}

// Board returns a deep copy of the arbiter's strip board, safe for a
// caller to inspect without risk of aliasing arbiter-owned state.
func (a *Arbiter) Board() *StripBoard {
	return deep.MustCopy(a.board)
}

func (a *Arbiter) enter(op string) {
	if a.running {
		raiseProgrammerError("runway: re-entrant call to %s while another arbiter call is in progress", op)
	}
	a.running = true
	a.log.Debugf("runway: enter %s", op)
}

func (a *Arbiter) leave(op string) {
	a.running = false
	a.log.Debugf("runway: leave %s", op)
}

// CheckInArrival registers f as an arrival and runs one full
// re-evaluation so it receives its first event immediately.
func (a *Arbiter) CheckInArrival(f aviation.Flight, l Listener) {
	a.enter("check_in_arrival")
	defer a.leave("check_in_arrival")

	a.assertNotCheckedIn(f)
	s := newStrip(f, l, a.nextSeq)
	a.nextSeq++
	a.board.insertArrival(s, SecondsToTouchdown(f))
	a.reevaluate()
}

// CheckInDeparture registers f as a departure holding short.
func (a *Arbiter) CheckInDeparture(f aviation.Flight, l Listener) {
	a.enter("check_in_departure")
	defer a.leave("check_in_departure")

	a.assertNotCheckedIn(f)
	s := newStrip(f, l, a.nextSeq)
	a.nextSeq++
	a.board.insertDeparture(s)
	a.reevaluate()
}

// CheckInCrossing registers f as a taxiing flight requesting to cross.
func (a *Arbiter) CheckInCrossing(f aviation.Flight, l Listener) {
	a.enter("check_in_crossing")
	defer a.leave("check_in_crossing")

	a.assertNotCheckedIn(f)
	s := newStrip(f, l, a.nextSeq)
	a.nextSeq++
	a.board.insertCrossing(s)
	a.reevaluate()
}

// ProgressTo advances the arbiter's clock to t (seconds, monotonic
// non-decreasing) and runs one full re-evaluation.
func (a *Arbiter) ProgressTo(t float32) {
	a.enter("progress_to")
	defer a.leave("progress_to")

	if a.nowSet && t < a.now {
		raiseProgrammerError("runway: progress_to called with non-monotonic timestamp %v after %v", t, a.now)
	}
	a.now = t
	a.nowSet = true
	a.reevaluate()
}

func (a *Arbiter) assertNotCheckedIn(f aviation.Flight) {
	for _, strips := range [][]*FlightStrip{a.board.ArrivalsLine, a.board.DeparturesLine, a.board.CrossingsLine, a.board.ClearedToCross, a.board.Crossing} {
		for _, s := range strips {
			if s.id() == f.ID() {
				raiseProgrammerError("runway: flight %s is already checked in", f.ID())
			}
		}
	}
	for _, s := range []*FlightStrip{a.board.ClearedToLand, a.board.ClearedToTakeoff, a.board.AuthorizedLUAW} {
		if s != nil && s.id() == f.ID() {
			raiseProgrammerError("runway: flight %s is already checked in", f.ID())
		}
	}
}

// reevaluate runs the five ordered phases of §4.4 against the current
// board. It is invoked once per check-in and once per progress_to.
func (a *Arbiter) reevaluate() {
	a.justVacatedDeparture = ""
	a.board.resortArrivals()
	a.detectVacates()
	a.advanceArrivals()
	a.advanceTakeoffsAndLUAW()
	a.advanceCrossings()
	a.sendContinues()
}

// nearestArrivalSeconds returns the seconds-to-touchdown of the head
// of the arrivals line, or Infinity if it is empty.
func (a *Arbiter) nearestArrivalSeconds() float32 {
	if len(a.board.ArrivalsLine) == 0 {
		return Infinity
	}
	return SecondsToTouchdown(a.board.ArrivalsLine[0].Flight)
}

// phase 1: vacate detection
func (a *Arbiter) detectVacates() {
	if s := a.board.ClearedToLand; s != nil && HasVacated(s.Flight, a.end) {
		a.board.retire(s)
	}
	// A departure vacates the runway either by lifting off (no longer
	// on the ground at all) or, in an aborted takeoff, by taxiing clear
	// the same way an arrival does.
	if s := a.board.ClearedToTakeoff; s != nil && (!s.Flight.OnGround() || HasVacated(s.Flight, a.end)) {
		a.justVacatedDeparture = s.Flight.AircraftType()
		a.board.retire(s)
	}
	for _, s := range append([]*FlightStrip{}, a.board.Crossing...) {
		if HasVacated(s.Flight, a.end) {
			a.board.retire(s)
		}
	}
}

// phase 2: arrival advancement
func (a *Arbiter) advanceArrivals() {
	if len(a.board.ArrivalsLine) == 0 {
		return
	}
	s := a.board.ArrivalsLine[0]
	sec := SecondsToTouchdown(s.Flight)

	if sec <= a.th.GoAroundMin && !a.board.canPromoteToLand() {
		a.board.retire(s)
		s.notify(Event{Type: GoAround, Reason: ReasonRunwayNotVacated})
		return
	}

	if sec <= a.th.ClearToLandMax && a.board.canPromoteToLand() {
		a.board.promoteToLand(s)
		traffic := composeAdvisories(s, a.board, a.end)
		s.notify(Event{Type: ClearedToLand, NumberInLine: 1, Traffic: traffic})
	}
}

// phase 3: takeoff / LUAW advancement.
//
// A departure not yet authorized to line up is offered LUAW first
// whenever an arrival is inbound and beyond LUAWAuthBeforeLandingMin.
// It receives an actual takeoff clearance (provided the next arrival
// is still beyond TakeoffBeforeLandingMin) when no arrival is inbound
// at all, when it is already positioned in authorized_luaw, or when
// the remaining gap lies in the band between TakeoffBeforeLandingMin
// and LUAWAuthBeforeLandingMin.
func (a *Arbiter) advanceTakeoffsAndLUAW() {
	alreadyLUAW := a.board.AuthorizedLUAW != nil
	var head *FlightStrip
	switch {
	case alreadyLUAW:
		head = a.board.AuthorizedLUAW
	case len(a.board.DeparturesLine) > 0:
		head = a.board.DeparturesLine[0]
	}
	if head == nil {
		return
	}

	nearest := a.nearestArrivalSeconds()

	// LUAW staging only makes sense when there is an actual arrival to
	// stage ahead of; with none inbound, a departure is cleared
	// directly rather than parked in line-up-and-wait.
	if !alreadyLUAW && nearest < Infinity && a.board.canPromoteToLUAW(nearest, a.th) {
		a.board.promoteToLUAW(head, nearest, a.th)
		traffic := composeAdvisories(head, a.board, a.end)
		head.notify(Event{Type: AuthorizedLineUpAndWait, Traffic: traffic})
		return
	}

	if a.board.promoteToTakeoff(head, nearest, a.th) {
		immediate := nearest <= a.th.ClearToLandMax+5 || len(a.board.CrossingsLine) > 0
		traffic := composeAdvisories(head, a.board, a.end)
		head.notify(Event{Type: ClearedForTakeoff, Immediate: immediate, Traffic: traffic})
		return
	}

	// Nobody promoted: hold every departure that has not yet been told
	// to hold, or whose reason has changed.
	reason := a.holdReasonForDeparture(nearest)
	for _, s := range a.board.DeparturesLine {
		s.notify(Event{Type: HoldShort, Reason: reason})
	}
}

// holdReasonForDeparture picks the highest-priority applicable reason
// a departure at the head of the line should be held for.
func (a *Arbiter) holdReasonForDeparture(nearestArrivalSeconds float32) DeclineReason {
	if a.board.ClearedToLand != nil {
		return ReasonTrafficLanding
	}
	if nearestArrivalSeconds <= a.th.TakeoffBeforeLandingMin {
		return ReasonTrafficLanding
	}
	if a.board.ClearedToTakeoff != nil {
		return ReasonTrafficDeparting
	}
	if len(a.board.Crossing) > 0 {
		return ReasonTrafficCrossing
	}
	return ReasonWaitInLine
}

// holdReasonForCrossing picks the highest-priority applicable reason a
// crossing at the head of the line should be held for: an imminent or
// already-cleared arrival takes precedence over departing traffic.
func (a *Arbiter) holdReasonForCrossing(nearestArrivalSeconds float32) DeclineReason {
	if a.board.ClearedToLand != nil {
		return ReasonTrafficLanding
	}
	if nearestArrivalSeconds <= a.th.CrossBeforeLandingMin {
		return ReasonTrafficLanding
	}
	return ReasonTrafficDeparting
}

// phase 4: crossing advancement
func (a *Arbiter) advanceCrossings() {
	nearest := a.nearestArrivalSeconds()
	for _, s := range append([]*FlightStrip{}, a.board.CrossingsLine...) {
		if a.board.promoteToCross(s, nearest, a.th) {
			traffic := composeAdvisories(s, a.board, a.end)
			if a.justVacatedDeparture != "" && len(traffic) < maxAdvisories {
				traffic = append(traffic, Advisory{Kind: AdvisoryDepartingAhead, AircraftType: a.justVacatedDeparture})
			}
			immediate := len(traffic) > 0
			s.notify(Event{Type: ClearedToCross, Immediate: immediate, Traffic: traffic})
			continue
		}
		s.notify(Event{Type: HoldShort, Reason: a.holdReasonForCrossing(nearest)})
	}

	for _, s := range a.board.ClearedToCross {
		if !s.Flight.OnGround() {
			continue
		}
		if a.end.Contains(s.Flight.Position()) {
			a.board.enterRunway(s)
		}
	}
}

// phase 5: continue messages
func (a *Arbiter) sendContinues() {
	for i, s := range a.board.ArrivalsLine {
		numberInLine := i + 1
		if s.LastEvent != nil && s.LastEvent.Type == ClearedToLand {
			continue
		}
		if s.LastEvent != nil && s.LastEvent.Type == Continue && s.LastEvent.NumberInLine == numberInLine {
			continue
		}
		traffic := composeAdvisories(s, a.board, a.end)
		s.notify(Event{Type: Continue, NumberInLine: numberInLine, Traffic: traffic})
	}
}
