// runway/event.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import (
	"fmt"
	"log/slog"
)

// EventType discriminates the cases of Event.
type EventType int

const (
	Continue EventType = iota
	ClearedToLand
	ClearedForTakeoff
	AuthorizedLineUpAndWait
	ClearedToCross
	HoldShort
	GoAround
)

func (t EventType) String() string {
	switch t {
	case Continue:
		return "Continue"
	case ClearedToLand:
		return "ClearedToLand"
	case ClearedForTakeoff:
		return "ClearedForTakeoff"
	case AuthorizedLineUpAndWait:
		return "AuthorizedLineUpAndWait"
	case ClearedToCross:
		return "ClearedToCross"
	case HoldShort:
		return "HoldShort"
	case GoAround:
		return "GoAround"
	default:
		return "Unknown"
	}
}

// DeclineReason qualifies HoldShort and GoAround events.
type DeclineReason int

const (
	ReasonNone DeclineReason = iota
	ReasonTrafficLanding
	ReasonTrafficDeparting
	ReasonTrafficCrossing
	ReasonWaitInLine
	ReasonRunwayNotVacated
)

func (r DeclineReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonTrafficLanding:
		return "TrafficLanding"
	case ReasonTrafficDeparting:
		return "TrafficDeparting"
	case ReasonTrafficCrossing:
		return "TrafficCrossing"
	case ReasonWaitInLine:
		return "WaitInLine"
	case ReasonRunwayNotVacated:
		return "RunwayNotVacated"
	default:
		return "Unknown"
	}
}

// AdvisoryKind discriminates the kinds of traffic advisory the
// composer may attach to an event.
type AdvisoryKind int

const (
	AdvisoryLandingAhead AdvisoryKind = iota
	AdvisoryCrossingRunway
	AdvisoryDepartingAhead
	AdvisoryTrafficOnFinal
	AdvisoryLandedOnRunway
)

// Advisory is one piece of supplemental traffic information attached
// to a clearance.
type Advisory struct {
	Kind         AdvisoryKind
	AircraftType string
	Miles        int // meaningful for LandingAhead and TrafficOnFinal; 0 otherwise
}

func (a Advisory) String() string {
	switch a.Kind {
	case AdvisoryLandingAhead:
		return fmt.Sprintf("traffic landing ahead, %s, %d mile(s)", a.AircraftType, a.Miles)
	case AdvisoryCrossingRunway:
		return fmt.Sprintf("traffic crossing runway, %s", a.AircraftType)
	case AdvisoryDepartingAhead:
		return fmt.Sprintf("traffic departing ahead, %s", a.AircraftType)
	case AdvisoryTrafficOnFinal:
		return fmt.Sprintf("traffic on final, %s, %d mile(s)", a.AircraftType, a.Miles)
	case AdvisoryLandedOnRunway:
		return fmt.Sprintf("traffic landed on runway, %s", a.AircraftType)
	default:
		return "unknown advisory"
	}
}

// Event is the flat, enum-discriminated variant the arbiter delivers
// to a strip's listener. Only the fields relevant to Type are
// meaningful; the rest carry their zero value.
type Event struct {
	Type         EventType
	Reason       DeclineReason
	NumberInLine int
	Immediate    bool
	Traffic      []Advisory
}

// Equal reports whether two events are semantically identical, the
// basis for the arbiter's duplicate-suppression rule.
func (e Event) Equal(o Event) bool {
	if e.Type != o.Type || e.Reason != o.Reason || e.NumberInLine != o.NumberInLine || e.Immediate != o.Immediate {
		return false
	}
	if len(e.Traffic) != len(o.Traffic) {
		return false
	}
	for i := range e.Traffic {
		if e.Traffic[i] != o.Traffic[i] {
			return false
		}
	}
	return true
}

func (e Event) String() string {
	return fmt.Sprintf("%s(reason=%s, numberInLine=%d, immediate=%v, traffic=%v)",
		e.Type, e.Reason, e.NumberInLine, e.Immediate, e.Traffic)
}

// LogValue implements slog.LogValuer so events are rendered as
// structured groups rather than via their String method.
func (e Event) LogValue() slog.Value {
	traffic := make([]any, len(e.Traffic))
	for i, a := range e.Traffic {
		traffic[i] = a.String()
	}
	return slog.GroupValue(
		slog.String("type", e.Type.String()),
		slog.String("reason", e.Reason.String()),
		slog.Int("numberInLine", e.NumberInLine),
		slog.Bool("immediate", e.Immediate),
		slog.Any("traffic", traffic),
	)
}

// Listener is the single-consumer sink a strip's events are delivered
// to, in order, synchronously.
type Listener interface {
	Notify(Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) Notify(e Event) { f(e) }
