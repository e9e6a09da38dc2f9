// runway/thresholds.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

// Infinity is the sentinel "no arrival in sight" seconds-to-touchdown
// value (RWY_INFINITY).
const Infinity float32 = 1e9

// TimingThresholds collects the tunable seconds-based decision points
// the arbiter uses when deciding whether to promote a strip. All values
// are seconds unless noted.
type TimingThresholds struct {
	// LUAWAuthBeforeLandingMin is the minimum seconds-to-touchdown of
	// the next arrival before a LUAW authorization is permitted.
	LUAWAuthBeforeLandingMin float32
	// TakeoffBeforeLandingMin is the minimum seconds-to-touchdown
	// required of the next arrival before a departure may launch ahead
	// of it.
	TakeoffBeforeLandingMin float32
	// ClearToLandMax is the seconds-to-touchdown under which an arrival
	// must be cleared to land or sent around.
	ClearToLandMax float32
	// GoAroundMin is the seconds-to-touchdown at or below which an
	// unclear runway forces a go-around.
	GoAroundMin float32
	// CrossBeforeLandingMin is the seconds-to-touchdown above which a
	// crossing may still be cleared.
	CrossBeforeLandingMin float32
}

// DefaultTimingThresholds returns the thresholds named in the arbiter's
// design notes.
func DefaultTimingThresholds() TimingThresholds {
	return TimingThresholds{
		LUAWAuthBeforeLandingMin: 100,
		TakeoffBeforeLandingMin:  90,
		ClearToLandMax:           90,
		GoAroundMin:              15,
		CrossBeforeLandingMin:    90,
	}
}
