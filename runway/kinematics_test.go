// runway/kinematics_test.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package runway

import "testing"

func TestSecondsToTouchdown(t *testing.T) {
	_, end := testRunway()

	f := arrivalAtSeconds("F1", 90)
	if got := SecondsToTouchdown(f); got < 89 || got > 91 {
		t.Errorf("SecondsToTouchdown() = %v, want ~90", got)
	}

	climbing := &fakeFlight{verticalFPM: 500, altAGL: 1000}
	if got := SecondsToTouchdown(climbing); got != Infinity {
		t.Errorf("SecondsToTouchdown(climbing) = %v, want Infinity", got)
	}

	onGround := departure("F2")
	if got := SecondsToTouchdown(onGround); got != Infinity {
		t.Errorf("SecondsToTouchdown(on ground) = %v, want Infinity", got)
	}

	_ = end
}

func TestIsOnRollout(t *testing.T) {
	_, end := testRunway()
	f := departure("F1")
	f.groundSpeed = 20
	if !IsOnRollout(f, end) {
		t.Error("expected a slow departure on the strip to be on rollout")
	}
	f.groundSpeed = 140
	if IsOnRollout(f, end) {
		t.Error("expected a fast-rolling departure not yet to read as on rollout")
	}
}

func TestHasVacated(t *testing.T) {
	_, end := testRunway()
	f := departure("F1")
	f.groundSpeed = 0
	if HasVacated(f, end) {
		t.Error("a stationary flight still on the strip has not vacated")
	}
	f.pos = [2]float32{-72, 41}
	if !HasVacated(f, end) {
		t.Error("a stationary flight clear of the strip has vacated")
	}
}

func TestIsIncursion(t *testing.T) {
	_, end := testRunway()
	f := departure("F1")
	if !IsIncursion(f, end, false) {
		t.Error("an unexplained ground flight on the strip is an incursion")
	}
	if IsIncursion(f, end, true) {
		t.Error("a permitted ground flight on the strip is not an incursion")
	}
}
