// math/heading_test.go
// Copyright(c) 2022-2024 runwaytower contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestHeading2LL(t *testing.T) {
	tests := []struct {
		name           string
		from, to       Point2LL
		nmPerLongitude float32
		magCorrection  float32
		expected       float32
	}{
		{
			name:           "due north",
			from:           Point2LL{-73, 40},
			to:             Point2LL{-73, 41},
			nmPerLongitude: 45,
			expected:       0,
		},
		{
			name:           "due east",
			from:           Point2LL{-73, 40},
			to:             Point2LL{-72, 40},
			nmPerLongitude: 45,
			expected:       90,
		},
		{
			name:           "due south",
			from:           Point2LL{-73, 41},
			to:             Point2LL{-73, 40},
			nmPerLongitude: 45,
			expected:       180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading2LL(tt.from, tt.to, tt.nmPerLongitude, tt.magCorrection)
			if HeadingDifference(got, tt.expected) > 0.5 {
				t.Errorf("Heading2LL() = %f, expected %f", got, tt.expected)
			}
		})
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := map[float32]float32{
		0:    0,
		360:  0,
		-10:  350,
		370:  10,
		-370: 350,
	}
	for in, want := range cases {
		if got := NormalizeHeading(in); HeadingDifference(got, want) > 1e-3 {
			t.Errorf("NormalizeHeading(%f) = %f, expected %f", in, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not alter in-range value")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should floor to low")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should ceiling to high")
	}
}
