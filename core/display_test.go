package core

import "testing"

func TestEncodeKnownPatterns(t *testing.T) {
	testCases := []struct {
		name     string
		tod      TimeOfDay
		expected DisplayPattern
	}{
		{"midnight", TimeOfDay{Hours: 12, Minutes: 0, Meridiem: AM}, 0x14977bf7},
		{"nine oh five", TimeOfDay{Hours: 9, Minutes: 5, Seconds: 30, Meridiem: AM}, 0x101bfbeb},
		{"quarter to two", TimeOfDay{Hours: 1, Minutes: 45, Meridiem: PM}, 0x2009176b},
		{"eleven fifty nine", TimeOfDay{Hours: 11, Minutes: 59, Seconds: 59, Meridiem: AM}, 0x148935ef},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var display DisplayPattern
			if err := EncodeDisplay(tc.tod, &display); err != nil {
				t.Fatalf("EncodeDisplay failed: %v", err)
			}
			if display != tc.expected {
				t.Errorf("Expected 0x%08x, got 0x%08x", uint32(tc.expected), uint32(display))
			}
		})
	}
}

func TestEncodeDigitGroups(t *testing.T) {
	var display DisplayPattern
	tod := TimeOfDay{Hours: 10, Minutes: 37, Meridiem: PM}
	if err := EncodeDisplay(tod, &display); err != nil {
		t.Fatalf("EncodeDisplay failed: %v", err)
	}

	expected := [GroupCount]uint8{Glyph(7), Glyph(3), Glyph(0), Glyph(1)}
	for i, g := range expected {
		if display.Group(i) != g {
			t.Errorf("Group %d: expected %07b, got %07b", i, g, display.Group(i))
		}
	}
	if display.AM() || !display.PM() {
		t.Errorf("Expected PM only, got AM=%v PM=%v", display.AM(), display.PM())
	}
}

func TestEncodeLeadingZeroSuppressed(t *testing.T) {
	var display DisplayPattern

	if err := EncodeDisplay(TimeOfDay{Hours: 9, Minutes: 0, Meridiem: AM}, &display); err != nil {
		t.Fatalf("EncodeDisplay failed: %v", err)
	}
	if display.Group(3) != 0 {
		t.Errorf("hours=9: expected bits 21-27 clear, got %07b", display.Group(3))
	}

	if err := EncodeDisplay(TimeOfDay{Hours: 12, Minutes: 0, Meridiem: AM}, &display); err != nil {
		t.Fatalf("EncodeDisplay failed: %v", err)
	}
	if display.Group(3) == 0 {
		t.Error("hours=12: expected bits 21-27 set")
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	valid := TimeOfDay{Hours: 3, Minutes: 30, Seconds: 15, Meridiem: AM}

	testCases := []struct {
		name   string
		mutate func(*TimeOfDay)
	}{
		{"minutes 60", func(tod *TimeOfDay) { tod.Minutes = 60 }},
		{"minutes -1", func(tod *TimeOfDay) { tod.Minutes = -1 }},
		{"seconds -1", func(tod *TimeOfDay) { tod.Seconds = -1 }},
		{"seconds 60", func(tod *TimeOfDay) { tod.Seconds = 60 }},
		{"hours 13", func(tod *TimeOfDay) { tod.Hours = 13 }},
		{"hours -1", func(tod *TimeOfDay) { tod.Hours = -1 }},
		{"meridiem 3", func(tod *TimeOfDay) { tod.Meridiem = 3 }},
	}

	const prior = DisplayPattern(0x0badf00d)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tod := valid
			tc.mutate(&tod)

			display := prior
			if err := EncodeDisplay(tod, &display); err != ErrInvalidTimeValue {
				t.Errorf("Expected ErrInvalidTimeValue, got %v", err)
			}
			if display != prior {
				t.Errorf("Display modified on failure: 0x%08x", uint32(display))
			}
		})
	}
}

func TestEncodeAcceptsZeroHours(t *testing.T) {
	// The bound check allows hours=0 even though the decoder never produces it
	var display DisplayPattern
	if err := EncodeDisplay(TimeOfDay{Hours: 0, Minutes: 7, Meridiem: AM}, &display); err != nil {
		t.Fatalf("Expected hours=0 to be accepted, got %v", err)
	}
	if display.Group(2) != Glyph(0) || display.Group(3) != 0 {
		t.Errorf("Unexpected hour groups: ones=%07b tens=%07b", display.Group(2), display.Group(3))
	}
}

func TestEncodeMeridiemLowerBoundGap(t *testing.T) {
	// Known validation gap: only meridiem > PM is rejected. Zero and
	// negative values are accepted and show as PM. This asserts the
	// current behaviour, not the intended one.
	for _, m := range []Meridiem{0, -1} {
		var display DisplayPattern
		if err := EncodeDisplay(TimeOfDay{Hours: 4, Minutes: 20, Meridiem: m}, &display); err != nil {
			t.Errorf("meridiem=%d: expected acceptance, got %v", m, err)
			continue
		}
		if display.AM() || !display.PM() {
			t.Errorf("meridiem=%d: expected PM bit only, got 0x%08x", m, uint32(display))
		}
		t.Logf("meridiem=%d accepted as PM (validation gap)", m)
	}
}

func TestEncodeReservedBitsClear(t *testing.T) {
	var display DisplayPattern
	for h := int32(1); h <= 12; h++ {
		for m := int32(0); m < 60; m++ {
			for _, ap := range []Meridiem{AM, PM} {
				if err := EncodeDisplay(TimeOfDay{Hours: h, Minutes: m, Meridiem: ap}, &display); err != nil {
					t.Fatalf("%d:%02d %s: %v", h, m, ap, err)
				}
				if display>>30 != 0 {
					t.Fatalf("%d:%02d %s: reserved bits set in 0x%08x", h, m, ap, uint32(display))
				}
				if display.AM() == display.PM() {
					t.Fatalf("%d:%02d %s: expected exactly one meridiem bit", h, m, ap)
				}
			}
		}
	}
}

func TestGlyphLookup(t *testing.T) {
	for d := 0; d <= 9; d++ {
		g := Glyph(d)
		if g == 0 || g > GlyphMask {
			t.Errorf("Glyph(%d) = %07b out of range", d, g)
		}
		back, ok := GlyphDigit(g)
		if !ok || back != d {
			t.Errorf("GlyphDigit(Glyph(%d)) = %d, %v", d, back, ok)
		}
	}

	if Glyph(-1) != 0 || Glyph(10) != 0 {
		t.Error("Expected no glyph outside 0-9")
	}
	if _, ok := GlyphDigit(0); ok {
		t.Error("Blank glyph should not map to a digit")
	}
	if Glyph(8) != SegTop|SegUpperLeft|SegUpperRight|SegMiddle|SegLowerLeft|SegLowerRight|SegBottom {
		t.Errorf("Glyph(8) should light every segment, got %07b", Glyph(8))
	}
	if Glyph(1) != SegUpperRight|SegLowerRight {
		t.Errorf("Glyph(1) should light the right segments, got %07b", Glyph(1))
	}
}
