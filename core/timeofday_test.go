package core

import "testing"

func TestDecodeMidnight(t *testing.T) {
	var tod TimeOfDay
	if err := DecodeTimeOfDay(0, &tod); err != nil {
		t.Fatalf("DecodeTimeOfDay(0) failed: %v", err)
	}

	want := TimeOfDay{DaySeconds: 0, Hours: 12, Minutes: 0, Seconds: 0, Meridiem: AM}
	if tod != want {
		t.Errorf("Expected %+v, got %+v", want, tod)
	}
}

func TestDecodeRounding(t *testing.T) {
	testCases := []struct {
		name    string
		ticks   int32
		daySecs int32
	}{
		{"zero", 0, 0},
		{"just under half", 7, 0},
		{"exact half rounds up", 8, 1},
		{"just over half", 9, 1},
		{"one second", 16, 1},
		{"one and a half", 24, 2},
		{"S ticks", 16 * 3723, 3723},
		{"S ticks plus 7", 16*3723 + 7, 3723},
		{"S ticks plus 8", 16*3723 + 8, 3724},
		{"S ticks plus 15", 16*3723 + 15, 3724},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tod TimeOfDay
			if err := DecodeTimeOfDay(tc.ticks, &tod); err != nil {
				t.Fatalf("DecodeTimeOfDay(%d) failed: %v", tc.ticks, err)
			}
			if tod.DaySeconds != tc.daySecs {
				t.Errorf("ticks=%d: expected daySeconds %d, got %d", tc.ticks, tc.daySecs, tod.DaySeconds)
			}
		})
	}
}

func TestDecodeNoonBoundary(t *testing.T) {
	var tod TimeOfDay

	if err := DecodeTimeOfDay(16*43199, &tod); err != nil {
		t.Fatalf("DecodeTimeOfDay failed: %v", err)
	}
	if tod.Hours != 11 || tod.Minutes != 59 || tod.Seconds != 59 || tod.Meridiem != AM {
		t.Errorf("Expected 11:59:59 AM, got %d:%02d:%02d %s", tod.Hours, tod.Minutes, tod.Seconds, tod.Meridiem)
	}

	if err := DecodeTimeOfDay(16*43200, &tod); err != nil {
		t.Fatalf("DecodeTimeOfDay failed: %v", err)
	}
	if tod.Hours != 12 || tod.Minutes != 0 || tod.Seconds != 0 || tod.Meridiem != PM {
		t.Errorf("Expected 12:00:00 PM, got %d:%02d:%02d %s", tod.Hours, tod.Minutes, tod.Seconds, tod.Meridiem)
	}
}

func TestDecodeAfternoon(t *testing.T) {
	var tod TimeOfDay
	// 13:45:30
	if err := DecodeTimeOfDay(TicksFromClock(13, 45, 30), &tod); err != nil {
		t.Fatalf("DecodeTimeOfDay failed: %v", err)
	}

	want := TimeOfDay{DaySeconds: 49530, Hours: 1, Minutes: 45, Seconds: 30, Meridiem: PM}
	if tod != want {
		t.Errorf("Expected %+v, got %+v", want, tod)
	}
}

func TestDecodeEndOfDay(t *testing.T) {
	var tod TimeOfDay
	if err := DecodeTimeOfDay(MaxTimeOfDayTicks, &tod); err != nil {
		t.Fatalf("DecodeTimeOfDay(%d) should succeed, got %v", MaxTimeOfDayTicks, err)
	}

	// Rounds to 86400 seconds: hour wraps to 12 but stays on the PM side
	if tod.DaySeconds != SecondsPerDay {
		t.Errorf("Expected daySeconds %d, got %d", SecondsPerDay, tod.DaySeconds)
	}
	if tod.Hours != 12 || tod.Minutes != 0 || tod.Seconds != 0 || tod.Meridiem != PM {
		t.Errorf("Expected 12:00:00 PM, got %d:%02d:%02d %s", tod.Hours, tod.Minutes, tod.Seconds, tod.Meridiem)
	}

	if err := DecodeTimeOfDay(MaxTimeOfDayTicks+1, &tod); err != ErrOutOfRangeInput {
		t.Errorf("DecodeTimeOfDay(%d): expected ErrOutOfRangeInput, got %v", MaxTimeOfDayTicks+1, err)
	}
}

func TestDecodeOutOfRangeLeavesOutputUntouched(t *testing.T) {
	sentinel := TimeOfDay{DaySeconds: -7, Hours: 99, Minutes: 98, Seconds: 97, Meridiem: 42}

	for _, ticks := range []int32{-1, -16, -1 << 31, MaxTimeOfDayTicks + 1, 1<<31 - 1} {
		tod := sentinel
		err := DecodeTimeOfDay(ticks, &tod)
		if err != ErrOutOfRangeInput {
			t.Errorf("ticks=%d: expected ErrOutOfRangeInput, got %v", ticks, err)
		}
		if tod != sentinel {
			t.Errorf("ticks=%d: output modified on failure: %+v", ticks, tod)
		}
	}
}

func TestDecodeAllValidInputs(t *testing.T) {
	var tod TimeOfDay
	for p := int32(0); p <= MaxTimeOfDayTicks; p++ {
		if err := DecodeTimeOfDay(p, &tod); err != nil {
			t.Fatalf("ticks=%d: unexpected error %v", p, err)
		}
		if tod.Hours < 1 || tod.Hours > 12 ||
			tod.Minutes < 0 || tod.Minutes > 59 ||
			tod.Seconds < 0 || tod.Seconds > 59 ||
			(tod.Meridiem != AM && tod.Meridiem != PM) {
			t.Fatalf("ticks=%d: field out of range: %+v", p, tod)
		}
	}
}

func TestDecodeDaySecondsRoundTrip(t *testing.T) {
	var tod TimeOfDay
	for ds := int32(0); ds < SecondsPerDay; ds++ {
		if err := DecodeTimeOfDay(ds*TicksPerSecond, &tod); err != nil {
			t.Fatalf("daySeconds=%d: unexpected error %v", ds, err)
		}
		if tod.DaySeconds != ds {
			t.Fatalf("daySeconds=%d: decoded as %d", ds, tod.DaySeconds)
		}

		// Every field must re-derive from daySeconds
		h24 := ds / SecondsPerHour
		wantHours := h24 % 12
		if wantHours == 0 {
			wantHours = 12
		}
		wantMeridiem := AM
		if h24 >= 12 {
			wantMeridiem = PM
		}
		if tod.Hours != wantHours || tod.Meridiem != wantMeridiem ||
			tod.Minutes != (ds/60)%60 || tod.Seconds != ds%60 {
			t.Fatalf("daySeconds=%d: inconsistent fields %+v", ds, tod)
		}
	}
}

func TestTicksFromClock(t *testing.T) {
	testCases := []struct {
		hour, min, sec int
		expected       int32
	}{
		{0, 0, 0, 0},
		{0, 0, 1, 16},
		{12, 0, 0, 16 * 43200},
		{23, 59, 59, 16 * 86399},
		{24, 0, 0, 0},
		{-1, 0, 0, 16 * 82800},
	}

	for _, tc := range testCases {
		got := TicksFromClock(tc.hour, tc.min, tc.sec)
		if got != tc.expected {
			t.Errorf("TicksFromClock(%d, %d, %d): expected %d, got %d", tc.hour, tc.min, tc.sec, tc.expected, got)
		}
	}
}

func TestMeridiemString(t *testing.T) {
	if AM.String() != "AM" || PM.String() != "PM" || Meridiem(0).String() != "?" {
		t.Errorf("Unexpected meridiem strings: %s %s %s", AM, PM, Meridiem(0))
	}
}
