package core

// DisplayPattern is the bit field written to the clock display port.
//
//	bits  0-6   minutes ones glyph
//	bits  7-13  minutes tens glyph
//	bits 14-20  hours ones glyph
//	bits 21-27  hours tens glyph (zero when the tens digit is 0)
//	bit  28     AM
//	bit  29     PM
//	bits 30-31  reserved, always 0
type DisplayPattern uint32

// Display layout
const (
	GlyphBits  = 7
	GlyphMask  = 1<<GlyphBits - 1
	GroupCount = 4

	MinOnesShift  = 0
	MinTensShift  = 7
	HourOnesShift = 14
	HourTensShift = 21
	AMBit         = 28
	PMBit         = 29
)

// Segment bits within a glyph
const (
	SegTop        = 1 << 0
	SegUpperLeft  = 1 << 1
	SegUpperRight = 1 << 2
	SegMiddle     = 1 << 3
	SegLowerLeft  = 1 << 4
	SegLowerRight = 1 << 5
	SegBottom     = 1 << 6
)

// digitGlyphs maps decimal digits to segment patterns. Never written.
var digitGlyphs = [10]uint8{
	0b1110111, // 0
	0b0100100, // 1
	0b1011101, // 2
	0b1101101, // 3
	0b0101110, // 4
	0b1101011, // 5
	0b1111011, // 6
	0b0100101, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// Glyph returns the segment pattern for digit d (0-9).
// Digits outside that range have no glyph and return 0.
func Glyph(d int) uint8 {
	if d < 0 || d >= len(digitGlyphs) {
		return 0
	}
	return digitGlyphs[d]
}

// GlyphDigit is the reverse lookup of Glyph
func GlyphDigit(g uint8) (int, bool) {
	for d, pattern := range digitGlyphs {
		if pattern == g {
			return d, true
		}
	}
	return 0, false
}

// Group returns the 7-bit glyph group i (0 = minutes ones ... 3 = hours tens)
func (p DisplayPattern) Group(i int) uint8 {
	if i < 0 || i >= GroupCount {
		return 0
	}
	return uint8(p>>(uint(i)*GlyphBits)) & GlyphMask
}

// AM reports whether the AM indicator is lit
func (p DisplayPattern) AM() bool {
	return p&(1<<AMBit) != 0
}

// PM reports whether the PM indicator is lit
func (p DisplayPattern) PM() bool {
	return p&(1<<PMBit) != 0
}

// EncodeDisplay packs tod into the display bit layout and stores it in
// display. If any field is out of bounds, display is not modified and
// ErrInvalidTimeValue is returned. Seconds are checked but not shown.
//
// The meridiem check only rejects values above PM. Zero and negative
// values pass and light the PM indicator; existing callers depend on
// that leniency, so it is kept.
func EncodeDisplay(tod TimeOfDay, display *DisplayPattern) error {
	if tod.Seconds < 0 || tod.Seconds > 59 ||
		tod.Minutes < 0 || tod.Minutes > 59 ||
		tod.Hours < 0 || tod.Hours > 12 ||
		tod.Meridiem > PM {
		return ErrInvalidTimeValue
	}

	minOnes := tod.Minutes % 10
	minTens := tod.Minutes / 10
	hrsOnes := tod.Hours % 10
	hrsTens := tod.Hours / 10

	pattern := DisplayPattern(digitGlyphs[minOnes])<<MinOnesShift |
		DisplayPattern(digitGlyphs[minTens])<<MinTensShift |
		DisplayPattern(digitGlyphs[hrsOnes])<<HourOnesShift

	// No leading zero on the hour
	if hrsTens != 0 {
		pattern |= DisplayPattern(digitGlyphs[hrsTens]) << HourTensShift
	}

	if tod.Meridiem == AM {
		pattern |= 1 << AMBit
	} else {
		pattern |= 1 << PMBit
	}

	*display = pattern
	return nil
}
