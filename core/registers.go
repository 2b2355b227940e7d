package core

// Registers is an in-memory pair of clock registers implementing Ports.
// Timer code writes the time-of-day side, refresh code reads the display
// side. Word access goes through the build-specific load/store helpers.
type Registers struct {
	timeOfDay uint32 // int32 bits
	display   uint32
}

// NewRegisters returns registers holding the given time of day and a blank display
func NewRegisters(ticks int32) *Registers {
	r := &Registers{}
	r.SetTimeOfDay(ticks)
	return r
}

// ReadTimeOfDay implements Ports
func (r *Registers) ReadTimeOfDay() int32 {
	return int32(loadRegister(&r.timeOfDay))
}

// WriteDisplay implements Ports
func (r *Registers) WriteDisplay(pattern DisplayPattern) {
	storeRegister(&r.display, uint32(pattern))
}

// SetTimeOfDay is the timer side of the input register
func (r *Registers) SetTimeOfDay(ticks int32) {
	storeRegister(&r.timeOfDay, uint32(ticks))
}

// Display is the refresh side of the output register
func (r *Registers) Display() DisplayPattern {
	return DisplayPattern(loadRegister(&r.display))
}
