package core

// TimeOfDaySetter is the timer side of the input register
type TimeOfDaySetter interface {
	SetTimeOfDay(ticks int32)
}

// TickSource advances the time-of-day register from a free-running
// microsecond counter. It is anchored to a wall-clock reading with Sync
// and recomputes the register from the anchor on every Advance, so
// rounding never accumulates.
type TickSource struct {
	reg       TimeOfDaySetter
	baseTicks uint32 // Register value at the anchor
	baseUS    uint64 // Counter value at the anchor
	synced    bool
}

// NewTickSource creates a tick source writing into reg
func NewTickSource(reg TimeOfDaySetter) *TickSource {
	return &TickSource{reg: reg}
}

// TicksFromUS converts elapsed microseconds to register ticks (truncating)
func TicksFromUS(us uint64) uint64 {
	return (us * TicksPerSecond) / 1000000
}

// Sync anchors the register to ticks at counter value nowUS and writes it.
// Values outside the day are folded back into it.
func (s *TickSource) Sync(ticks int32, nowUS uint64) {
	t := foldTicks(ticks)

	state := disableInterrupts()
	s.baseTicks = uint32(t)
	s.baseUS = nowUS
	s.synced = true
	restoreInterrupts(state)

	s.reg.SetTimeOfDay(t)
}

// SyncSeconds re-anchors to a whole-second reference such as an RTC, which
// only says the time lies in [ticks, ticks+TicksPerSecond). When the
// register is already inside that window the anchor and its sub-second
// phase are kept, so the display never steps back within a second.
// Reports whether the source was re-anchored.
func (s *TickSource) SyncSeconds(ticks int32, nowUS uint64) bool {
	if s.synced {
		drift := foldTicks(s.at(nowUS) - foldTicks(ticks))
		if drift < TicksPerSecond {
			return false
		}
	}
	s.Sync(ticks, nowUS)
	return true
}

// Synced reports whether Sync has been called
func (s *TickSource) Synced() bool {
	return s.synced
}

// Advance recomputes the register for counter value nowUS, writes it and
// returns it. The result wraps at midnight and stays below MaxTimeOfDayTicks.
// Before the first Sync the register counts up from midnight at boot.
func (s *TickSource) Advance(nowUS uint64) int32 {
	t := s.at(nowUS)
	s.reg.SetTimeOfDay(t)
	return t
}

// at computes the register value for counter value nowUS
func (s *TickSource) at(nowUS uint64) int32 {
	state := disableInterrupts()
	base := uint64(s.baseTicks)
	elapsed := nowUS - s.baseUS
	if nowUS < s.baseUS {
		// Counter went backwards (reset); treat as no time elapsed
		elapsed = 0
	}
	restoreInterrupts(state)

	return int32((base + TicksFromUS(elapsed)) % MaxTimeOfDayTicks)
}

// foldTicks maps any tick count into [0, MaxTimeOfDayTicks)
func foldTicks(ticks int32) int32 {
	t := ticks % MaxTimeOfDayTicks
	if t < 0 {
		t += MaxTimeOfDayTicks
	}
	return t
}
