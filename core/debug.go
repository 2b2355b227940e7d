package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// UpdateEvent captures one clock update cycle for post-mortem analysis
type UpdateEvent struct {
	Seq     uint32         // Cycle counter, 0 marks an empty slot
	Ticks   int32          // Input register at the start of the cycle
	Pattern DisplayPattern // Display register after the cycle
	Status  uint8          // 0 success, 1 failure
}

const (
	UpdateRingSize = 32 // Keep last 32 cycles for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Update ring buffer (non-blocking, for post-mortem)
	updateRing     [UpdateRingSize]UpdateEvent
	updateRingHead uint8  // Next write position
	updateSeq      uint32 // Cycles recorded so far
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordUpdate captures an update cycle in the ring buffer
func RecordUpdate(ticks int32, pattern DisplayPattern, status uint8) {
	updateSeq++
	idx := updateRingHead
	updateRing[idx] = UpdateEvent{
		Seq:     updateSeq,
		Ticks:   ticks,
		Pattern: pattern,
		Status:  status,
	}
	updateRingHead = (idx + 1) % UpdateRingSize
}

// UpdateCount returns the number of cycles recorded since the last clear
func UpdateCount() uint32 {
	return updateSeq
}

// LastUpdate returns the most recent cycle, if any
func LastUpdate() (UpdateEvent, bool) {
	idx := (updateRingHead + UpdateRingSize - 1) % UpdateRingSize
	evt := updateRing[idx]
	return evt, evt.Seq != 0
}

// DumpUpdateRing outputs the update ring, oldest first (call on error or on request)
func DumpUpdateRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[CLOCK] === Update Ring Dump ===")
	debugPrintln("[CLOCK] Total updates: " + utoa(updateSeq))

	start := updateRingHead
	for i := uint8(0); i < UpdateRingSize; i++ {
		evt := &updateRing[(start+i)%UpdateRingSize]
		if evt.Seq == 0 {
			continue // Empty slot
		}

		result := "OK"
		if evt.Status != 0 {
			result = "ERR"
		}

		debugPrintln("[CLOCK] #" + utoa(evt.Seq) +
			" ticks=" + itoa(int(evt.Ticks)) +
			" pattern=" + hex32(uint32(evt.Pattern)) +
			" " + result)
	}
	debugPrintln("[CLOCK] === End Dump ===")
}

// ClearUpdateRing clears the update buffer
func ClearUpdateRing() {
	for i := range updateRing {
		updateRing[i] = UpdateEvent{}
	}
	updateRingHead = 0
	updateSeq = 0
}
