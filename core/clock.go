package core

// Ports is the two-register boundary the clock update runs against.
// Platform code provides the real memory-mapped version; tests use Registers.
type Ports interface {
	// ReadTimeOfDay returns the input register: 1/16 s since midnight
	ReadTimeOfDay() int32

	// WriteDisplay stores a full pattern into the display output register
	WriteDisplay(pattern DisplayPattern)
}

// UpdateClockDisplay reads the time-of-day register, decodes it, encodes the
// display pattern and writes it to the display register in one store.
// On any error the display register keeps its previous value.
//
// No heap allocation: tod and pattern live on the stack.
func UpdateClockDisplay(ports Ports) error {
	return updateFromTicks(ports.ReadTimeOfDay(), ports)
}

// updateFromTicks runs the update for an already read register value
func updateFromTicks(ticks int32, ports Ports) error {
	var tod TimeOfDay
	if err := DecodeTimeOfDay(ticks, &tod); err != nil {
		return err
	}

	var pattern DisplayPattern
	if err := EncodeDisplay(tod, &pattern); err != nil {
		return err
	}

	ports.WriteDisplay(pattern)
	return nil
}

// StatusCode maps an update result to the register-level status: 0 on success, 1 on failure
func StatusCode(err error) uint8 {
	if err != nil {
		return 1
	}
	return 0
}
