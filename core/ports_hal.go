package core

// DisplayReader is implemented by ports that can read back the display register
type DisplayReader interface {
	Display() DisplayPattern
}

// Global singleton used by the firmware main loop.
var portsDriver Ports

// SetPortsDriver is called by target-specific code to register the clock registers.
func SetPortsDriver(p Ports) {
	portsDriver = p
}

// MustPorts returns the configured registers or panics if missing.
func MustPorts() Ports {
	if portsDriver == nil {
		panic("clock ports not configured")
	}
	return portsDriver
}

// UpdateClock runs one update cycle against the registered ports and
// records it in the update ring. The register is read once, so the recorded
// ticks are the ones the pattern was built from. Returns the register-level status.
func UpdateClock() uint8 {
	ports := MustPorts()
	ticks := ports.ReadTimeOfDay()

	err := updateFromTicks(ticks, ports)
	status := StatusCode(err)
	if err != nil && IsDebugEnabled() {
		DebugPrintln("[CLOCK] update failed: " + err.Error() + " ticks=" + itoa(int(ticks)))
	}

	var shown DisplayPattern
	if r, ok := ports.(DisplayReader); ok {
		shown = r.Display()
	}
	RecordUpdate(ticks, shown, status)
	return status
}
