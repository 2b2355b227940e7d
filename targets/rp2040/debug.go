//go:build rp2040 || rp2350

package main

import (
	"machine"

	"segclock/core"
)

// Set to true to get update failures and the update ring on UART0
const debugOutput = false

var debugUART *machine.UART

// InitDebugUART routes core debug output to UART0 (GPIO0 TX, GPIO1 RX).
// USB carries framed reports only, so debug text never goes there.
func InitDebugUART() {
	if !debugOutput {
		return
	}

	debugUART = machine.UART0
	err := debugUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
	if err != nil {
		return
	}

	core.SetDebugWriter(func(s string) {
		debugUART.Write([]byte(s))
		debugUART.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)
	core.DebugPrintln("=== segclock debug UART ===")
}
