//go:build js && wasm
// +build js,wasm

// Browser preview of the clock display and its serial frames.
package main

import (
	"encoding/hex"
	"syscall/js"

	"segclock/core"
	"segclock/host/render"
	"segclock/protocol"
)

func main() {
	js.Global().Set("segclockWasm", js.ValueOf(map[string]interface{}{
		"updateClock":      js.FuncOf(updateClockWrapper),
		"encodeSetTime":    js.FuncOf(encodeSetTimeWrapper),
		"decodeClockState": js.FuncOf(decodeClockStateWrapper),
		"crc16":            js.FuncOf(crc16Wrapper),
	}))

	// Keep the program running
	select {}
}

// updateClockWrapper runs one clock update for a register value
// Args: ticks (int32)
// Returns: {pattern, digits, lines: [3]string, error}
func updateClockWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeClockResult(0, "missing ticks argument")
	}

	regs := core.NewRegisters(int32(args[0].Int()))
	if err := core.UpdateClockDisplay(regs); err != nil {
		return makeClockResult(0, err.Error())
	}
	return makeClockResult(regs.Display(), "")
}

// encodeSetTimeWrapper frames a set_time command
// Args: ticks (int32), seq (number, optional)
// Returns: hex string of the complete frame
func encodeSetTimeWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: missing ticks argument")
	}
	seq := uint8(protocol.MessageDest)
	if len(args) > 1 {
		seq |= uint8(args[1].Int()) & protocol.MessageSeqMask
	}

	output := protocol.NewScratchOutput()
	err := protocol.EncodeFrame(output, seq, func(out protocol.OutputBuffer) {
		protocol.EncodeSetTime(out, protocol.SetTime{Ticks: int32(args[0].Int())})
	})
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(hex.EncodeToString(output.Result()))
}

// decodeClockStateWrapper decodes every clock_state frame in a captured stream
// Args: hexString (string)
// Returns: {states: [{seq, ticks, pattern, status, digits}], dropped, error}
func decodeClockStateWrapper(this js.Value, args []js.Value) interface{} {
	result := map[string]interface{}{"states": []interface{}{}, "dropped": 0}
	if len(args) < 1 {
		result["error"] = "missing hex string argument"
		return js.ValueOf(result)
	}

	data, err := hex.DecodeString(args[0].String())
	if err != nil {
		result["error"] = "invalid hex string: " + err.Error()
		return js.ValueOf(result)
	}

	var states []interface{}
	decoder := protocol.NewFrameDecoder()
	decoder.Feed(protocol.NewSliceInputBuffer(data), func(seq uint8, payload []byte) {
		state, err := protocol.DecodeClockState(payload)
		if err != nil {
			return
		}
		pattern := core.DisplayPattern(state.Pattern)
		states = append(states, map[string]interface{}{
			"seq":     int(seq),
			"ticks":   int(state.Ticks),
			"pattern": int(state.Pattern),
			"status":  int(state.Status),
			"digits":  render.Digits(pattern),
		})
	})

	if states != nil {
		result["states"] = states
	}
	result["dropped"] = int(decoder.Dropped())
	return js.ValueOf(result)
}

// crc16Wrapper calculates the frame checksum
// Args: hexString (string)
// Returns: number (uint16)
func crc16Wrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(0)
	}

	data, err := hex.DecodeString(args[0].String())
	if err != nil {
		return js.ValueOf(0)
	}
	return js.ValueOf(int(protocol.CRC16(data)))
}

func makeClockResult(pattern core.DisplayPattern, errMsg string) js.Value {
	result := make(map[string]interface{})
	result["pattern"] = int(uint32(pattern))
	result["digits"] = render.Digits(pattern)

	lines := render.ASCII(pattern)
	jsLines := make([]interface{}, len(lines))
	for i, l := range lines {
		jsLines[i] = l
	}
	result["lines"] = jsLines

	if errMsg != "" {
		result["error"] = errMsg
	}
	return js.ValueOf(result)
}
