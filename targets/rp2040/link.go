//go:build rp2040 || rp2350

package main

import (
	"machine"

	"segclock/core"
	"segclock/protocol"
)

// Link is the firmware end of the framed USB connection
type Link struct {
	input   *protocol.FifoBuffer
	output  *protocol.ScratchOutput
	decoder *protocol.FrameDecoder
	seq     uint8

	onSetTime func(ticks int32)

	errors                   uint32
	consecutiveWriteFailures uint32
}

// InitUSB configures machine.Serial, which is USB CDC-ACM on the RP2040
func InitUSB() {
	_ = machine.Serial.Configure(machine.UARTConfig{})
}

// NewLink creates a link calling onSetTime for each valid set_time command
func NewLink(onSetTime func(ticks int32)) *Link {
	return &Link{
		input:     protocol.NewFifoBuffer(256),
		output:    protocol.NewScratchOutput(),
		decoder:   protocol.NewFrameDecoder(),
		onSetTime: onSetTime,
	}
}

// Poll drains USB into the input FIFO and handles complete frames
func (l *Link) Poll() {
	for machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			l.errors++
			break
		}
		if l.input.Write([]byte{b}) == 0 {
			// Full without a frame boundary; start over
			l.errors++
			l.input.Reset()
			l.decoder.Reset()
		}
	}

	if l.input.Available() > 0 {
		l.decoder.Feed(l.input, l.handle)
	}
}

func (l *Link) handle(seq uint8, payload []byte) {
	id, err := protocol.MessageID(payload)
	if err != nil || id != protocol.MsgSetTime {
		l.errors++
		return
	}

	msg, err := protocol.DecodeSetTime(payload)
	if err != nil || msg.Ticks < 0 || msg.Ticks > core.MaxTimeOfDayTicks {
		l.errors++
		if core.IsDebugEnabled() {
			core.DebugPrintln("[LINK] rejected set_time seq=" + itoaU8(seq))
		}
		return
	}
	l.onSetTime(msg.Ticks)
}

// Report sends a clock_state frame
func (l *Link) Report(ticks int32, pattern core.DisplayPattern, status uint8) {
	l.output.Reset()
	err := protocol.EncodeFrame(l.output, l.seq, func(out protocol.OutputBuffer) {
		protocol.EncodeClockState(out, protocol.ClockState{
			Ticks:   ticks,
			Pattern: uint32(pattern),
			Status:  status,
		})
	})
	if err != nil {
		l.errors++
		return
	}
	l.seq = protocol.NextSeq(l.seq)
	l.write(l.output.Result())
}

// write sends data, dropping it when the host is not reading
func (l *Link) write(data []byte) {
	written := 0
	for written < len(data) {
		n, err := machine.Serial.Write(data[written:])
		if err != nil || n == 0 {
			l.consecutiveWriteFailures++
			if l.consecutiveWriteFailures > 10 {
				// Host went away; forget any half-received command
				l.consecutiveWriteFailures = 0
				l.input.Reset()
				l.decoder.Reset()
			}
			return
		}
		written += n
	}
	l.consecutiveWriteFailures = 0
}

func itoaU8(v uint8) string {
	var buf [3]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return string(buf[pos:])
}
