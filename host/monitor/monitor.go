// Package monitor reads clock state reports from the firmware and sends it commands.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"segclock/protocol"
)

const readChunk = 64

// StateHandler receives every decoded clock report
type StateHandler func(protocol.ClockState)

// Monitor is the host end of the framed serial link
type Monitor struct {
	port   io.ReadWriter
	logger *zap.Logger

	decoder *protocol.FrameDecoder
	input   *protocol.FifoBuffer

	writeMu sync.Mutex
	seq     uint8 // Next host sequence byte (MessageDest | n)
}

// New creates a monitor over port. A nil logger disables logging.
func New(port io.ReadWriter, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		port:    port,
		logger:  logger,
		decoder: protocol.NewFrameDecoder(),
		input:   protocol.NewFifoBuffer(4 * protocol.MessageMax),
		seq:     protocol.MessageDest,
	}
}

// Dropped returns how many times the link lost frame synchronization
func (m *Monitor) Dropped() uint32 {
	return m.decoder.Dropped()
}

// Run passes each clock report to fn until ctx is done or the port stops.
// EOF ends the run cleanly; ports from serial.Open report a read timeout as
// (0, nil) instead. Cancellation is noticed between reads, so the port
// should have a read timeout.
func (m *Monitor) Run(ctx context.Context, fn StateHandler) error {
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := m.port.Read(buf)
		if n > 0 {
			m.feed(buf[:n], fn)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read clock port: %w", err)
		}
	}
}

// feed buffers received bytes and dispatches any complete frames
func (m *Monitor) feed(data []byte, fn StateHandler) {
	for len(data) > 0 {
		written := m.input.Write(data)
		data = data[written:]

		before := m.input.Available()
		m.decoder.Feed(m.input, func(seq uint8, payload []byte) {
			m.dispatch(seq, payload, fn)
		})
		consumed := before - m.input.Available()

		if written == 0 && consumed == 0 {
			// A full buffer that holds no frame boundary is garbage
			m.logger.Warn("input buffer overflow, discarding", zap.Int("bytes", m.input.Available()))
			m.input.Reset()
			m.decoder.Reset()
		}
	}
}

func (m *Monitor) dispatch(seq uint8, payload []byte, fn StateHandler) {
	id, err := protocol.MessageID(payload)
	if err != nil {
		m.logger.Debug("malformed payload", zap.Uint8("seq", seq), zap.Error(err))
		return
	}

	switch id {
	case protocol.MsgClockState:
		state, err := protocol.DecodeClockState(payload)
		if err != nil {
			m.logger.Warn("bad clock state report", zap.Uint8("seq", seq), zap.Error(err))
			return
		}
		m.logger.Debug("clock state",
			zap.Uint8("seq", seq),
			zap.Int32("ticks", state.Ticks),
			zap.Uint32("pattern", state.Pattern),
			zap.Uint8("status", state.Status))
		if fn != nil {
			fn(state)
		}
	default:
		m.logger.Debug("ignoring message", zap.Uint32("id", id), zap.Uint8("seq", seq))
	}
}

// SetTime asks the firmware to re-anchor its time-of-day register at ticks
func (m *Monitor) SetTime(ticks int32) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	output := protocol.NewScratchOutput()
	err := protocol.EncodeFrame(output, m.seq, func(out protocol.OutputBuffer) {
		protocol.EncodeSetTime(out, protocol.SetTime{Ticks: ticks})
	})
	if err != nil {
		return fmt.Errorf("encode set_time: %w", err)
	}

	frame := output.Result()
	n, err := m.port.Write(frame)
	if err != nil {
		return fmt.Errorf("write set_time: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("incomplete write: %d/%d bytes", n, len(frame))
	}

	m.logger.Debug("sent set_time", zap.Uint8("seq", m.seq), zap.Int32("ticks", ticks))
	m.seq = protocol.NextSeq(m.seq)
	return nil
}
