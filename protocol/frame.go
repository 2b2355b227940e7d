package protocol

import "errors"

// ErrFrameTooLong is returned when a payload does not fit in MessageLengthMax
var ErrFrameTooLong = errors.New("frame payload too long")

// FrameHandler receives the sequence byte and payload of each valid frame.
// The payload aliases the input buffer and is only valid during the call.
type FrameHandler func(seq uint8, payload []byte)

// EncodeFrame writes one complete frame to output. body writes the payload.
// If the payload does not fit in a frame, output is rewound and
// ErrFrameTooLong is returned.
func EncodeFrame(output OutputBuffer, seq uint8, body func(output OutputBuffer)) error {
	cursor := output.CurPosition()

	// Length placeholder, patched below
	output.Output([]byte{0, seq})
	body(output)

	frameLen := len(output.DataSince(cursor)) + MessageTrailerSize
	if frameLen > MessageLengthMax {
		rewind(output, cursor)
		return ErrFrameTooLong
	}
	output.Update(cursor+MessagePositionLen, uint8(frameLen))

	crc := CRC16(output.DataSince(cursor))
	output.Output([]byte{
		uint8(crc >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})
	return nil
}

// rewind drops everything written after pos when the buffer supports it
func rewind(output OutputBuffer, pos int) {
	if s, ok := output.(*ScratchOutput); ok && pos <= s.pos {
		s.pos = pos
	}
}

// FrameDecoder finds frames in a byte stream. After a bad length, sequence
// marker, CRC or trailing sync byte it drops input up to the next sync byte.
type FrameDecoder struct {
	desynced bool
	dropped  uint32
}

// NewFrameDecoder creates a decoder in the synchronized state
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{}
}

// Dropped returns how many times the decoder lost synchronization
func (d *FrameDecoder) Dropped() uint32 {
	return d.dropped
}

// Reset puts the decoder back in the synchronized state
func (d *FrameDecoder) Reset() {
	d.desynced = false
}

// Feed decodes every complete frame in input and pops consumed bytes.
// A trailing partial frame stays in input for the next call.
func (d *FrameDecoder) Feed(input InputBuffer, handler FrameHandler) {
	data := input.Data()
	original := len(data)

	for len(data) > 0 {
		if d.desynced {
			syncPos := -1
			for i, b := range data {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				data = data[len(data):]
				break
			}
			data = data[syncPos+1:]
			d.desynced = false
			continue
		}

		// Skip idle sync bytes between frames
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.lose()
			continue
		}
		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != 0 && seq&^MessageSeqMask != MessageDest {
			d.lose()
			continue
		}

		if len(data) < msgLen {
			break
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			d.lose()
			continue
		}
		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
			d.lose()
			continue
		}

		payload := data[MessageHeaderSize : msgLen-MessageTrailerSize]
		data = data[msgLen:]
		if handler != nil {
			handler(seq, payload)
		}
	}

	if consumed := original - len(data); consumed > 0 {
		input.Pop(consumed)
	}
}

func (d *FrameDecoder) lose() {
	d.desynced = true
	d.dropped++
}

// NextSeq advances a sequence byte within its direction
func NextSeq(seq uint8) uint8 {
	return (seq+1)&MessageSeqMask | seq&^MessageSeqMask
}
