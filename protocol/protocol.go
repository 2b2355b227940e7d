// Package protocol implements the framed serial protocol between the clock
// firmware and the host tool
package protocol

// Version represents the segclock protocol version
const Version = "0.1.0"

// Frame layout: [len][seq][payload...][crc hi][crc lo][sync]
const (
	MessageMax         = 512 // Scratch output buffer size (several frames per flush)
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePayloadMax  = MessageLengthMax - MessageLengthMin
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E

	// Sequence byte: low nibble counts, 0x10 marks host-to-MCU frames
	MessageSeqMask = 0x0F
	MessageDest    = 0x10
)

// Message IDs (first VLQ of every payload)
const (
	MsgClockState = 1 // MCU -> host: ticks, pattern, status
	MsgSetTime    = 2 // host -> MCU: ticks
)
