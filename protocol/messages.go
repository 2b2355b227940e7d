package protocol

import "errors"

// ErrUnexpectedMessage is returned when a payload carries a different message ID
var ErrUnexpectedMessage = errors.New("unexpected message id")

// ClockState is the MCU's report after each clock update
type ClockState struct {
	Ticks   int32  // Time-of-day register that was decoded
	Pattern uint32 // Display register after the update
	Status  uint8  // 0 success, 1 failure
}

// SetTime asks the MCU to re-anchor its time-of-day register
type SetTime struct {
	Ticks int32
}

// EncodeClockState writes a MsgClockState payload
func EncodeClockState(output OutputBuffer, s ClockState) {
	EncodeVLQUint(output, MsgClockState)
	EncodeVLQInt(output, s.Ticks)
	EncodeVLQUint(output, s.Pattern)
	EncodeVLQUint(output, uint32(s.Status))
}

// EncodeSetTime writes a MsgSetTime payload
func EncodeSetTime(output OutputBuffer, s SetTime) {
	EncodeVLQUint(output, MsgSetTime)
	EncodeVLQInt(output, s.Ticks)
}

// MessageID peeks at the message ID of a payload without consuming it
func MessageID(payload []byte) (uint32, error) {
	return DecodeVLQUint(&payload)
}

// DecodeClockState parses a full MsgClockState payload
func DecodeClockState(payload []byte) (ClockState, error) {
	var s ClockState
	if err := expectID(&payload, MsgClockState); err != nil {
		return s, err
	}

	ticks, err := DecodeVLQInt(&payload)
	if err != nil {
		return s, err
	}
	pattern, err := DecodeVLQUint(&payload)
	if err != nil {
		return s, err
	}
	status, err := DecodeVLQUint(&payload)
	if err != nil {
		return s, err
	}

	s.Ticks = ticks
	s.Pattern = pattern
	s.Status = uint8(status)
	return s, nil
}

// DecodeSetTime parses a full MsgSetTime payload
func DecodeSetTime(payload []byte) (SetTime, error) {
	var s SetTime
	if err := expectID(&payload, MsgSetTime); err != nil {
		return s, err
	}
	ticks, err := DecodeVLQInt(&payload)
	if err != nil {
		return s, err
	}
	s.Ticks = ticks
	return s, nil
}

func expectID(payload *[]byte, want uint32) error {
	id, err := DecodeVLQUint(payload)
	if err != nil {
		return err
	}
	if id != want {
		return ErrUnexpectedMessage
	}
	return nil
}
