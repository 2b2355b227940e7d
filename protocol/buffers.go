package protocol

// InputBuffer is a window over received bytes that the frame decoder consumes from
type InputBuffer interface {
	// Data returns the unread bytes
	Data() []byte

	// Available returns len(Data())
	Available() int

	// Pop discards n bytes from the front
	Pop(n int)
}

// OutputBuffer collects outgoing frame bytes
type OutputBuffer interface {
	// Output appends data
	Output(data []byte)

	// CurPosition returns the current write offset
	CurPosition() int

	// Update overwrites the byte at pos (used to patch the length header)
	Update(pos int, val byte)

	// DataSince returns everything written from pos to the current offset
	DataSince(pos int) []byte
}

// SliceInputBuffer is an InputBuffer over a received byte slice
type SliceInputBuffer []byte

// NewSliceInputBuffer wraps data without copying it
func NewSliceInputBuffer(data []byte) *SliceInputBuffer {
	s := SliceInputBuffer(data)
	return &s
}

func (s *SliceInputBuffer) Data() []byte   { return *s }
func (s *SliceInputBuffer) Available() int { return len(*s) }

func (s *SliceInputBuffer) Pop(n int) {
	*s = (*s)[min(n, len(*s)):]
}

// ScratchOutput implements OutputBuffer on a fixed array; nothing is
// allocated after construction. Writes past the end are truncated.
type ScratchOutput struct {
	buf [MessageMax]byte
	pos int
}

// NewScratchOutput creates an empty ScratchOutput
func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{}
}

// Output appends data, dropping whatever does not fit
func (s *ScratchOutput) Output(data []byte) {
	n := copy(s.buf[s.pos:], data)
	s.pos += n
}

func (s *ScratchOutput) CurPosition() int {
	return s.pos
}

// Update patches an already written byte; other positions are ignored
func (s *ScratchOutput) Update(pos int, val byte) {
	if pos >= 0 && pos < s.pos {
		s.buf[pos] = val
	}
}

func (s *ScratchOutput) DataSince(pos int) []byte {
	if pos < 0 || pos > s.pos {
		return nil
	}
	return s.buf[pos:s.pos]
}

// Result returns the accumulated output data
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

// Reset clears the buffer
func (s *ScratchOutput) Reset() {
	s.pos = 0
}

// FifoBuffer is a byte ring between the USB reader and the frame decoder.
// One slot is kept free to tell full from empty.
type FifoBuffer struct {
	buf   []byte
	read  int
	write int
}

// NewFifoBuffer creates a FifoBuffer holding up to capacity-1 bytes
func NewFifoBuffer(capacity int) *FifoBuffer {
	return &FifoBuffer{buf: make([]byte, capacity)}
}

// Write appends as much of data as fits and returns the count written
func (f *FifoBuffer) Write(data []byte) int {
	written := 0
	for _, b := range data {
		next := (f.write + 1) % len(f.buf)
		if next == f.read {
			break // full
		}
		f.buf[f.write] = b
		f.write = next
		written++
	}
	return written
}

// Read moves up to len(data) bytes out of the ring
func (f *FifoBuffer) Read(data []byte) int {
	n := 0
	for n < len(data) && f.read != f.write {
		data[n] = f.buf[f.read]
		f.read = (f.read + 1) % len(f.buf)
		n++
	}
	return n
}

// Available returns the number of buffered bytes
func (f *FifoBuffer) Available() int {
	if f.write >= f.read {
		return f.write - f.read
	}
	return len(f.buf) - f.read + f.write
}

// Free returns the number of bytes that can still be written
func (f *FifoBuffer) Free() int {
	return len(f.buf) - f.Available() - 1
}

// Data returns the buffered bytes as one slice. When the ring has wrapped
// the two segments are copied into a new contiguous slice.
func (f *FifoBuffer) Data() []byte {
	if f.read <= f.write {
		return f.buf[f.read:f.write]
	}
	out := make([]byte, 0, f.Available())
	out = append(out, f.buf[f.read:]...)
	return append(out, f.buf[:f.write]...)
}

// Pop discards n bytes from the front
func (f *FifoBuffer) Pop(n int) {
	if avail := f.Available(); n > avail {
		n = avail
	}
	f.read = (f.read + n) % len(f.buf)
}

// IsEmpty reports whether nothing is buffered
func (f *FifoBuffer) IsEmpty() bool {
	return f.read == f.write
}

// Reset clears the buffer
func (f *FifoBuffer) Reset() {
	f.read = 0
	f.write = 0
}
