package serial

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 100*time.Millisecond, cfg.ReadTimeout)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(nil)
	require.ErrorIs(t, err, ErrNilConfig)

	_, err = Open(&Config{})
	require.ErrorIs(t, err, ErrNoDevice)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(DefaultConfig("/dev/segclock-does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/segclock-does-not-exist")
}

// scriptedPort replays a fixed sequence of Read results
type scriptedPort struct {
	reads []scriptedRead
}

type scriptedRead struct {
	data []byte
	err  error
}

func (p *scriptedPort) Read(b []byte) (int, error) {
	if len(p.reads) == 0 {
		return 0, errors.New("script exhausted")
	}
	r := p.reads[0]
	p.reads = p.reads[1:]
	return copy(b, r.data), r.err
}

func (p *scriptedPort) Write(b []byte) (int, error) { return len(b), nil }
func (p *scriptedPort) Close() error                { return nil }
func (p *scriptedPort) Flush() error                { return nil }

func TestTTYReadTimeoutIsQuietLine(t *testing.T) {
	unplugged := errors.New("input/output error")
	port := WrapTTY(&scriptedPort{reads: []scriptedRead{
		{err: io.EOF},
		{data: []byte{0x7e}},
		{data: []byte{0x01}, err: io.EOF},
		{err: unplugged},
	}})

	buf := make([]byte, 8)

	n, err := port.Read(buf)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = port.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = port.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = port.Read(buf)
	require.ErrorIs(t, err, unplugged)
}
