package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"segclock/core"
)

// parseClock parses a 24-hour "HH:MM[:SS]" wall time into register ticks
func parseClock(value string) (int32, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM or HH:MM:SS", value)
	}

	limits := []int{23, 59, 59}
	fields := []int{0, 0, 0}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: %w", value, err)
		}
		if n < 0 || n > limits[i] {
			return 0, fmt.Errorf("invalid time %q: field %d out of range", value, i+1)
		}
		fields[i] = n
	}
	return core.TicksFromClock(fields[0], fields[1], fields[2]), nil
}

// clockTicks converts a wall-clock instant to register ticks, keeping the
// sub-second part at 1/16 s resolution
func clockTicks(t time.Time) int32 {
	ticks := core.TicksFromClock(t.Hour(), t.Minute(), t.Second())
	return ticks + int32(t.Nanosecond()/(int(time.Second)/core.TicksPerSecond))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatPattern(p core.DisplayPattern) string {
	return fmt.Sprintf("0x%08x", uint32(p))
}
