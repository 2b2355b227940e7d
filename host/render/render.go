// Package render turns display patterns into text for the host tool.
package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"segclock/core"
)

// glyphRune returns the character a glyph group shows: a digit, blank, or '?'
func glyphRune(g uint8) byte {
	if g == 0 {
		return ' '
	}
	if d, ok := core.GlyphDigit(g); ok {
		return byte('0' + d)
	}
	return '?'
}

// Meridiem returns the indicator text lit in p
func Meridiem(p core.DisplayPattern) string {
	switch {
	case p.AM() && p.PM():
		return "??"
	case p.AM():
		return "AM"
	case p.PM():
		return "PM"
	default:
		return "  "
	}
}

// Digits reads the pattern back as clock text, e.g. " 9:05 AM"
func Digits(p core.DisplayPattern) string {
	var b [8]byte
	b[0] = glyphRune(p.Group(3))
	b[1] = glyphRune(p.Group(2))
	b[2] = ':'
	b[3] = glyphRune(p.Group(1))
	b[4] = glyphRune(p.Group(0))
	b[5] = ' '
	m := Meridiem(p)
	b[6], b[7] = m[0], m[1]
	return string(b[:])
}

// segmentRows draws one glyph three characters wide
func segmentRows(g uint8) [3]string {
	on := func(mask uint8, c byte) byte {
		if g&mask != 0 {
			return c
		}
		return ' '
	}
	return [3]string{
		string([]byte{' ', on(core.SegTop, '_'), ' '}),
		string([]byte{on(core.SegUpperLeft, '|'), on(core.SegMiddle, '_'), on(core.SegUpperRight, '|')}),
		string([]byte{on(core.SegLowerLeft, '|'), on(core.SegBottom, '_'), on(core.SegLowerRight, '|')}),
	}
}

// ASCII draws the pattern as three lines of seven-segment art with the
// lit meridiem indicator on the last line
func ASCII(p core.DisplayPattern) []string {
	colon := [3]string{" ", ".", "."}
	groups := [core.GroupCount][3]string{
		segmentRows(p.Group(3)),
		segmentRows(p.Group(2)),
		segmentRows(p.Group(1)),
		segmentRows(p.Group(0)),
	}

	lines := make([]string, 3)
	for row := 0; row < 3; row++ {
		var sb strings.Builder
		sb.WriteString(groups[0][row])
		sb.WriteString(groups[1][row])
		sb.WriteString(colon[row])
		sb.WriteString(groups[2][row])
		sb.WriteString(groups[3][row])
		lines[row] = sb.String()
	}
	lines[2] += " " + Meridiem(p)
	return lines
}

// SweepRow is one line of a sweep table
type SweepRow struct {
	Ticks   int32
	Time    core.TimeOfDay
	Pattern core.DisplayPattern
	Err     error
}

// Sweep decodes and encodes every step-th register value in [from, to]
func Sweep(from, to, step int32) ([]SweepRow, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if to < from {
		return nil, fmt.Errorf("empty range %d..%d", from, to)
	}

	var rows []SweepRow
	for t := int64(from); t <= int64(to); t += int64(step) {
		row := SweepRow{Ticks: int32(t)}
		if err := core.DecodeTimeOfDay(row.Ticks, &row.Time); err != nil {
			row.Err = err
		} else if err := core.EncodeDisplay(row.Time, &row.Pattern); err != nil {
			row.Err = err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SweepTable renders rows as a table
func SweepTable(rows []SweepRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Ticks", "Day Secs", "Time", "Pattern", "Display"})

	for _, r := range rows {
		if r.Err != nil {
			tw.AppendRow(table.Row{r.Ticks, "", "", "", r.Err.Error()})
			continue
		}
		tw.AppendRow(table.Row{
			r.Ticks,
			r.Time.DaySeconds,
			fmt.Sprintf("%2d:%02d:%02d %s", r.Time.Hours, r.Time.Minutes, r.Time.Seconds, r.Time.Meridiem),
			fmt.Sprintf("0x%08x", uint32(r.Pattern)),
			Digits(r.Pattern),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
