package pathdata

import (
	"fmt"
	"strconv"
	"strings"
)

// UnparsablePath is the error returned when no command pattern
// matches the head of the remaining input. The parse is all or
// nothing: no command list accompanies it.
type UnparsablePath struct {
	Remainder string // the offending leftover substring
}

func (e UnparsablePath) Error() string {
	return fmt.Sprintf("unparsable path data: %q", e.Remainder)
}

// argument count per (uppercased) command letter
var arities = map[byte]int{
	'M': 2, // x, y
	'L': 2, // x, y
	'H': 1, // x
	'V': 1, // y
	'C': 6, // c1x, c1y, c2x, c2y, x, y
	'A': 7, // rx, ry, rotation, large-arc, sweep, x, y
	'Z': 0,
}

// Parse compiles a path data string into its command sequence.
//
// Parsing is strict and proceeds left to right over the trimmed
// input: one command letter from {M,L,H,V,C,A,Z} (lowercase for
// relative coordinates), followed by the exact argument count for
// that letter, numbers separated by whitespace or commas. Numbers
// are unsigned decimals with an optional fractional part; signs,
// exponents and the shorthand curve commands are not part of the
// grammar. The cursor is threaded through the loop: each command
// records the cursor as its start point and moves it to its end
// point. On the first unmatchable token the whole parse fails with
// UnparsablePath.
func Parse(data string) ([]Command, error) {
	rest := strings.TrimSpace(data)
	var (
		cmds   []Command
		cursor Point
	)
	for len(rest) > 0 {
		cmd, tail, ok := parseCommand(rest, cursor)
		if !ok {
			return nil, UnparsablePath{Remainder: rest}
		}
		cmds = append(cmds, cmd)
		if end := cmd.End(); !end.Undefined() {
			cursor = end
		}
		rest = tail
	}
	return cmds, nil
}

// parseCommand matches one command letter plus its argument list at
// the head of s, building the command from the current cursor.
func parseCommand(s string, cursor Point) (Command, string, bool) {
	letter := s[0]
	upper := letter &^ 0x20 // ASCII upper case
	arity, known := arities[upper]
	if !known {
		return nil, "", false
	}
	rel := letter >= 'a'
	args, rest, ok := scanArgs(s[1:], arity)
	if !ok {
		return nil, "", false
	}

	var cmd Command
	switch upper {
	case 'M':
		cmd = MoveTo{Start: cursor, To: Point{X: args[0], Y: args[1]}, Rel: rel}
	case 'L':
		cmd = LineTo{Start: cursor, To: Point{X: args[0], Y: args[1]}, Rel: rel}
	case 'H':
		cmd = HLineTo{Start: cursor, X: args[0], Rel: rel}
	case 'V':
		cmd = VLineTo{Start: cursor, Y: args[0], Rel: rel}
	case 'C':
		cmd = CubicTo{
			Start: cursor,
			C1:    Point{X: args[0], Y: args[1]},
			C2:    Point{X: args[2], Y: args[3]},
			To:    Point{X: args[4], Y: args[5]},
			Rel:   rel,
		}
	case 'A':
		// args[3] and args[4] are the large-arc and sweep flags,
		// consumed by the grammar but not retained
		cmd = ArcTo{
			Start:     cursor,
			Radius:    Point{X: args[0], Y: args[1]},
			XRotation: args[2],
			To:        Point{X: args[5], Y: args[6]},
			Rel:       rel,
		}
	case 'Z':
		cmd = ClosePath{Start: cursor}
	}
	return cmd, rest, true
}

// scanArgs reads exactly n numbers, requiring at least one
// whitespace or comma between consecutive numbers, and consumes any
// trailing separators.
func scanArgs(s string, n int) ([]float64, string, bool) {
	args := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		trimmed := trimSeparators(s)
		if i > 0 && len(trimmed) == len(s) {
			return nil, "", false
		}
		v, rest, ok := scanNumber(trimmed)
		if !ok {
			return nil, "", false
		}
		args = append(args, v)
		s = rest
	}
	return args, trimSeparators(s), true
}

func trimSeparators(s string) string {
	return strings.TrimLeft(s, " \t\n\r,")
}

// scanNumber reads an unsigned decimal literal with optional
// fractional part, i.e. \d+(\.\d+)? .
func scanNumber(s string) (float64, string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
		// a bare trailing dot is left unconsumed, and will fail the
		// next match
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", false
	}
	return v, s[i:], true
}
