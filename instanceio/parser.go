// Package instanceio parses the line-oriented instance text format of
// spec.md §6 into an instance.Instance. Lines may appear in any order:
//
//	BF <id> <time> <sulf_level>
//	C <id> <time> <max_sulf_level>
//	<propertyName>=<integer>
//
// This mirrors original_source/instance_parser.py's split from
// instance.py: parsing is a pure text-to-struct concern, independent of
// the Instance invariants instance.New enforces.
package instanceio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ferrotap/torpedosched/instance"
)

// Parse reads the instance text format from r and constructs a
// validated instance.Instance.
func Parse(r io.Reader) (*instance.Instance, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// ParseLines parses already-split lines. Blank lines are ignored.
func ParseLines(lines []string) (*instance.Instance, error) {
	properties := make(map[string]int)
	var bfSchedules []instance.BFEvent
	var converterSchedules []instance.ConverterEvent

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "BF "):
			id, t, v, err := parseTriple(line)
			if err != nil {
				return nil, err
			}
			bfSchedules = append(bfSchedules, instance.BFEvent{ID: id, Time: t, SulfurLevel: v})
		case strings.HasPrefix(line, "C "):
			id, t, v, err := parseTriple(line)
			if err != nil {
				return nil, err
			}
			converterSchedules = append(converterSchedules, instance.ConverterEvent{ID: id, Time: t, MaxSulfurLevel: v})
		case strings.Contains(line, "="):
			name, value, found := strings.Cut(line, "=")
			if !found {
				return nil, ErrMalformedLine
			}
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, ErrBadInteger
			}
			properties[strings.TrimSpace(name)] = n
		default:
			return nil, ErrMalformedLine
		}
	}

	return instance.New(properties, bfSchedules, converterSchedules)
}

// parseTriple parses "KIND id time value" into its three integer fields.
func parseTriple(line string) (id, t, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, 0, ErrMalformedLine
	}
	ints := make([]int, 3)
	for i, f := range fields[1:] {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, ErrBadInteger
		}
		ints[i] = n
	}
	return ints[0], ints[1], ints[2], nil
}
