package irdb

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/tuyair/errs"
)

// separatorWidth is the width of the "=" lines framing a written entry.
const separatorWidth = 75

// Separator is the line written before and after each entry.
var Separator = strings.Repeat("=", separatorWidth)

var entryPattern = regexp.MustCompile(`(?s)Function\s*:\s*(.+?)\s+Raw Timing\s*:\s*\[([0-9,\s]+)\]`)

// Entry is a named raw timing signal with optional provenance.
type Entry struct {
	Function string
	Signal   []int

	// Path is the CSV file the entry was generated from.
	Path string
	// Brand is the IRDB brand directory.
	Brand string
	// Protocol is the protocol name the signal was generated with.
	Protocol string
}

// ParseEntries extracts every "Function : ... Raw Timing : [...]" pair from text.
//
// Other lines between entries are ignored. An entry whose timing list does not parse is skipped
// and reported in the returned error (errs.ErrInvalidTiming); the remaining entries are still
// returned.
func ParseEntries(text string) ([]Entry, error) {
	matches := entryPattern.FindAllStringSubmatch(text, -1)
	entries := make([]Entry, 0, len(matches))

	var err error
	for _, m := range matches {
		name := strings.TrimSpace(m[1])

		signal, parseErr := ParseTimings(m[2])
		if parseErr != nil {
			err = multierr.Append(err, fmt.Errorf("function %q: %w", name, parseErr))
			continue
		}

		entries = append(entries, Entry{Function: name, Signal: signal})
	}

	return entries, err
}

// ParseTimings parses a comma-separated timing list, optionally wrapped in brackets:
// "9000, 4500, 560" and "[9000,4500,560]" are equivalent. Signs are allowed; callers that need
// magnitudes use Absolute.
func ParseTimings(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	fields := strings.Split(s, ",")
	signal := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: item %d %q", errs.ErrInvalidTiming, i, strings.TrimSpace(f))
		}
		signal = append(signal, v)
	}

	return signal, nil
}

// FormatTimings formats a signal the way ParseTimings reads it: "[9000, 4500, 560]".
func FormatTimings(signal []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range signal {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(t))
	}
	sb.WriteByte(']')

	return sb.String()
}

// WriteEntry writes e framed by Separator lines. Empty provenance fields are omitted.
//
//	===========================================================================
//	File Path  : codes/Sony/TV/1,-1.csv
//	Function   : POWER
//	Raw Timing : [2400, 600, 1200, 600]
//	===========================================================================
func WriteEntry(w io.Writer, e Entry) error {
	var sb strings.Builder

	sb.WriteString(Separator)
	sb.WriteByte('\n')
	writeField(&sb, "File Path", e.Path)
	writeField(&sb, "Brand", e.Brand)
	writeField(&sb, "Protocol", e.Protocol)
	writeField(&sb, "Function", e.Function)
	writeField(&sb, "Raw Timing", FormatTimings(e.Signal))
	sb.WriteString(Separator)
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%-11s: %s\n", label, value)
}
