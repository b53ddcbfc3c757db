package irdb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/tuyair/errs"
)

// CSV column names.
const (
	ColumnFunctionName = "functionname"
	ColumnProtocol     = "protocol"
	ColumnDevice       = "device"
	ColumnSubDevice    = "subdevice"
	ColumnFunction     = "function"
)

// unnamedFunction names rows whose functionname column is missing.
const unnamedFunction = "Unnamed"

// Row is one IRDB CSV row. Numeric fields are kept as text until Args parses them.
type Row struct {
	FunctionName string
	Protocol     string
	Device       string
	SubDevice    string
	Function     string

	// Path is the CSV file the row came from, when known.
	Path string
	// Line is the 1-based line number in the source, 0 when unknown.
	Line int
}

// Args parses the numeric fields.
//
// Empty device and function fields read as 0. A subdevice of "-1" or "" reads as 0 with
// HasSubDevice false.
func (r Row) Args() (Args, error) {
	var args Args
	var err error

	if args.Device, err = parseField(ColumnDevice, r.Device); err != nil {
		return Args{}, err
	}
	if args.Function, err = parseField(ColumnFunction, r.Function); err != nil {
		return Args{}, err
	}

	sub := strings.TrimSpace(r.SubDevice)
	if sub == "" || sub == "-1" {
		return args, nil
	}
	if args.SubDevice, err = parseField(ColumnSubDevice, sub); err != nil {
		return Args{}, err
	}
	args.HasSubDevice = true

	return args, nil
}

func parseField(column, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", errs.ErrInvalidRow, column, value)
	}

	return v, nil
}

// ReadRows reads an IRDB CSV file. The first record is the header; columns are matched by name
// and may appear in any order. Missing columns read as the defaults Row.Args applies, and a
// missing functionname reads as "Unnamed".
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRow, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, column string, fallback string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return fallback
		}

		return record[i]
	}

	rows := make([]Row, 0, 64)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidRow, err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, Row{
			FunctionName: field(record, ColumnFunctionName, unnamedFunction),
			Protocol:     field(record, ColumnProtocol, ""),
			Device:       field(record, ColumnDevice, "0"),
			SubDevice:    field(record, ColumnSubDevice, "-1"),
			Function:     field(record, ColumnFunction, "0"),
			Line:         line,
		})
	}

	return rows, nil
}

// ParseRowLine parses one line of grep output over IRDB CSV files:
//
//	codes/Sony/TV/1,-1.csv:POWER,Sony12,1,-1,21
//
// The text before the first colon is the path; the rest must have exactly five fields.
func ParseRowLine(line string) (Row, error) {
	line = strings.TrimSpace(line)

	path, command, ok := strings.Cut(line, ":")
	if !ok {
		return Row{}, fmt.Errorf("%w: missing path separator in %q", errs.ErrInvalidRow, line)
	}

	parts := strings.Split(command, ",")
	if len(parts) != 5 {
		return Row{}, fmt.Errorf("%w: want 5 fields, got %d in %q", errs.ErrInvalidRow, len(parts), command)
	}

	return Row{
		FunctionName: parts[0],
		Protocol:     parts[1],
		Device:       parts[2],
		SubDevice:    parts[3],
		Function:     parts[4],
		Path:         path,
	}, nil
}
