// Package irdb converts IRDB-style remote descriptions into raw timings and Tuya codes.
//
// Three inputs are understood:
//
//   - CSV rows with the columns functionname, protocol, device, subdevice, function
//     (ReadRows), or the same fields prefixed by a file path as printed by grep
//     (ParseRowLine)
//   - text entries of the form "Function : <name>" followed by "Raw Timing : [a, b, ...]"
//     (ParseEntries, written back with WriteEntry)
//   - Tuya code strings
//
// IR protocols themselves (NEC, RC5, ...) are not implemented here. A Protocol is supplied by
// the caller and held in a Registry; KnownProtocols lists the names such a collaborator is
// expected to provide.
//
// A Converter processes a batch and never stops at the first failure. Each item yields a
// Result carrying either a value or an error; the Report summarizes them.
package irdb
