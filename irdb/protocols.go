package irdb

import (
	"slices"
	"strings"
)

// knownProtocols are the protocol names an IRDB protocol collaborator is expected to provide.
var knownProtocols = [...]string{
	"AdNotham", "Aiwa", "Akai", "Akord", "Amino", "Amino56", "Anthem", "Apple",
	"Archer", "Audiovox", "Barco", "Blaupunkt", "Bose", "Bryston", "CanalSat",
	"CanalSatLD", "Denon2", "Denon", "Denon1", "DenonK", "Dgtec", "Digivision",
	"DirecTV", "DishNetwork", "DishPlayer", "Dyson", "Dyson2", "Elan",
	"Elunevision", "Emerson", "Entone", "F12", "F120", "F121", "F32", "Fujitsu",
	"Fujitsu128", "Fujitsu56", "GICable", "GIRG", "GuangZhou", "GwtS", "GXB",
	"Humax4Phase", "InterVideoRC201", "IODATAn", "Jerrold", "JVC", "JVC48",
	"JVC56", "Kaseikyo", "Kaseikyo56", "Kathrein", "Konka", "Logitech",
	"Lumagen", "Lutron", "Matsui", "MCE", "MCIR2kbd", "MCIR2mouse", "Metz19",
	"Mitsubishi", "MitsubishiK", "Motorola", "NEC", "NEC48", "NECf16", "NECrnc",
	"NECx", "NECxf16", "Nokia", "Nokia12", "Nokia32", "NovaPace", "NRC16",
	"NRC1632", "NRC17", "Ortek", "OrtekMCE", "PaceMSS", "Panasonic", "Panasonic2",
	"PanasonicOld", "PCTV", "PID0001", "PID0003", "PID0004", "PID0083", "Pioneer",
	"Proton", "Proton40", "RC5", "RC57F", "RC57F57", "RC5x", "RC6", "RC6620",
	"RC6624", "RC6632", "RC6M16", "RC6M28", "RC6M32", "RC6M56", "RCA", "RCA38",
	"RCA38Old", "RCAOld", "RECS800045", "RECS800068", "RECS800090", "Revox",
	"Roku", "RTIRelay", "Sampo", "Samsung20", "Samsung36", "SamsungSMTG", "ScAtl6",
	"Sharp", "Sharp1", "Sharp2", "SharpDVD", "SIM2", "Sky", "SkyHD", "SkyPlus",
	"Somfy", "Sony12", "Sony15", "Sony20", "Sony8", "StreamZap", "StreamZap57",
	"Sunfire", "TDC38", "TDC56", "TeacK", "Thomson", "Thomson7", "Tivo",
	"Viewstar", "XBox360", "XBoxOne",
}

// KnownProtocols returns a copy of the known protocol names in their reference order.
func KnownProtocols() []string {
	return slices.Clone(knownProtocols[:])
}

// IsKnownProtocol reports whether name is one of KnownProtocols. The match is exact.
func IsKnownProtocol(name string) bool {
	return slices.Contains(knownProtocols[:], name)
}

// SanitizeProtocolName turns an IRDB protocol column into a protocol name by dropping braces:
// "Sharp{1}" becomes "Sharp1".
func SanitizeProtocolName(name string) string {
	return strings.NewReplacer("{", "", "}", "").Replace(strings.TrimSpace(name))
}

// FormatColumns lays names out column-major in the given number of columns. Every cell is
// padded to the longest name plus three spaces; each row ends with a newline.
func FormatColumns(names []string, columns int) string {
	if len(names) == 0 {
		return ""
	}
	columns = max(columns, 1)

	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	width += 3

	rows := (len(names) + columns - 1) / columns

	var sb strings.Builder
	for r := range rows {
		for c := range columns {
			idx := r + c*rows
			if idx >= len(names) {
				continue
			}
			sb.WriteString(names[idx])
			sb.WriteString(strings.Repeat(" ", width-len(names[idx])))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
