// Command tuyair converts raw IR timings to Tuya IR codes and back, and packs codes into
// library files.
//
// Usage:
//
//	tuyair encode 9000 4500 560 1690 560 560
//	tuyair decode CygjlBEwApoGMAIwAg==
//	tuyair inspect CygjlBEwApoGMAIwAg==
//	tuyair convert < entries.txt
//	tuyair pack -o remote.tlib < entries.txt
//	tuyair list remote.tlib
//	tuyair protocols
//
// Global flags --config, --level and --verbose apply to every command. The config file is
// TOML; see Config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
