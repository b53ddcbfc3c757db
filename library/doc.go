// Package library stores many named Tuya IR codes in one compact binary file.
//
// A library usually holds one remote: a code per function name ("POWER", "VOLUME_UP", ...).
// Functions are indexed by the xxHash64 of their name, so lookups do not scan the payload.
// See package section for the byte layout.
//
// Building:
//
//	builder, err := library.NewBuilder(library.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	_ = builder.Add("POWER", "CygjlBEwApoGMAIwAg==")
//	_ = builder.AddSignal("MUTE", []int{9000, 4500, 560, 560})
//	data, err := builder.Finish()
//
// Reading:
//
//	lib, err := library.Open(data)
//	if err != nil {
//		return err
//	}
//	code, ok := lib.Code("POWER")
//	for name, code := range lib.All() {
//		fmt.Println(name, code)
//	}
package library
