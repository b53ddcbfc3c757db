package main

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/tuyair/format"
)

// Config is the TOML configuration of the tuyair command.
//
//	level = 2
//
//	[library]
//	compression = "zstd"
//	validate = true
//
//	[irdb]
//	protocol_override = ""
//
//	[log]
//	level = "info"
//	development = false
type Config struct {
	// Level is the Tuya compression level, 0..9.
	Level int `toml:"level"`

	Library LibraryConfig `toml:"library"`
	IRDB    IRDBConfig    `toml:"irdb"`
	Log     LogConfig     `toml:"log"`
}

// LibraryConfig configures library files written by pack.
type LibraryConfig struct {
	// Compression is one of none, zstd, s2, lz4, tuya.
	Compression string `toml:"compression"`
	// Validate decodes every code before packing it.
	Validate bool `toml:"validate"`
}

// IRDBConfig configures IRDB conversion.
type IRDBConfig struct {
	// ProtocolOverride replaces the protocol column of every IRDB row.
	ProtocolOverride string `toml:"protocol_override"`
}

// LogConfig configures the logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `toml:"level"`
	// Development switches to the human-friendly development encoder.
	Development bool `toml:"development"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Level: int(format.LevelDefault),
		Library: LibraryConfig{
			Compression: "zstd",
			Validate:    true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the file keep their
// defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.Level < 0 || c.Level > int(format.LevelMax) {
		return fmt.Errorf("level %d out of range 0..%d", c.Level, format.LevelMax)
	}

	if _, err := c.Compression(); err != nil {
		return err
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// Compression returns the library compression type.
func (c Config) Compression() (format.CompressionType, error) {
	compression, ok := format.ParseCompressionType(c.Library.Compression)
	if !ok {
		return 0, fmt.Errorf("unknown library compression %q", c.Library.Compression)
	}

	return compression, nil
}

// NewLogger builds a logger writing to w. verbose forces the debug level.
func (c Config) NewLogger(w zapcore.WriteSyncer, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if c.Log.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	return zap.New(zapcore.NewCore(encoder, w, level)), nil
}
