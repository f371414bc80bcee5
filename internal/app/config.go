package app

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"pqmudh/internal/log"
)

const (
	defaultLogLevel = "NOTICE"
	defaultCount    = 1
	seedSize        = 32
)

// Logging is the logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	if !log.ValidLevel(lCfg.Level) {
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	return nil
}

// Benchmark selects what a run measures and where results go.
type Benchmark struct {
	// Count is the number of rounds to time.
	Count int

	// Kyber gives the responder a Kyber1024 pre-key.
	Kyber bool

	// OneTimePreKey gives the responder a one-time pre-key.
	OneTimePreKey bool

	// Seed is a hex encoded 32 byte seed. If set, keys and KEM randomness
	// are drawn from a deterministic stream so runs can be repeated.
	Seed string

	// ReportFile is where the JSON report is written, if set.
	ReportFile string

	// MetricsFile is where the Prometheus text export is written, if set.
	MetricsFile string
}

func (bCfg *Benchmark) validate() error {
	if bCfg.Count < 1 {
		return fmt.Errorf("config: Benchmark: Count %d must be at least 1", bCfg.Count)
	}
	if bCfg.Seed != "" {
		if _, err := bCfg.SeedBytes(); err != nil {
			return err
		}
	}
	return nil
}

// SeedBytes decodes Seed. It returns nil if no seed is configured.
func (bCfg *Benchmark) SeedBytes() ([]byte, error) {
	if bCfg.Seed == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(bCfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("config: Benchmark: Seed is not hex: %w", err)
	}
	if len(b) != seedSize {
		return nil, fmt.Errorf("config: Benchmark: Seed must be %d bytes, got %d", seedSize, len(b))
	}
	return b, nil
}

// Config is the top level benchmark configuration.
type Config struct {
	Logging   *Logging
	Benchmark *Benchmark
}

// FixupAndValidate applies defaults to config entries and validates the
// configuration sections.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Benchmark == nil {
		cfg.Benchmark = &Benchmark{}
	}
	if cfg.Benchmark.Count == 0 {
		cfg.Benchmark.Count = defaultCount
	}

	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	return cfg.Benchmark.validate()
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic("BUG: default config is invalid: " + err.Error())
	}
	return cfg
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("config: no nil buffer as config file")
	}

	cfg := new(Config)
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}
