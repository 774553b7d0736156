// Package config loads the optional YAML configuration both BoolX
// binaries accept via --config (SPEC_FULL.md §4.10). Its absence is
// never an error: Default returns exactly the values spec.md hardcodes
// (debug dump depths of 10, a compactor line length of 36, and the
// fixed 25-character set of instruction characters).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults matching spec.md §6 and §7.
const (
	DefaultCellDumpDepth  = 10
	DefaultQueueDumpDepth = 10
	DefaultLineLength     = 36
)

// DefaultInstructionSet is the 25-character set of BoolX instruction
// characters named in spec.md §4.7 and §6; the comment delimiters `{`
// and `}` are not part of it.
const DefaultInstructionSet = `><|+-=_^*%][#&?"!;:/\$'@~`

// DebugConfig overrides the interpreter's debug-mode memory dump.
type DebugConfig struct {
	CellDumpDepth  int `yaml:"cell_dump_depth"`
	QueueDumpDepth int `yaml:"queue_dump_depth"`
}

// CompactorConfig overrides the compactor's line wrapping and kept
// instruction set.
type CompactorConfig struct {
	LineLength     int    `yaml:"line_length"`
	InstructionSet string `yaml:"instruction_set"`
}

// Config is the root configuration document for both binaries.
type Config struct {
	Debug     DebugConfig     `yaml:"debug"`
	Compactor CompactorConfig `yaml:"compactor"`
}

// Default returns the spec-mandated defaults.
func Default() *Config {
	return &Config{
		Debug: DebugConfig{
			CellDumpDepth:  DefaultCellDumpDepth,
			QueueDumpDepth: DefaultQueueDumpDepth,
		},
		Compactor: CompactorConfig{
			LineLength:     DefaultLineLength,
			InstructionSet: DefaultInstructionSet,
		},
	}
}

// Load returns Default() when path is empty, otherwise reads and
// merges a YAML document at path on top of the defaults. The
// instruction set may only be narrowed: the instruction table in
// spec.md §4.7 is fixed by this spec, so a config that names a
// character outside DefaultInstructionSet is rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validateInstructionSet(cfg.Compactor.InstructionSet); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateInstructionSet(set string) error {
	allowed := make(map[rune]bool, len(DefaultInstructionSet))
	for _, r := range DefaultInstructionSet {
		allowed[r] = true
	}
	for _, r := range set {
		if !allowed[r] {
			return fmt.Errorf("config: instruction_set may only narrow %q, got unknown character %q", DefaultInstructionSet, r)
		}
	}
	return nil
}
