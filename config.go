package resyntax

import "github.com/coregx/resyntax/literal"

// Config controls what ParseWithConfig derives from a parsed pattern.
//
// Parsing itself has no options; the configuration only affects literal
// extraction and prefilter construction.
//
// Example:
//
//	config := resyntax.DefaultConfig()
//	config.EnablePrefilter = false // Keep literals, skip the searcher
//	p, err := resyntax.ParseWithConfig("foo|bar", config)
type Config struct {
	// ExtractLiterals enables prefix, suffix and exact literal extraction.
	// When false, Pattern only carries the syntax tree and matcher, and no
	// prefilter is built whatever EnablePrefilter says.
	// Default: true
	ExtractLiterals bool `yaml:"extract_literals"`

	// EnablePrefilter builds a candidate finder from the prefix literals.
	// Ignored when ExtractLiterals is false.
	// Default: true
	EnablePrefilter bool `yaml:"enable_prefilter"`

	// MaxLiterals limits the size of each extracted literal set.
	// Default: 64
	MaxLiterals int `yaml:"max_literals"`

	// MaxLiteralLen limits the length in bytes of each extracted literal.
	// Default: 64
	MaxLiteralLen int `yaml:"max_literal_len"`

	// MaxDepth limits how deep into the tree literal extraction looks.
	// Default: 100
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns a configuration with literal extraction and
// prefiltering enabled.
func DefaultConfig() Config {
	lc := literal.DefaultConfig()
	return Config{
		ExtractLiterals: true,
		EnablePrefilter: true,
		MaxLiterals:     lc.MaxLiterals,
		MaxLiteralLen:   lc.MaxLiteralLen,
		MaxDepth:        lc.MaxDepth,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges (checked only when ExtractLiterals is set):
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 1,024
//   - MaxDepth: 1 to 10,000
func (c Config) Validate() error {
	if !c.ExtractLiterals {
		return nil
	}

	if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
		return &ConfigError{
			Field:   "MaxLiterals",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 1_024 {
		return &ConfigError{
			Field:   "MaxLiteralLen",
			Message: "must be between 1 and 1,024",
		}
	}
	if c.MaxDepth < 1 || c.MaxDepth > 10_000 {
		return &ConfigError{
			Field:   "MaxDepth",
			Message: "must be between 1 and 10,000",
		}
	}
	return nil
}

func (c Config) extractorConfig() literal.ExtractorConfig {
	return literal.ExtractorConfig{
		MaxLiterals:   c.MaxLiterals,
		MaxLiteralLen: c.MaxLiteralLen,
		MaxDepth:      c.MaxDepth,
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "resyntax: invalid config: " + e.Field + ": " + e.Message
}
