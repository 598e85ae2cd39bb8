package resyntax

import (
	"errors"
	"testing"
)

// TestDefaultConfigValues verifies DefaultConfig returns expected field values.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if !c.ExtractLiterals {
		t.Error("ExtractLiterals should be true by default")
	}
	if !c.EnablePrefilter {
		t.Error("EnablePrefilter should be true by default")
	}
	if c.MaxLiterals != 64 {
		t.Errorf("MaxLiterals = %d, want 64", c.MaxLiterals)
	}
	if c.MaxLiteralLen != 64 {
		t.Errorf("MaxLiteralLen = %d, want 64", c.MaxLiteralLen)
	}
	if c.MaxDepth != 100 {
		t.Errorf("MaxDepth = %d, want 100", c.MaxDepth)
	}
}

// TestDefaultConfigPassesValidation verifies DefaultConfig always validates.
func TestDefaultConfigPassesValidation(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"MaxLiterals zero", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"MaxLiterals too large", func(c *Config) { c.MaxLiterals = 1_001 }, "MaxLiterals"},
		{"MaxLiterals max", func(c *Config) { c.MaxLiterals = 1_000 }, ""},
		{"MaxLiteralLen zero", func(c *Config) { c.MaxLiteralLen = 0 }, "MaxLiteralLen"},
		{"MaxLiteralLen too large", func(c *Config) { c.MaxLiteralLen = 1_025 }, "MaxLiteralLen"},
		{"MaxDepth negative", func(c *Config) { c.MaxDepth = -1 }, "MaxDepth"},
		{"MaxDepth too large", func(c *Config) { c.MaxDepth = 10_001 }, "MaxDepth"},
		{"literals off, prefilter left on", func(c *Config) { c.ExtractLiterals = false }, ""},
		{
			"limits ignored without literals",
			func(c *Config) {
				c.ExtractLiterals = false
				c.MaxLiterals = 0
			},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ce.Field, tt.wantField)
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "MaxDepth", Message: "must be between 1 and 10,000"}
	want := "resyntax: invalid config: MaxDepth: must be between 1 and 10,000"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
