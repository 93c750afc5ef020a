package config

import "testing"

func TestValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestValidateBadLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestValidateBadFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid log format")
	}
}

func TestValidateAllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.Logging.Level = level

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected level %s to validate, got %v", level, err)
		}
	}
}
