package config

// Config is the full configuration file. Everything here is ambient tuning;
// the sampling cadence of the dashboard is fixed by design and deliberately
// not configurable.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the diagnostic log. The dashboard owns the
// terminal, so logs go to a file; with an empty File nothing is written.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}
