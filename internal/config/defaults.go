package config

// DefaultJobs is the default batch parallelism.
const DefaultJobs = 4

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:        DefaultBaseDir(),
		OutDir:         ".",
		Jobs:           DefaultJobs,
		LogLevel:       "info",
		HistoryEnabled: true,
	}
}
