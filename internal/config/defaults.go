package config

const (
	defaultCacheDir      = "~/.cache/tvscript/pages"
	defaultCacheTTL      = 360
	defaultStorageDir    = "show"
	defaultFetchTimeout  = 15
	defaultFetchMaxBytes = 10_000_000
	defaultFetchWorkers  = 1
	defaultUserAgent     = "tvscript/1.0"
	defaultLogFormat     = "text"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cache: Cache{
			Dir:        defaultCacheDir,
			TTLMinutes: defaultCacheTTL,
		},
		Fetch: Fetch{
			TimeoutSeconds: defaultFetchTimeout,
			MaxBytes:       defaultFetchMaxBytes,
			UserAgent:      defaultUserAgent,
			Workers:        defaultFetchWorkers,
		},
		Storage: Storage{
			Dir: defaultStorageDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
