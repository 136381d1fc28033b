package driven

// ConfigStore provides access to default corpus settings, e.g. which field
// identifies documents and which fields are indexed eagerly.
// Implementations handle persistence (e.g., TOML files) and type
// conversion.
type ConfigStore interface {
	// GetString retrieves a string setting.
	// Returns empty string if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer setting.
	// Returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean setting.
	// Returns false if the key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice setting.
	// Returns nil if the key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set stores a setting. The value is persisted immediately.
	Set(key string, value any) error

	// Load reads settings from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
