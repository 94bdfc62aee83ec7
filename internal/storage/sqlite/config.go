package sqlite

// Config holds SQLite storage settings
type Config struct {
	// Path is the database file. ":memory:" keeps everything in process memory.
	Path string
}

// DefaultConfig returns the default SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path: "gameportal.db",
	}
}
