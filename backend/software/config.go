package software

// DefaultSupersample is the default number of samples per device pixel
// along each axis.
const DefaultSupersample = 4

// Config holds renderer configuration.
type Config struct {
	// Supersample is the number of samples per device pixel along each
	// axis. Values below 1 are treated as 1.
	Supersample int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Supersample: DefaultSupersample}
}

func (c Config) supersample() int {
	if c.Supersample < 1 {
		return 1
	}
	return c.Supersample
}
