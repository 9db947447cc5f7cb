package dispatcher

// Config holds dispatcher configuration options. Dispatch is always
// synchronous: Dispatch returns after the action has been applied.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// Suggest attaches a "did you mean" literal to unrecognized results.
	Suggest bool

	// SuggestDistance is the largest edit distance a suggestion may have.
	SuggestDistance int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
		Suggest:          true,
		SuggestDistance:  3,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithSuggestions returns a copy of the config with suggestions set.
// A distance of zero or less keeps the current distance.
func (c Config) WithSuggestions(enabled bool, distance int) Config {
	c.Suggest = enabled
	if distance > 0 {
		c.SuggestDistance = distance
	}
	return c
}
