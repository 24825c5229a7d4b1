package mines

import "fmt"

// ConfigError is returned when game parameters cannot describe a board.
type ConfigError struct {
	Params  GameParams
	message string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid game params %s: %s", e.Params.Seed(), e.message)
}

func configErrorf(p GameParams, format string, args ...any) *ConfigError {
	return &ConfigError{Params: p, message: fmt.Sprintf(format, args...)}
}
