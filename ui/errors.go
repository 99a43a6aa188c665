package ui

import "fmt"

// ValidationError reports a scene dimension that is not a non-negative integer
type ValidationError struct {
	Name  string
	Value int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: distances must be non-negative", e.Name, e.Value)
}

// BoundsError reports a tile outside the current scene
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("tile (%d, %d) outside scene %dx%d", e.X, e.Y, e.Width, e.Height)
}

// ConfigError reports a missing or unusable renderer config entry
type ConfigError struct {
	Renderer string
	Key      string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: config value %q invalid: %v", e.Renderer, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: config value %q missing", e.Renderer, e.Key)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
