//go:build !linux

package input

import (
	"context"
)

// EvdevCapture is only available on Linux
type EvdevCapture struct {
	*HeldKeys
}

func OpenEvdev(ctx context.Context, pattern string) (*EvdevCapture, error) {
	return nil, ErrNoKeyboard
}

func (c *EvdevCapture) Close() error {
	return nil
}
