//go:build linux

package input

import (
	"context"
	"encoding/binary"
	"log"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// EvdevCapture reads key press and release records from /dev/input. Unlike
// the terminal it sees real key-up events, but needs read access to the
// devices (usually root or the input group).
type EvdevCapture struct {
	*HeldKeys

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// OpenEvdev starts one reader per device matching pattern,
// e.g. "/dev/input/event*"
func OpenEvdev(ctx context.Context, pattern string) (*EvdevCapture, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var fds []int
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		fds = append(fds, fd)
	}
	if len(fds) == 0 {
		return nil, ErrNoKeyboard
	}

	ctx, cancel := context.WithCancel(ctx)
	c := &EvdevCapture{HeldKeys: NewHeldKeys(), cancel: cancel}
	tvSize := binary.Size(unix.Timeval{})
	for _, fd := range fds {
		c.wg.Add(1)
		go c.read(ctx, fd, tvSize)
	}
	log.Printf("input: evdev reading %d devices", len(fds))
	return c, nil
}

func (c *EvdevCapture) read(ctx context.Context, fd, tvSize int) {
	defer c.wg.Done()
	defer unix.Close(fd)

	buf := make([]byte, 64*(tvSize+8))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 100); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		applyEvents(buf[:n], tvSize, c.HeldKeys)
	}
}

// Close stops the readers and waits for them to release their devices
func (c *EvdevCapture) Close() error {
	c.cancel()
	c.wg.Wait()
	return nil
}
