package input

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow is how long a terminal key stays held after its last
// press or auto-repeat event
const DefaultHoldWindow = 150 * time.Millisecond

// PauseHoldWindow covers the gap between the first press of the pause key
// and the terminal's first auto-repeat, so a held space reads as one press
const PauseHoldWindow = 700 * time.Millisecond

// TerminalCapture turns tcell key events into held keys. Terminals never
// report key release, so a key is held for a hold window after each event;
// auto-repeat keeps renewing it while the key is down.
type TerminalCapture struct {
	screen    tcell.Screen
	hold      time.Duration
	pauseHold time.Duration
	now       func() time.Time

	mu   sync.Mutex
	seen map[Key]time.Time

	done chan struct{}
}

func NewTerminalCapture(screen tcell.Screen, hold time.Duration) *TerminalCapture {
	return &TerminalCapture{
		screen:    screen,
		hold:      hold,
		pauseHold: max(hold, PauseHoldWindow),
		now:       time.Now,
		seen:      make(map[Key]time.Time),
		done:      make(chan struct{}),
	}
}

// Start reads events until the screen is finalised
func (c *TerminalCapture) Start() {
	go c.run()
}

// Done is closed once the event goroutine has exited
func (c *TerminalCapture) Done() <-chan struct{} {
	return c.done
}

func (c *TerminalCapture) run() {
	defer close(c.done)
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			c.HandleKey(key)
		}
	}
}

// HandleKey records one key event
func (c *TerminalCapture) HandleKey(ev *tcell.EventKey) {
	k, ok := KeyFromTcell(ev)
	if !ok {
		return
	}
	c.mu.Lock()
	c.seen[k] = c.now()
	c.mu.Unlock()
}

// Held returns the keys seen within their hold window
func (c *TerminalCapture) Held() KeySet {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	held := make(KeySet, len(c.seen))
	for k, at := range c.seen {
		window := c.hold
		if k == PauseKey {
			window = c.pauseHold
		}
		if now.Sub(at) < window {
			held[k] = struct{}{}
		} else {
			delete(c.seen, k)
		}
	}
	return held
}

// KeyFromTcell maps a terminal key event onto the binding table. Ctrl+C is
// read as the quit key since raw mode swallows the signal.
func KeyFromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEsc, true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return KeySpace, true
		}
		k := Key(string(r))
		if IsBound(k) {
			return k, true
		}
	}
	return "", false
}
