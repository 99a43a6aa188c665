package input

import (
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"tilesnake/config"
	"tilesnake/game/types"
)

type staticSource struct {
	keys KeySet
}

func (s *staticSource) Held() KeySet { return s.keys }

func keys(ks ...Key) KeySet {
	set := make(KeySet, len(ks))
	for _, k := range ks {
		set[k] = struct{}{}
	}
	return set
}

func TestSampleHeading(t *testing.T) {
	tests := []struct {
		name    string
		held    KeySet
		want    types.Heading
		wantHas bool
	}{
		{"none", keys(), types.Heading{}, false},
		{"wasd", keys(KeyW), types.Up, true},
		{"vi", keys(KeyH), types.Left, true},
		{"arrow", keys(KeyDown), types.Down, true},
		{"right", keys(KeyL), types.Right, true},
		{"opposite pair", keys(KeyLeft, KeyRight), types.Heading{}, false},
		{"same heading twice", keys(KeyW, KeyUp), types.Heading{}, false},
		{"heading with pause", keys(KeyD, KeySpace), types.Right, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(&staticSource{keys: tt.held}, config.PauseEdge)
			in := s.Sample()
			if in.HasHeading != tt.wantHas || in.Heading != tt.want {
				t.Errorf("Sample() = %+v, want heading %v has %v", in, tt.want, tt.wantHas)
			}
		})
	}
}

func TestSampleQuit(t *testing.T) {
	s := NewSampler(&staticSource{keys: keys(KeyEsc, KeyW, KeySpace)}, config.PauseEdge)
	in := s.Sample()
	if !in.Quit {
		t.Fatal("quit not reported")
	}
	if in.Pause || in.HasHeading {
		t.Errorf("quit sample carried other intents: %+v", in)
	}
}

func TestSamplePauseEdge(t *testing.T) {
	src := &staticSource{keys: keys(KeySpace)}
	s := NewSampler(src, config.PauseEdge)

	var toggles int
	for i := 0; i < 5; i++ {
		if s.Sample().Pause {
			toggles++
		}
	}
	if toggles != 1 {
		t.Errorf("held pause toggled %d times, want 1", toggles)
	}

	src.keys = keys()
	s.Sample()
	src.keys = keys(KeySpace)
	if !s.Sample().Pause {
		t.Error("second press did not toggle")
	}
}

func TestSamplePauseSampled(t *testing.T) {
	s := NewSampler(&staticSource{keys: keys(KeySpace)}, config.PauseSampled)

	var toggles int
	for i := 0; i < 4; i++ {
		if s.Sample().Pause {
			toggles++
		}
	}
	if toggles != 4 {
		t.Errorf("sampled mode toggled %d times over 4 samples, want 4", toggles)
	}
}

func TestHeldKeysConcurrent(t *testing.T) {
	h := NewHeldKeys()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				h.Press(KeyW)
				h.Release(KeyW)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = h.Held()
			}
		}()
	}
	wg.Wait()

	h.Press(KeyA)
	if !h.Held().Has(KeyA) {
		t.Error("pressed key not held")
	}
	h.Release(KeyA)
	if h.Held().Has(KeyA) {
		t.Error("released key still held")
	}
}

func TestKeyFromTcell(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEsc, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyEsc, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, true},
		{tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), KeyJ, true},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), KeyW, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "", false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "", false},
	}

	for _, tt := range tests {
		got, ok := KeyFromTcell(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyFromTcell(%v) = %q, %v; want %q, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestTerminalCaptureHoldWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewTerminalCapture(nil, 100*time.Millisecond)
	c.now = func() time.Time { return now }

	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	if !c.Held().Has(KeyA) {
		t.Fatal("key not held right after press")
	}

	now = now.Add(60 * time.Millisecond)
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	now = now.Add(60 * time.Millisecond)
	if !c.Held().Has(KeyA) {
		t.Error("repeat did not renew hold")
	}

	now = now.Add(100 * time.Millisecond)
	if c.Held().Has(KeyA) {
		t.Error("key held after window expired")
	}
}

func TestTerminalCaptureHeldSpaceTogglesOnce(t *testing.T) {
	start := time.Unix(1000, 0)
	now := start
	c := NewTerminalCapture(nil, DefaultHoldWindow)
	c.now = func() time.Time { return now }
	s := NewSampler(c, config.PauseEdge)

	space := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	var toggles []time.Duration
	nextRepeat := 500 * time.Millisecond
	for at := time.Duration(0); at <= 3*time.Second; at += 10 * time.Millisecond {
		now = start.Add(at)
		switch {
		case at == 0:
			c.HandleKey(space)
		case at >= nextRepeat && at <= 1500*time.Millisecond:
			c.HandleKey(space)
			nextRepeat += 30 * time.Millisecond
		case at == 2500*time.Millisecond:
			c.HandleKey(space)
		}
		if at%(50*time.Millisecond) == 0 && s.Sample().Pause {
			toggles = append(toggles, at)
		}
	}

	want := []time.Duration{0, 2500 * time.Millisecond}
	if len(toggles) != len(want) || toggles[0] != want[0] || toggles[1] != want[1] {
		t.Errorf("pause toggled at %v, want %v", toggles, want)
	}
}

func TestTerminalCaptureHeadingWindowUnchanged(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewTerminalCapture(nil, DefaultHoldWindow)
	c.now = func() time.Time { return now }

	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	now = now.Add(200 * time.Millisecond)
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	held := c.Held()
	if held.Has(KeyW) || !held.Has(KeyD) {
		t.Errorf("held = %v, want only d", held)
	}
}

func TestTerminalCaptureReadsScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	c := NewTerminalCapture(screen, time.Minute)
	c.Start()

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)

	deadline := time.Now().Add(2 * time.Second)
	for !c.Held().Has(KeyD) {
		if time.Now().After(deadline) {
			t.Fatal("injected key never observed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	screen.Fini()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Error("capture goroutine did not exit after Fini")
	}
}

func encodeEvent(buf []byte, tvSize int, typ, code uint16, value int32) []byte {
	rec := make([]byte, tvSize+8)
	binary.LittleEndian.PutUint16(rec[tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[tvSize+4:], uint32(value))
	return append(buf, rec...)
}

func TestApplyEvents(t *testing.T) {
	const tvSize = 16
	held := NewHeldKeys()

	var buf []byte
	buf = encodeEvent(buf, tvSize, evKey, 17, 1)  // w down
	buf = encodeEvent(buf, tvSize, evKey, 57, 1)  // space down
	buf = encodeEvent(buf, tvSize, 0x00, 0, 0)    // sync
	buf = encodeEvent(buf, tvSize, evKey, 57, 0)  // space up
	buf = encodeEvent(buf, tvSize, evKey, 103, 2) // up repeat
	buf = encodeEvent(buf, tvSize, evKey, 44, 1)  // z, unbound
	applyEvents(buf, tvSize, held)

	got := held.Held()
	if !got.Has(KeyW) || !got.Has(KeyUp) {
		t.Errorf("held = %v, want w and up", got)
	}
	if got.Has(KeySpace) {
		t.Error("released space still held")
	}
	if len(got) != 2 {
		t.Errorf("held = %v, want 2 keys", got)
	}
}

func TestBoundKeys(t *testing.T) {
	ks := BoundKeys()
	if len(ks) != 14 {
		t.Errorf("BoundKeys() has %d keys, want 14", len(ks))
	}
	for _, k := range ks {
		if !IsBound(k) {
			t.Errorf("%q listed but not bound", k)
		}
		if _, ok := raylibKeys[k]; !ok {
			t.Errorf("%q has no raylib key code", k)
		}
	}
}

func TestMerge(t *testing.T) {
	a := &staticSource{keys: keys(KeyW)}
	b := &staticSource{keys: keys(KeyEsc, KeyW)}
	got := Merge(a, b).Held()
	if len(got) != 2 || !got.Has(KeyW) || !got.Has(KeyEsc) {
		t.Errorf("Merge = %v, want w and esc", got)
	}
	if len(Merge().Held()) != 0 {
		t.Error("empty merge should hold nothing")
	}
}
