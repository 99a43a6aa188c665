package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"tilesnake/audio"
	"tilesnake/config"
	"tilesnake/game"
	"tilesnake/input"
	"tilesnake/ui"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024

	evdevPattern = "/dev/input/event*"
)

// raylib must stay on the main thread
func init() {
	runtime.LockOSThread()
}

type backend int

const (
	graphical backend = iota
	text
)

func (b backend) String() string {
	if b == text {
		return "text"
	}
	return "graphical"
}

var backendTokens = map[string]backend{
	"gui":  graphical,
	"-gui": graphical,
	"g":    graphical,
	"-g":   graphical,
	"cli":  text,
	"-cli": text,
	"c":    text,
	"-c":   text,
}

// parseBackend maps a renderer selector to a back end. The empty string
// selects the graphical renderer.
func parseBackend(token string) (backend, error) {
	if token == "" {
		return graphical, nil
	}
	b, ok := backendTokens[strings.ToLower(token)]
	if !ok {
		return graphical, fmt.Errorf("unknown renderer %q: want gui or cli", token)
	}
	return b, nil
}

type options struct {
	backend backend
	confDir string
	debug   bool
	input   string
	seed    uint64
}

func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("tilesnake", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: tilesnake [flags] [gui|cli]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.confDir, "conf", "confs", "directory holding game.conf, cli.conf and gui.conf")
	fs.BoolVar(&opts.debug, "debug", false, "write a debug log to "+filepath.Join(logDir, logFileName))
	fs.StringVar(&opts.input, "input", "terminal", "text renderer key source: terminal or evdev (cli only)")
	fs.Uint64Var(&opts.seed, "seed", 0, "fruit placement seed, 0 picks one from the clock")

	var gui, cli bool
	for _, name := range []string{"gui", "g"} {
		fs.BoolVar(&gui, name, false, "use the graphical renderer")
	}
	for _, name := range []string{"cli", "c"} {
		fs.BoolVar(&cli, name, false, "use the text renderer")
	}

	// selector flags are case-insensitive like the positional form
	normalized := make([]string, len(args))
	for i, a := range args {
		if _, ok := backendTokens[strings.ToLower(a)]; ok && strings.HasPrefix(a, "-") {
			a = strings.ToLower(a)
		}
		normalized[i] = a
	}
	if err := fs.Parse(normalized); err != nil {
		return opts, err
	}

	if fs.NArg() > 1 {
		return opts, fmt.Errorf("unexpected arguments %q", fs.Args()[1:])
	}
	var chosen []backend
	if gui {
		chosen = append(chosen, graphical)
	}
	if cli {
		chosen = append(chosen, text)
	}
	if fs.NArg() == 1 {
		b, err := parseBackend(fs.Arg(0))
		if err != nil {
			return opts, err
		}
		chosen = append(chosen, b)
	}
	for _, b := range chosen {
		if b != chosen[0] {
			return opts, errors.New("both gui and cli renderers requested")
		}
	}
	if len(chosen) > 0 {
		opts.backend = chosen[0]
	}

	if opts.input != "terminal" && opts.input != "evdev" {
		return opts, fmt.Errorf("unknown input %q: want terminal or evdev", opts.input)
	}
	if opts.input == "evdev" && opts.backend == graphical {
		return opts, errors.New("-input evdev needs the cli renderer; the window reads its own keys")
	}
	return opts, nil
}

// setupLogging sends the standard logger to logs/snake.log when debug is
// set, rotating a file that grew past maxLogSize. Otherwise logs are
// discarded so nothing reaches the terminal.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			os.Remove(logPath)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func loadConfigs(opts options) (config.Game, config.Values, error) {
	values, err := config.Load(filepath.Join(opts.confDir, "game.conf"))
	if err != nil {
		return config.Game{}, nil, err
	}
	cfg, err := config.GameFromValues(values)
	if err != nil {
		return config.Game{}, nil, fmt.Errorf("game.conf: %w", err)
	}

	name := "gui.conf"
	if opts.backend == text {
		name = "cli.conf"
	}
	rendererValues, err := config.Load(filepath.Join(opts.confDir, name))
	if err != nil {
		return config.Game{}, nil, err
	}
	return cfg, rendererValues, nil
}

// openBackend builds the renderer and its key source. The returned cleanup
// releases input devices; the renderer is closed by the caller.
func openBackend(ctx context.Context, opts options, values config.Values) (ui.Renderer, input.Source, func(), error) {
	if opts.backend == graphical {
		gcfg, err := config.GraphicalFromValues(values)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("gui.conf: %w", err)
		}
		r, err := ui.NewGraphicalRenderer(ui.NewRaylibWindow(gcfg.Font), gcfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return r, input.NewWindowCapture(), func() {}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, nil, nil, fmt.Errorf("terminal: %w", err)
	}
	r, err := ui.NewTextRenderer(screen, config.TextFromValues(values))
	if err != nil {
		screen.Fini()
		return nil, nil, nil, err
	}

	// tcell events are drained either way so Ctrl+C keeps working in evdev mode
	capture := input.NewTerminalCapture(screen, input.DefaultHoldWindow)
	capture.Start()
	if opts.input == "evdev" {
		ev, err := input.OpenEvdev(ctx, evdevPattern)
		if err != nil {
			r.Close()
			return nil, nil, nil, fmt.Errorf("evdev: %w", err)
		}
		return r, input.Merge(ev, capture), func() { ev.Close() }, nil
	}
	return r, capture, func() {}, nil
}

// run plays until quit, cancellation or a loss. The returned stats cover
// every game finished before that.
func run(opts options) (*game.GameStats, error) {
	stats := game.NewGameStats()
	cfg, values, err := loadConfigs(opts)
	if err != nil {
		return stats, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, keys, release, err := openBackend(ctx, opts, values)
	if err != nil {
		return stats, err
	}
	defer renderer.Close()
	defer release()

	defer func() {
		if r := recover(); r != nil {
			renderer.Close()
			fmt.Fprintf(os.Stderr, "\ntilesnake crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	g, err := game.NewGame(renderer, keys, cfg)
	if err != nil {
		return stats, err
	}
	if opts.seed != 0 {
		g.Seed(opts.seed)
	}

	listeners := game.Listeners{stats}
	if cfg.Sound {
		if cues, err := audio.NewCues(); err != nil {
			log.Printf("audio: disabled: %v", err)
		} else {
			defer cues.Close()
			listeners = append(listeners, cues)
		}
	}
	g.Listener = listeners

	log.Printf("main: %s renderer, %dx%d grid", opts.backend, cfg.Width, cfg.Height)
	return stats, g.Start(ctx)
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilesnake: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	stats, err := run(opts)
	if summary := stats.Summary(); summary != "" {
		log.Printf("main: %s", summary)
		fmt.Println(summary)
	}
	switch {
	case err == nil, errors.Is(err, game.ErrQuit), errors.Is(err, context.Canceled):
		log.Printf("main: exit")
	default:
		fmt.Fprintf(os.Stderr, "tilesnake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}
