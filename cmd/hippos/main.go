package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hippo-arena/arena"
	"github.com/lixenwraith/hippo-arena/audio"
	"github.com/lixenwraith/hippo-arena/config"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/input"
	"github.com/lixenwraith/hippo-arena/network"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/render"
	"github.com/lixenwraith/hippo-arena/service"
	"github.com/lixenwraith/hippo-arena/status"
	"github.com/lixenwraith/hippo-arena/vmath"
)

var (
	configPath   = flag.String("config", "", "TOML config file (defaults apply when empty)")
	debugFlag    = flag.Bool("debug", false, "Write a debug log under the log directory")
	headlessFlag = flag.Bool("headless", false, "Run one round without a terminal and print the result")
	ticksFlag    = flag.Int("ticks", 0, "Headless tick limit, 0 = until gameover")
	dtFlag       = flag.Duration("dt", parameter.HeadlessDelta, "Headless fixed time step")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 = time seeded")
	autoplayFlag = flag.Bool("autoplay", false, "Let the sniper policy drive the player hippo")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
	spectateFlag = flag.String("spectate", "", "Serve the spectator feed on this address")
	fpsFlag      = flag.Int("fps", 0, "Frame rate override")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	logDir = cfg.Log.Dir
	maxLogSize = int64(cfg.Log.MaxSizeMB) * 1024 * 1024
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	var rng *vmath.FastRand
	if *seedFlag != 0 {
		rng = vmath.NewFastRand(*seedFlag)
	}

	a, err := arena.New(cfg.Arena, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Arena: %v\n", err)
		os.Exit(1)
	}
	a.SetAutoplay(*autoplayFlag || *headlessFlag)

	if *headlessFlag {
		if err := runHeadless(cfg, a); err != nil {
			fmt.Fprintf(os.Stderr, "Headless: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg, a); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the config file over defaults
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *spectateFlag != "" {
		cfg.Spectate.Addr = *spectateFlag
	}
	if *fpsFlag > 0 {
		cfg.Display.FPS = *fpsFlag
	}
	return cfg, cfg.Validate()
}

func runHeadless(cfg *config.Config, a *arena.Arena) error {
	if err := cfg.Arena.ValidateStep(*dtFlag); err != nil {
		return fmt.Errorf("-dt: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res := a.Simulate(ctx, *dtFlag, *ticksFlag)

	fmt.Printf("match:     %s\n", res.MatchID)
	fmt.Printf("ticks:     %d\n", res.Ticks)
	fmt.Printf("game time: %v\n", res.GameTime.Round(time.Millisecond))
	fmt.Printf("phase:     %v\n", res.Phase)
	fmt.Printf("scores:    %v\n", res.Scores)
	if res.Completed {
		fmt.Printf("winner:    %s (%d)\n", res.Winner.Name, res.Winner.Score)
	}
	return nil
}

// host owns the terminal session and every collaborator of the arena
type host struct {
	cfg      *config.Config
	arena    *arena.Arena
	screen   tcell.Screen
	renderer *render.Renderer
	input    *input.Machine
	clock    *engine.PausableClock
	sched    *engine.Scheduler
	sound    *audio.SoundManager
	spectate *network.Server

	autoplay   bool
	showStatus bool

	statFPS        *status.AtomicFloat
	statPaused     *atomic.Bool
	statSpectators *atomic.Int64
}

func runTerminal(cfg *config.Config, a *arena.Arena) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mHIPPOS CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	reg := a.Status()
	h := &host{
		cfg:            cfg,
		arena:          a,
		screen:         screen,
		renderer:       render.NewRenderer(screen),
		input:          input.NewMachine(),
		clock:          engine.NewPausableClock(nil),
		autoplay:       *autoplayFlag,
		showStatus:     cfg.Display.ShowStatus,
		statFPS:        reg.Floats.Get(status.KeyRenderFPS),
		statPaused:     reg.Bools.Get(status.KeyPaused),
		statSpectators: reg.Ints.Get(status.KeySpectators),
	}

	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		h.input.SetKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), override))
	}

	services := service.NewHub()
	if cfg.Audio.Enabled {
		if err := services.Register(audio.NewService(cfg.Audio.Volume)); err != nil {
			return err
		}
	}
	if cfg.Spectate.Addr != "" {
		svc := network.NewService(network.DefaultConfig(cfg.Spectate.Addr), a, reg)
		svc.Server().SetLogger(log.New(log.Writer(), "[SPECTATE] ", log.LstdFlags))
		if err := services.Register(svc); err != nil {
			return err
		}
	}
	if err := services.InitAll(); err != nil {
		return err
	}
	if err := services.StartAll(); err != nil {
		return err
	}
	defer services.StopAll()

	if svc, ok := service.Lookup[*audio.AudioService](services, "audio"); ok && !svc.Disabled() {
		h.sound = svc.Manager()
	}
	if svc, ok := service.Lookup[*network.Service](services, "spectate"); ok {
		h.spectate = svc.Server()
	}

	h.sched = engine.NewScheduler(h.clock, cfg.Display.FrameInterval(), h.tick)
	h.sched.SetMaxDelta(min(parameter.MaxFrameDelta, cfg.Arena.MaxStep()-time.Nanosecond))
	h.sched.SetPanicHandler(crash)
	if err := h.sched.Start(); err != nil {
		return err
	}
	defer h.sched.Stop()

	h.run(crash)
	return nil
}

// tick runs on the scheduler goroutine; paused time is not simulated
func (h *host) tick(dt time.Duration) {
	if h.clock.IsPaused() {
		return
	}
	h.arena.Advance(dt)
}

func (h *host) run(crash func(any)) {
	frameTicker := time.NewTicker(h.cfg.Display.FrameInterval())
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frames := 0
	fpsWindow := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleInput(ev) {
				return
			}

		case <-frameTicker.C:
			h.dispatchEvents()
			snap := h.arena.Snapshot()
			if h.spectate != nil {
				if err := h.spectate.PublishSnapshot(snap); err != nil {
					log.Printf("[spectate] publish: %v", err)
				}
			}

			h.renderer.Draw(snap, render.HUD{
				FPS:        h.statFPS.Get(),
				Paused:     h.clock.IsPaused(),
				Muted:      h.sound == nil || h.sound.Muted(),
				Spectators: h.statSpectators.Load(),
				ShowStatus: h.showStatus,
			})

			frames++
			if elapsed := time.Since(fpsWindow); elapsed >= time.Second {
				h.statFPS.Set(float64(frames) / elapsed.Seconds())
				frames = 0
				fpsWindow = time.Now()
			}
		}
	}
}

// dispatchEvents drains arena notifications to audio and spectators
func (h *host) dispatchEvents() {
	evs := h.arena.Events().Consume()
	if len(evs) == 0 {
		return
	}
	if h.sound != nil {
		h.sound.HandleEvents(evs)
	}
	if h.spectate != nil {
		if err := h.spectate.PublishEvents(evs); err != nil {
			log.Printf("[spectate] publish events: %v", err)
		}
	}
}

// handleInput returns false when the host should exit
func (h *host) handleInput(ev tcell.Event) bool {
	intent := h.input.Process(ev)

	switch intent {
	case input.IntentQuit:
		return false

	case input.IntentPause:
		paused := h.clock.Toggle()
		h.statPaused.Store(paused)
		log.Printf("[host] paused=%v", paused)

	case input.IntentActivate, input.IntentRestart:
		if h.clock.IsPaused() {
			return true
		}
		h.arena.HandleInput(intent.Event())

	case input.IntentToggleMute:
		if h.sound != nil {
			h.sound.ToggleMute()
		}

	case input.IntentToggleAutoplay:
		h.autoplay = !h.autoplay
		h.arena.SetAutoplay(h.autoplay)

	case input.IntentToggleStatus:
		h.showStatus = !h.showStatus

	case input.IntentResize:
		h.screen.Sync()
	}
	return true
}
