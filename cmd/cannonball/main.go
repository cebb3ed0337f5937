package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cannonball/audio"
	"github.com/lixenwraith/cannonball/core"
	"github.com/lixenwraith/cannonball/engine"
	"github.com/lixenwraith/cannonball/host/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write logs to logs/cannonball.log")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	seedFlag  = flag.Uint64("seed", 0, "RNG seed for target placement and ball colors (0 = time based)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cannonball: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash report
	core.SetCrashReset(screen.Fini)
	defer core.Recover()

	var sounder engine.Sounder
	if sm := startAudio(); sm != nil {
		sounder = sm
		defer func() {
			log.Printf("audio: played launch=%d hit=%d retire=%d",
				sm.Played(core.SoundLaunch), sm.Played(core.SoundHit), sm.Played(core.SoundRetire))
			sm.Cleanup()
		}()
	}

	session := engine.NewSession(engine.NewMonotonicTimeProvider(), *seedFlag)
	defer session.Close()
	game := engine.NewGame(session, sounder)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.NewRunner(screen, game).Run(ctx)
}

// startAudio returns a ready sound manager, or nil when audio is muted or
// unavailable. The game runs silently in that case.
func startAudio() *audio.SoundManager {
	cfg := audio.LoadAudioConfig()
	if *muteFlag {
		cfg.Enabled = false
	}

	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("audio: disabled")
		} else {
			log.Printf("audio: %v (continuing without audio)", err)
		}
		return nil
	}
	return sm
}
