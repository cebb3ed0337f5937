package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cannonball/audio"
	"github.com/lixenwraith/cannonball/engine"
	"github.com/lixenwraith/cannonball/host/window"
)

var (
	muteFlag = flag.Bool("mute", false, "Disable sound effects")
	seedFlag = flag.Uint64("seed", 0, "RNG seed for target placement and ball colors (0 = time based)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cannonball-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := audio.LoadAudioConfig()
	if *muteFlag {
		cfg.Enabled = false
	}

	var sounder engine.Sounder
	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			log.Printf("audio: %v (continuing without audio)", err)
		}
	} else {
		sounder = sm
		defer sm.Cleanup()
	}

	session := engine.NewSession(engine.NewMonotonicTimeProvider(), *seedFlag)
	defer session.Close()

	return window.Run(engine.NewGame(session, sounder))
}
