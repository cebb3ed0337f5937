package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
)

// SoundManager plays one-shot effects through a single speaker mixer.
// Every method is safe to call before Initialize or after Cleanup; playback
// requests are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [core.SoundTypeCount]uint64
}

// NewSoundManager creates a new sound manager; nil selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrapf(err, "speaker init at %d Hz", sm.cfg.SampleRate)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz, master volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// Play queues the effect for st on the mixer and returns immediately
// Returns false if audio is unavailable or st is unknown
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= core.SoundTypeCount {
		return false
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played[st]++
	return true
}

// Played returns how many times st was queued
func (sm *SoundManager) Played(st core.SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if st < 0 || st >= core.SoundTypeCount {
		return 0
	}
	return sm.played[st]
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
