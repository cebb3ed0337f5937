package audio

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/cannonball/core"
)

// AudioConfig holds the tunable audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the settings used when no overrides are present
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundLaunch: 0.7,
			core.SoundHit:    1.0,
			core.SoundRetire: 0.4,
		},
		SampleRate: 44100,
	}
}

// effectNames maps the keys accepted in CANNONBALL_SFX_VOLUMES
var effectNames = map[string]core.SoundType{
	"launch": core.SoundLaunch,
	"hit":    core.SoundHit,
	"retire": core.SoundRetire,
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound type")
)
