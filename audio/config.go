package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/cannonball/vmath"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "CANNONBALL_AUDIO_ENABLED"
	EnvMasterVolume = "CANNONBALL_MASTER_VOLUME"
	EnvSFXVolumes   = "CANNONBALL_SFX_VOLUMES"
	EnvSampleRate   = "CANNONBALL_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are logged and ignored
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Printf("audio: ignoring %s=%q: %v", EnvAudioEnabled, enabled, err)
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		} else {
			log.Printf("audio: ignoring %s=%q: %v", EnvMasterVolume, volume, err)
		}
	}

	// Per-effect volumes as JSON, e.g. {"launch":0.5,"hit":1}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := effectNames[name]; ok {
					cfg.EffectVolumes[st] = vmath.Clamp(v, 0, 1)
				}
			}
		} else {
			log.Printf("audio: ignoring %s: %v", EnvSFXVolumes, err)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
