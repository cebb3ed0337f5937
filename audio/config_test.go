package audio

import (
	"testing"

	"github.com/lixenwraith/cannonball/core"
)

// clearAudioEnv blanks every audio variable for the duration of the test
func clearAudioEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate} {
		t.Setenv(key, "")
	}
}

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if cfg == nil {
		t.Fatal("Expected non-nil default config")
	}
	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	expectedVolumes := map[core.SoundType]float64{
		core.SoundLaunch: 0.7,
		core.SoundHit:    1.0,
		core.SoundRetire: 0.4,
	}
	for soundType, expectedVol := range expectedVolumes {
		if vol, ok := cfg.EffectVolumes[soundType]; !ok {
			t.Errorf("Expected volume for sound type %d to be set", soundType)
		} else if vol != expectedVol {
			t.Errorf("Expected volume %f for sound type %d, got %f", expectedVol, soundType, vol)
		}
	}
}

// TestDefaultAudioConfigIndependent verifies each call returns fresh maps
func TestDefaultAudioConfigIndependent(t *testing.T) {
	a := DefaultAudioConfig()
	b := DefaultAudioConfig()
	a.EffectVolumes[core.SoundHit] = 0

	if b.EffectVolumes[core.SoundHit] != 1.0 {
		t.Error("Expected default configs not to share volume maps")
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg := LoadAudioConfig()
	defaultCfg := DefaultAudioConfig()

	if cfg.Enabled != defaultCfg.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", defaultCfg.Enabled, cfg.Enabled)
	}
	if cfg.MasterVolume != defaultCfg.MasterVolume {
		t.Errorf("Expected MasterVolume=%f, got %f", defaultCfg.MasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != defaultCfg.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", defaultCfg.SampleRate, cfg.SampleRate)
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvAudioEnabled, tc.value)

			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies loading and clamping master volume
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvMasterVolume, tc.value)

			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies JSON effect volume overrides
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvSFXVolumes, `{"launch":0.25,"hit":2,"bogus":0.1}`)

	cfg := LoadAudioConfig()

	if v := cfg.EffectVolumes[core.SoundLaunch]; v != 0.25 {
		t.Errorf("Expected launch volume 0.25, got %f", v)
	}
	if v := cfg.EffectVolumes[core.SoundHit]; v != 1.0 {
		t.Errorf("Expected hit volume clamped to 1.0, got %f", v)
	}
	if v := cfg.EffectVolumes[core.SoundRetire]; v != 0.4 {
		t.Errorf("Expected retire volume left at default, got %f", v)
	}
}

// TestLoadAudioConfigEffectVolumesInvalid verifies malformed JSON is ignored
func TestLoadAudioConfigEffectVolumesInvalid(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv(EnvSFXVolumes, `{launch:`)

	cfg := LoadAudioConfig()
	if v := cfg.EffectVolumes[core.SoundLaunch]; v != 0.7 {
		t.Errorf("Expected default launch volume, got %f", v)
	}
}

// TestLoadAudioConfigSampleRate verifies loading sample rate
func TestLoadAudioConfigSampleRate(t *testing.T) {
	defaultRate := DefaultAudioConfig().SampleRate

	testCases := []struct {
		value    string
		expected int
	}{
		{"22050", 22050},
		{"48000", 48000},
		{"invalid", defaultRate},
		{"-1000", defaultRate},
		{"0", defaultRate},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv(EnvSampleRate, tc.value)

			if cfg := LoadAudioConfig(); cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d for value %s, got %d", tc.expected, tc.value, cfg.SampleRate)
			}
		})
	}
}
