package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/cannonball/constants"
	"github.com/lixenwraith/cannonball/core"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	freq := 440.0

	osc := NewOscillator(freq, duration, WaveSine, rate)

	if osc == nil {
		t.Fatal("Expected non-nil oscillator")
	}

	// Stream some samples
	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	// Verify samples are within valid range [-1, 1]
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][1] < -1.0 || samples[i][1] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][1])
		}
	}

	// Verify oscillator has no error
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	freq := 220.0

	osc := NewOscillator(freq, duration, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorSaw verifies sawtooth wave generation
func TestOscillatorSaw(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	freq := 110.0

	osc := NewOscillator(freq, duration, WaveSaw, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Sawtooth should be within [-1, 1]
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Sawtooth sample %d out of range: %f", i, val)
		}
	}
}

// TestOscillatorNoise verifies noise generation
func TestOscillatorNoise(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	osc := NewOscillator(0, duration, WaveNoise, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}

	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	// Noise should be within [-1, 1]
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, val)
		}
	}

	// Verify samples are not all the same (randomness check)
	allSame := true
	firstVal := samples[0][0]
	for i := 1; i < n; i++ {
		if samples[i][0] != firstVal {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	// Request more samples than duration
	samples := make([][2]float64, expectedSamples*2)
	n, ok := osc.Stream(samples)

	// Should only stream up to duration
	if n > expectedSamples {
		t.Errorf("Expected at most %d samples, got %d", expectedSamples, n)
	}

	// Second stream should return ok=false (finished)
	samples2 := make([][2]float64, 10)
	n2, ok2 := osc.Stream(samples2)

	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}

	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestEnvelopeBasic verifies envelope shaping
func TestEnvelopeBasic(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	if env == nil {
		t.Fatal("Expected non-nil envelope")
	}

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	if n != len(samples) {
		t.Errorf("Expected %d samples, got %d", len(samples), n)
	}

	// Verify envelope has no error
	if env.Err() != nil {
		t.Errorf("Expected no error, got: %v", env.Err())
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	release := 10 * time.Millisecond

	// Use square wave for consistent amplitude
	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	attackSamples := rate.N(attack)
	samples := make([][2]float64, attackSamples)
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	// First sample should have lower amplitude than last
	firstAmp := abs(samples[0][0])
	lastAmp := abs(samples[n-1][0])

	if firstAmp >= lastAmp {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", firstAmp, lastAmp)
	}
}

// TestCreateSounds verifies every cue streams audible samples
func TestCreateSounds(t *testing.T) {
	cfg := DefaultAudioConfig()

	testCases := []struct {
		name   string
		create func(*AudioConfig) beep.Streamer
	}{
		{"Launch", CreateLaunchSound},
		{"Hit", CreateHitSound},
		{"Retire", CreateRetireSound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sound := tc.create(cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil %s sound", tc.name)
			}

			samples := make([][2]float64, 1000)
			n, ok := sound.Stream(samples)
			if !ok {
				t.Errorf("Expected %s sound to stream successfully", tc.name)
			}
			if n == 0 {
				t.Errorf("Expected %s sound to produce samples", tc.name)
			}

			peak := 0.0
			for i := 0; i < n; i++ {
				peak = max(peak, abs(samples[i][0]))
			}
			if peak == 0 {
				t.Errorf("Expected %s sound to be audible", tc.name)
			}
		})
	}
}

// drain streams s to completion and returns the total sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

// TestSoundDurations verifies cues end on time so the mixer drops them
func TestSoundDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	if got, want := drain(CreateRetireSound(cfg)), rate.N(constants.RetireSoundDuration); got != want {
		t.Errorf("Expected retire sound of %d samples, got %d", want, got)
	}

	want := rate.N(constants.HitSoundNote1Duration) + rate.N(constants.HitSoundNote2Duration)
	if got := drain(CreateHitSound(cfg)); got != want {
		t.Errorf("Expected hit sound of %d samples, got %d", want, got)
	}
}

// TestGetSoundEffect verifies sound effect retrieval
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		sound := GetSoundEffect(st, cfg)
		if sound == nil {
			t.Errorf("Expected non-nil sound for type %d", st)
			continue
		}

		samples := make([][2]float64, 100)
		if n, _ := sound.Stream(samples); n == 0 {
			t.Errorf("Expected sound %d to produce samples", st)
		}
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	cfg := DefaultAudioConfig()
	if sound := GetSoundEffect(core.SoundType(999), cfg); sound != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectVolume verifies zero master volume silences a cue
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	samples := make([][2]float64, 100)
	n, _ := CreateHitSound(cfg).Stream(samples)
	for i := 0; i < n; i++ {
		if abs(samples[i][0]) > 0.01 {
			t.Fatalf("Expected near-zero amplitude for zero volume, got %f", samples[i][0])
		}
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, rate)

	vol := newVolume(osc, 0.0)
	if vol == nil {
		t.Fatal("Expected non-nil volume effect")
	}

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok {
		t.Error("Expected volume effect to stream")
	}
	if n == 0 {
		t.Error("Expected volume effect to produce samples")
	}
}

// Helper function for absolute value
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
