package constants

import "time"

// Launch Sound Timing
const (
	LaunchSoundDuration = 300 * time.Millisecond
	LaunchSoundAttack   = 20 * time.Millisecond
	LaunchSoundRelease  = 200 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundNote1Duration = 80 * time.Millisecond
	HitSoundNote2Duration = 280 * time.Millisecond
	HitSoundAttack        = 5 * time.Millisecond
	HitSoundNote1Release  = 40 * time.Millisecond
	HitSoundNote2Release  = 200 * time.Millisecond
)

// Retire Sound Timing
const (
	RetireSoundDuration = 80 * time.Millisecond
	RetireSoundAttack   = 5 * time.Millisecond
	RetireSoundRelease  = 20 * time.Millisecond
)

// Audio Device
const (
	// AudioBufferDuration is the speaker buffer length handed to beep
	AudioBufferDuration = 100 * time.Millisecond
)
