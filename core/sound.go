package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaunch SoundType = iota // Ball leaves the gun
	SoundHit                     // Target struck
	SoundRetire                  // Ball lifetime expired
	SoundTypeCount
)
