package constants

import "time"

// Game Loop Timing
const (
	// FPS is the fixed simulation and render rate
	FPS = 30

	// FrameUpdateInterval is the wall-clock period of one frame (~33ms)
	FrameUpdateInterval = time.Second / FPS

	// FrameDelta is the simulation step in seconds fed to every Move call
	FrameDelta = 1.0 / FPS

	// CompactEvery is the number of frames between projectile pool compactions
	CompactEvery = FPS

	// EventQueueSize is the buffered capacity of the host input channel
	EventQueueSize = 256
)
