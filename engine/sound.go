package engine

import "github.com/lixenwraith/cannonball/core"

// Sounder plays sound cues; implementations must not block the frame
//
//go:generate go tool mockgen -destination=./mocks/sounder_mock.go -package=mocks . Sounder
type Sounder interface {
	Play(st core.SoundType) bool
}
