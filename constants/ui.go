package constants

// HUD layout in arena pixels
const (
	ShotsTextX = 50
	ShotsTextY = 70
	ScoreTextX = 50
	ScoreTextY = 500

	// Charge meter sits right of the shots counter
	MeterX      = 300
	MeterY      = 70
	MeterWidth  = 200
	MeterHeight = 16
)

// HUD text formats
const (
	ShotsFormat = "Shots fired: %d"
	ScoreFormat = "Score: %d"
)
