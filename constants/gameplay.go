package constants

import "time"

// Projectile
const (
	// BallSpawnX, BallSpawnY is where every ball is created
	BallSpawnX = 60
	BallSpawnY = 450

	BallRadius = 10

	// BallGravity is subtracted from vy each second of flight
	BallGravity = 10

	// BallLifetime is the flight time in seconds after which a ball retires
	BallLifetime = 15
)

// Launcher
const (
	GunX = 0
	GunY = 600

	// GunBasePower is the power coefficient restored after every shot
	GunBasePower = 8

	// GunMaxPower caps the coefficient returned by ReadPower
	GunMaxPower = 100

	// GunChargeUnit is the hold duration worth one multiplier step
	GunChargeUnit = 20 * time.Millisecond
)

// Target spawn ranges, inclusive
const (
	TargetMinRadius = 15
	TargetMaxRadius = 30
	TargetMinX      = 200
	TargetMaxX      = 550
	TargetMinY      = 200
	TargetMaxY      = 350
	TargetMinVY     = -30
	TargetMaxVY     = 30

	// TargetSpeedLimit is the |vy| above which a target bleeds speed
	TargetSpeedLimit = 30

	// TargetBleedSpeed is the |vy| a target snaps to after exceeding the limit
	TargetBleedSpeed = 20
)

// Scoring
const (
	// TargetCount is the number of targets in the arena
	TargetCount = 2

	// HitReward is added to the score for every target hit
	HitReward = 3
)
