package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PlayerSpeed is the horizontal speed of the player in world units per second.
	PlayerSpeed = 500.0

	// Gravity points down in world space (Y grows upward).
	Gravity = -1800.0
)
