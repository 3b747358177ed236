package camera

import "github.com/milk9111/screencam/common"

// Config tunes the camera. The zero value is usable: it disables horizontal
// smoothing and the crossing guard and falls back to the default player speed
// and shake.
type Config struct {
	// PlayerSpeed drives the smooth transition rate (half of it per second).
	PlayerSpeed float64
	// SmoothFactorX lerps the horizontal axis toward the confined position;
	// 0 disables smoothing.
	SmoothFactorX float64
	CrossingGuard bool
	Shake         ShakeConfig
}

type ShakeConfig struct {
	// Duration in seconds.
	Duration float64
	// Amplitude in world units.
	Amplitude float64
	// Frequency of the oscillation in Hz.
	Frequency float64
}

func DefaultConfig() Config {
	return Config{
		PlayerSpeed:   common.PlayerSpeed,
		CrossingGuard: true,
		Shake:         DefaultShakeConfig(),
	}
}

func DefaultShakeConfig() ShakeConfig {
	return ShakeConfig{
		Duration:  6,
		Amplitude: 20,
		Frequency: 5,
	}
}
