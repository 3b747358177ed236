package prefabs

import (
	"fmt"

	"github.com/milk9111/screencam/camera"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CameraSpec struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	SmoothFactorX float64 `yaml:"smooth_factor_x"`
	// CrossingGuard is left nil when the key is absent so the camera default
	// (on) applies.
	CrossingGuard *bool `yaml:"crossing_guard,omitempty"`
	// MarginX and MarginY widen screens when asking which screen a point
	// belongs to. Used for the current-screen readout, not for confinement.
	MarginX float64   `yaml:"margin_x"`
	MarginY float64   `yaml:"margin_y"`
	Shake   ShakeSpec `yaml:"shake"`
}

type ShakeSpec struct {
	Duration  float64 `yaml:"duration"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec into a camera configuration. Missing values fall
// back to camera.DefaultConfig.
func (s *CameraSpec) Config() camera.Config {
	cfg := camera.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.PlayerSpeed > 0 {
		cfg.PlayerSpeed = s.PlayerSpeed
	}
	cfg.SmoothFactorX = s.SmoothFactorX
	if s.CrossingGuard != nil {
		cfg.CrossingGuard = *s.CrossingGuard
	}
	if s.Shake.Duration > 0 {
		cfg.Shake.Duration = s.Shake.Duration
	}
	if s.Shake.Amplitude > 0 {
		cfg.Shake.Amplitude = s.Shake.Amplitude
	}
	if s.Shake.Frequency > 0 {
		cfg.Shake.Frequency = s.Shake.Frequency
	}
	return cfg
}

type PlayerSpec struct {
	Name      string  `yaml:"name"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
