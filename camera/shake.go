package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom curve of a shake, as fractions of its duration: zoom in slightly to
// hide the level edges while the view wobbles, hold, then zoom back out.
const (
	zoomInEnd   = 2.5 / 6.0
	zoomHoldEnd = 3.5 / 6.0
	zoomDip     = 0.945
	zoomHold    = 0.944
)

// Shake is a time-boxed recoil layered on top of the confined camera position.
type Shake struct {
	cfg     ShakeConfig
	elapsed float64
	active  bool

	zoomIn  *gween.Tween
	zoomOut *gween.Tween
}

func NewShake(cfg ShakeConfig) *Shake {
	if cfg.Duration <= 0 {
		cfg = DefaultShakeConfig()
	}
	in := float32(cfg.Duration * zoomInEnd)
	out := float32(cfg.Duration * (1 - zoomHoldEnd))
	return &Shake{
		cfg:     cfg,
		zoomIn:  gween.New(1, zoomDip, in, ease.Linear),
		zoomOut: gween.New(zoomDip, 1, out, ease.Linear),
	}
}

// Trigger (re)starts the shake from the beginning.
func (s *Shake) Trigger() {
	s.active = true
	s.elapsed = 0
}

func (s *Shake) Stop() {
	s.active = false
	s.elapsed = 0
}

func (s *Shake) Active() bool {
	return s.active
}

// Update advances the shake by dt seconds and returns the vertical offset and
// zoom to apply this tick. An idle shake returns (0, 1).
func (s *Shake) Update(dt float64) (offsetY, zoom float64) {
	if !s.active {
		return 0, 1
	}

	s.elapsed += dt
	if s.elapsed >= s.cfg.Duration {
		s.Stop()
		return 0, 1
	}

	return s.offsetAt(s.elapsed), s.zoomAt(s.elapsed)
}

func (s *Shake) offsetAt(t float64) float64 {
	envelope := math.Pow(math.Sin(math.Pi*t/s.cfg.Duration), 2)
	return s.cfg.Amplitude * envelope * math.Cos(2*math.Pi*s.cfg.Frequency*t)
}

func (s *Shake) zoomAt(t float64) float64 {
	d := s.cfg.Duration
	switch {
	case t < d*zoomInEnd:
		v, _ := s.zoomIn.Set(float32(t))
		return float64(v)
	case t < d*zoomHoldEnd:
		return zoomHold
	case t < d:
		v, _ := s.zoomOut.Set(float32(t - d*zoomHoldEnd))
		return float64(v)
	default:
		return 1
	}
}
