package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyImageDirectory   = "image_directory"
	KeyBufferRadius     = "buffer_radius"
	KeyAdvanceThreshold = "advance_threshold"
	KeySpringResponseMS = "spring_response_ms"
	KeyFreeAxis         = "free_axis_paging"
)

// Default values and clamping bounds
const (
	DefaultBufferRadius     = 1
	MaxBufferRadius         = 5
	DefaultAdvanceThreshold = 0.1
	MinAdvanceThreshold     = 0.05
	MaxAdvanceThreshold     = 0.9
	DefaultSpringResponseMS = 250
	MinSpringResponseMS     = 50
	MaxSpringResponseMS     = 2000
	DefaultFreeAxis         = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetImageDirectory returns the configured image folder, empty when unset
// (the app then falls back to the built-in demo gallery).
func (s *Settings) GetImageDirectory() string {
	return s.app.Preferences().String(KeyImageDirectory)
}

// SetImageDirectory sets the image folder
func (s *Settings) SetImageDirectory(dir string) {
	s.app.Preferences().SetString(KeyImageDirectory, dir)
}

// GetBufferRadius returns the number of neighbor items pre-rendered each side
func (s *Settings) GetBufferRadius() int {
	value := s.app.Preferences().Int(KeyBufferRadius)
	if value <= 0 {
		s.SetBufferRadius(DefaultBufferRadius)
		return DefaultBufferRadius
	}
	if value > MaxBufferRadius {
		return MaxBufferRadius
	}
	return value
}

// SetBufferRadius sets the buffer radius, clamped to [1, MaxBufferRadius]
func (s *Settings) SetBufferRadius(radius int) {
	if radius < 1 {
		radius = 1
	}
	if radius > MaxBufferRadius {
		radius = MaxBufferRadius
	}
	s.app.Preferences().SetInt(KeyBufferRadius, radius)
}

// GetAdvanceThreshold returns the page-advance threshold fraction
func (s *Settings) GetAdvanceThreshold() float64 {
	value := s.app.Preferences().Float(KeyAdvanceThreshold)
	if value <= 0 {
		s.SetAdvanceThreshold(DefaultAdvanceThreshold)
		return DefaultAdvanceThreshold
	}
	return clampThreshold(value)
}

// SetAdvanceThreshold sets the page-advance threshold fraction
func (s *Settings) SetAdvanceThreshold(threshold float64) {
	s.app.Preferences().SetFloat(KeyAdvanceThreshold, clampThreshold(threshold))
}

// GetSpringResponseMS returns the settle animation duration in milliseconds
func (s *Settings) GetSpringResponseMS() int {
	value := s.app.Preferences().Int(KeySpringResponseMS)
	if value <= 0 {
		s.SetSpringResponseMS(DefaultSpringResponseMS)
		return DefaultSpringResponseMS
	}
	return clampSpring(value)
}

// SetSpringResponseMS sets the settle animation duration in milliseconds
func (s *Settings) SetSpringResponseMS(ms int) {
	s.app.Preferences().SetInt(KeySpringResponseMS, clampSpring(ms))
}

// GetFreeAxis returns whether bidirectional axis-locked paging is enabled
func (s *Settings) GetFreeAxis() bool {
	return s.app.Preferences().BoolWithFallback(KeyFreeAxis, DefaultFreeAxis)
}

// SetFreeAxis enables or disables bidirectional paging
func (s *Settings) SetFreeAxis(enabled bool) {
	s.app.Preferences().SetBool(KeyFreeAxis, enabled)
}

// clampThreshold bounds a threshold to [MinAdvanceThreshold, MaxAdvanceThreshold]
func clampThreshold(v float64) float64 {
	if v < MinAdvanceThreshold {
		return MinAdvanceThreshold
	}
	if v > MaxAdvanceThreshold {
		return MaxAdvanceThreshold
	}
	return v
}

// clampSpring bounds a spring duration to [MinSpringResponseMS, MaxSpringResponseMS]
func clampSpring(v int) int {
	if v < MinSpringResponseMS {
		return MinSpringResponseMS
	}
	if v > MaxSpringResponseMS {
		return MaxSpringResponseMS
	}
	return v
}
