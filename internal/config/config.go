package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	TicksPerSec  = 60

	SampleRate     = 44100
	SpeakerBuffer  = time.Second / 20
	VisualRingSize = 4096

	// Nav bar and footer
	NavHeight    = 44
	FooterHeight = 56

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 36

	// Camera
	CameraDistance = 8.2
	CameraHeight   = 2.0
	CameraFOV      = 50.0
	MinPolarAngle  = 3.14159265358979 / 4
	MaxPolarAngle  = 3.14159265358979 / 1.5

	// Hover and overlay timing
	HoverCooldown   = 2 * time.Second
	OverlayDuration = 5 * time.Second
	HoverPickRadius = 26.0

	// Breathing
	BreathPhaseSeconds = 4
	DefaultMinutes     = 10

	StarCount = 300
)

// MeditationMinutes are the selectable session lengths
var MeditationMinutes = []int{5, 10, 15, 20, 30}
