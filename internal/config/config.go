package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Orbit Collapse - click to restart, M: mute, D: debug, Esc/Q: quit"

	// Canvas the rings and particles are laid out on, centered in the window
	CanvasWidth  = 800
	CanvasHeight = 500

	LevelRingSize = 4096
)

// Rings and orbit
const (
	RingCount     = 12
	RingRadiusX   = 25.0
	RingRadiusY   = 12.0
	OrbitDuration = 12.0 // seconds for the whole traversal
	OrbitSteps    = 60   // 61 keyframes per revolution

	// Rings with index <= FadeRingIndex dim the marker towards MinDotOpacity.
	FadeRingIndex = 7
	MinDotOpacity = 0.3

	SettleOffsetX   = 12.0
	SettleOffsetY   = 12.0
	SettleDuration  = 0.5
	MarkerRadius    = 12.0
	RingRotation    = 720.0
	GroupTumble     = 360.0
	ActiveRingWidth = 1.0
	IdleRingWidth   = 2.0
)

// Collapse
const (
	SuckDuration      = 2.0
	SuckScaleDelay    = 0.5
	SuckScaleDuration = 1.5
	ScatterDelay      = 200 * time.Millisecond
)

// Particles
const (
	ParticleCount       = 100
	ParticleMinDistance = 50.0
	ParticleMaxDistance = 300.0
	ParticleMaxDelay    = 0.5
	ParticleMinSize     = 1.0
	ParticleMaxSize     = 3.0
	ParticleCycle       = 3.0
	ParticleDrift       = 3.0
)

// Particle keyframes. Each call returns a fresh slice.
func ParticleTimes() []float64   { return []float64{0, 0.2, 0.6, 1} }
func ParticleOpacity() []float64 { return []float64{0.3, 1, 0.7, 1} }
func ParticleScale() []float64   { return []float64{0.25, 7.5, 2.5, 1} }

// Colour
const (
	HueStep            = 1
	HueWrap            = 360
	RingSaturation     = 0.8
	RingLightActive    = 0.7
	RingLightIdle      = 0.4
	DotSaturation      = 1.0
	DotLightInner      = 0.7
	DotLightOuter      = 0.4
	DotLightGlow       = 0.6
	GradientHueOffset  = 60.0
	ShimmerBaseHex     = "#ffffff"
	ShimmerAccentHex   = "#7ab5ff"
	ShimmerPeriod      = 3.0
	LabelFontSize      = 40.0
	LabelLetterSpacing = 4.0
)

// Labels and reset
const (
	PhraseFirst    = "Impossible"
	PhraseSecond   = "(I'm possible)"
	PhraseInterval = 4 * time.Second
	GlyphStagger   = 0.05
	GlyphDuration  = 0.15
	ShimmerText    = "Outcomes"

	ResetDelay = 50 * time.Millisecond
)
