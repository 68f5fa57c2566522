package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundDoubleJump
	SoundSlash
	SoundHit
	SoundPowerUp
	SoundScore
)

// ToneShape selects the synthesized waveform for a cue.
type ToneShape int

const (
	ShapeSine ToneShape = iota
	ShapeSquare
	ShapeNoise
)

// CueSpec describes one procedurally synthesized sound effect.
type CueSpec struct {
	Shape     ToneShape
	Freq      float64 // base frequency, ignored for noise
	Slide     float64 // linear frequency slide over the cue
	Duration  float64 // seconds
	Volume    float64
	PitchDrop bool // noise only: drop perceived pitch over time
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultSFXVol   float64
	Cues            map[SoundID]CueSpec
	VolumeOverrides map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Cues: map[SoundID]CueSpec{
			SoundJump:       {Shape: ShapeSquare, Freq: 440, Slide: 100, Duration: 0.1, Volume: 0.5},
			SoundDoubleJump: {Shape: ShapeSine, Freq: 660, Slide: 200, Duration: 0.1, Volume: 0.5},
			SoundSlash:      {Shape: ShapeNoise, Duration: 0.15, Volume: 0.5},
			SoundHit:        {Shape: ShapeNoise, Duration: 0.3, Volume: 0.5, PitchDrop: true},
			SoundPowerUp:    {Shape: ShapeSine, Freq: 554, Slide: 120, Duration: 0.12, Volume: 0.5},
			SoundScore:      {Shape: ShapeSine, Freq: 880, Duration: 0.05, Volume: 0.5},
		},
		VolumeOverrides: map[SoundID]float64{
			SoundHit: 1.2,
		},
	}
}
