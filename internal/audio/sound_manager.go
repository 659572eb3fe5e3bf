// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesised on the fly; if no audio device is available
// the manager stays silent and every call is a no-op.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/desert-nomad/internal/config"
)

// SoundManager manages all game audio and implements nomad.AudioHooks.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sr          beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool

	windThrottle time.Duration
	lastWind     time.Time
	now          func() time.Time
	played       int // Cues handed to the mixer
}

// NewSoundManager creates a sound manager from the audio config.
// It stays silent until Initialize succeeds.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	sr := cfg.SampleRate
	if sr <= 0 {
		sr = 44100
	}
	return &SoundManager{
		mixer:        &beep.Mixer{},
		sr:           beep.SampleRate(sr),
		volume:       cfg.Volume,
		enabled:      cfg.Enabled,
		windThrottle: time.Duration(cfg.WindThrottleMs) * time.Millisecond,
		now:          time.Now,
	}
}

// Initialize sets up the speaker. Disabled managers skip it.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sm.sr, sm.sr.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Active reports whether sounds are actually being played.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// OnJump plays a short rising chirp.
func (sm *SoundManager) OnJump() {
	sm.play(beep.Take(sm.sr.N(120*time.Millisecond), NewSweep(sm.sr, 300, 600, 0.12)))
}

// OnLand plays a soft low thud.
func (sm *SoundManager) OnLand() {
	sm.play(beep.Take(sm.sr.N(80*time.Millisecond), NewThud(sm.sr, 90, 0.25)))
}

// OnHit plays a falling tone followed by a noise burst.
func (sm *SoundManager) OnHit() {
	sm.play(beep.Seq(
		beep.Take(sm.sr.N(200*time.Millisecond), NewSweep(sm.sr, 400, 100, 0.2)),
		beep.Take(sm.sr.N(300*time.Millisecond), NewNoise(sm.sr, 0.15, 6, 1)),
	))
}

// OnWeatherWarning plays a two-note chime.
func (sm *SoundManager) OnWeatherWarning() {
	first, err := generators.SineTone(sm.sr, 523.25)
	if err != nil {
		return
	}
	second, err := generators.SineTone(sm.sr, 659.25)
	if err != nil {
		return
	}
	sm.play(beep.Seq(
		gain(beep.Take(sm.sr.N(150*time.Millisecond), first), 0.1),
		gain(beep.Take(sm.sr.N(250*time.Millisecond), second), 0.1),
	))
}

// OnWindAmbient plays a gust of filtered noise. Gusts closer together
// than the throttle interval are dropped.
func (sm *SoundManager) OnWindAmbient(intensity float64) {
	if !sm.allowWind() {
		return
	}
	intensity = math.Max(0, math.Min(1, intensity))
	sm.play(beep.Take(sm.sr.N(600*time.Millisecond), NewNoise(sm.sr, 0.05+0.1*intensity, 2, 7)))
}

// allowWind reports whether a gust may play now and records it if so.
func (sm *SoundManager) allowWind() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if !sm.lastWind.IsZero() && now.Sub(sm.lastWind) < sm.windThrottle {
		return false
	}
	sm.lastWind = now
	return true
}

// play hands a streamer to the mixer, scaled by the master volume.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(volume(s, sm.volume))
	speaker.Unlock()
	sm.played++
}

// volume wraps a streamer with a linear volume in [0, 1].
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// gain scales a streamer by a constant amplitude factor.
func gain(s beep.Streamer, amp float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: amp - 1}
}
