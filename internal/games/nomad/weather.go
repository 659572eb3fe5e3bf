package nomad

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

// WeatherKind is the closed set of weather conditions.
type WeatherKind uint8

const (
	WeatherClear WeatherKind = iota
	WeatherWind
	WeatherHeatwave
	WeatherSandstorm

	weatherKindCount = 4
)

// String returns a human-readable name for the weather kind.
func (k WeatherKind) String() string {
	switch k {
	case WeatherClear:
		return "Clear"
	case WeatherWind:
		return "Wind"
	case WeatherHeatwave:
		return "Heatwave"
	case WeatherSandstorm:
		return "Sandstorm"
	default:
		panic(fmt.Sprintf("nomad: unknown weather kind %d", k))
	}
}

// Next returns the following kind in the fixed rotation.
func (k WeatherKind) Next() WeatherKind {
	return (k + 1) % weatherKindCount
}

// Banner returns the announcement shown when the weather turns to k.
func (k WeatherKind) Banner() string {
	switch k {
	case WeatherClear:
		return "Clear skies ahead"
	case WeatherWind:
		return "Wind picking up!"
	case WeatherHeatwave:
		return "Heat wave incoming!"
	case WeatherSandstorm:
		return "Sandstorm approaching!"
	default:
		panic(fmt.Sprintf("nomad: unknown weather kind %d", k))
	}
}

// Effect is the set of gameplay modifiers weather applies.
type Effect struct {
	JumpMod    float64
	GravityMod float64
	WindForce  float64 // Horizontal drift per tick while airborne
	SpeedMod   float64
	Visibility float64 // 0.0 - 1.0
}

// NeutralEffect leaves gameplay untouched.
var NeutralEffect = Effect{JumpMod: 1, GravityMod: 1, WindForce: 0, SpeedMod: 1, Visibility: 1}

// lerp blends every field from e toward to.
func (e Effect) lerp(to Effect, t float64) Effect {
	return Effect{
		JumpMod:    core.Lerp(e.JumpMod, to.JumpMod, t),
		GravityMod: core.Lerp(e.GravityMod, to.GravityMod, t),
		WindForce:  core.Lerp(e.WindForce, to.WindForce, t),
		SpeedMod:   core.Lerp(e.SpeedMod, to.SpeedMod, t),
		Visibility: core.Lerp(e.Visibility, to.Visibility, t),
	}
}

func effectFromConfig(c config.EffectConfig) Effect {
	return Effect{
		JumpMod:    c.JumpMod,
		GravityMod: c.GravityMod,
		WindForce:  c.WindForce,
		SpeedMod:   c.SpeedMod,
		Visibility: c.Visibility,
	}
}

// WeatherVisuals are cosmetic scalars for the renderer and audio.
type WeatherVisuals struct {
	WindStrength   float64
	Visibility     float64
	HeatDistortion float64
}

// WeatherEvents reports what happened during one Advance call.
type WeatherEvents struct {
	Changed       bool        // A transition started this tick
	Target        WeatherKind // Destination of the new transition
	Banner        string
	Committed     bool // A transition finished this tick
	ForcedClear   bool // Severe weather ran too long and is being cut short
	WindAmbient   bool
	WindIntensity float64 // 0.0 - 1.0
}

// Weather drives the weather rotation, intensity ramp and eased effects.
// All timing is simulation time in milliseconds.
type Weather struct {
	cfg    config.WeatherConfig
	base   [weatherKindCount]Effect
	severe WeatherKind

	current     WeatherKind
	target      WeatherKind
	timer       float64 // Time since the last change started
	sessionTime float64
	progress    float64      // Linear transition progress, 1 when idle
	transition  *gween.Tween // Eases progress, nil when idle
	eased       float64
	severeTime  float64 // Time the severe kind has been committed

	visuals     WeatherVisuals
	banner      string
	bannerFade  *gween.Tween
	bannerAlpha float64

	rng *core.Rand // Cosmetic only, never touches gameplay
}

// NewWeather creates a weather engine starting at Clear.
func NewWeather(cfg config.WeatherConfig, seed int64) *Weather {
	w := &Weather{
		cfg:      cfg,
		current:  WeatherClear,
		target:   WeatherClear,
		progress: 1,
		eased:    1,
		visuals:  WeatherVisuals{Visibility: 1},
		rng:      core.NewRand(seed),
	}
	w.base[WeatherClear] = effectFromConfig(cfg.Effects.Clear)
	w.base[WeatherWind] = effectFromConfig(cfg.Effects.Wind)
	w.base[WeatherHeatwave] = effectFromConfig(cfg.Effects.Heatwave)
	w.base[WeatherSandstorm] = effectFromConfig(cfg.Effects.Sandstorm)

	// The most severe kind is the one that hides the most
	w.severe = WeatherSandstorm
	for k := WeatherKind(0); k < weatherKindCount; k++ {
		if w.base[k].Visibility < w.base[w.severe].Visibility {
			w.severe = k
		}
	}
	return w
}

// Advance moves the weather forward by dt milliseconds.
func (w *Weather) Advance(dt float64) WeatherEvents {
	var ev WeatherEvents
	if !w.cfg.Enabled {
		w.sessionTime += dt
		return ev
	}

	w.sessionTime += dt
	w.timer += dt

	if w.transition != nil {
		w.progress = math.Min(1, w.progress+dt/w.cfg.TransitionMs)
		eased, done := w.transition.Update(float32(dt))
		w.eased = core.ClampF(float64(eased), 0, 1)
		if done || w.progress >= 1 {
			w.current = w.target
			w.progress = 1
			w.eased = 1
			w.transition = nil
			w.severeTime = 0
			ev.Committed = true
		}
	} else if w.current == w.severe {
		w.severeTime += dt
	}

	switch {
	case w.transition == nil && w.current == w.severe && w.severe != WeatherClear && w.severeTime > w.cfg.MaxSevereMs:
		w.begin(WeatherClear, &ev)
		ev.ForcedClear = true
	case w.transition == nil && w.timer >= w.cfg.ChangeIntervalMs && w.sessionTime > w.cfg.GraceMs:
		w.begin(w.target.Next(), &ev)
	}

	w.updateVisuals()
	w.updateBanner(dt)

	if w.visuals.WindStrength > w.cfg.WindAmbientThreshold && w.rng.Chance(w.cfg.WindAmbientChance) {
		ev.WindAmbient = true
		ev.WindIntensity = core.ClampF(w.visuals.WindStrength/6, 0, 1)
	}
	return ev
}

// begin starts a transition toward kind and restarts the change timer.
func (w *Weather) begin(kind WeatherKind, ev *WeatherEvents) {
	w.target = kind
	w.progress = 0
	w.eased = 0
	w.transition = gween.New(0, 1, float32(w.cfg.TransitionMs), ease.InOutSine)
	w.timer = 0

	w.banner = kind.Banner()
	w.bannerAlpha = 1
	w.bannerFade = gween.New(1, 0, float32(w.cfg.AnnouncementMs), ease.InQuad)

	ev.Changed = true
	ev.Target = kind
	ev.Banner = w.banner
}

// updateVisuals eases the cosmetic scalars toward the target kind.
func (w *Weather) updateVisuals() {
	intensity := w.Intensity()
	rate := 0.05
	var goal WeatherVisuals

	switch w.target {
	case WeatherClear:
		goal = WeatherVisuals{WindStrength: 0, Visibility: 1, HeatDistortion: 0}
	case WeatherWind:
		goal = WeatherVisuals{WindStrength: 1.5 * (1 + intensity), Visibility: 0.9}
	case WeatherHeatwave:
		goal = WeatherVisuals{WindStrength: 0.5, Visibility: 0.95, HeatDistortion: intensity}
	case WeatherSandstorm:
		goal = WeatherVisuals{
			WindStrength:   3 * (1 + intensity),
			Visibility:     core.Lerp(0.7, 0.4, intensity),
			HeatDistortion: 0.3 * intensity,
		}
		rate = 0.03
	default:
		panic(fmt.Sprintf("nomad: unknown weather kind %d", w.target))
	}

	w.visuals.WindStrength += (goal.WindStrength - w.visuals.WindStrength) * rate
	w.visuals.Visibility = core.ClampF(w.visuals.Visibility+(goal.Visibility-w.visuals.Visibility)*rate, 0, 1)
	w.visuals.HeatDistortion += (goal.HeatDistortion - w.visuals.HeatDistortion) * rate
}

func (w *Weather) updateBanner(dt float64) {
	if w.bannerFade == nil {
		return
	}
	alpha, done := w.bannerFade.Update(float32(dt))
	w.bannerAlpha = core.ClampF(float64(alpha), 0, 1)
	if done {
		w.banner = ""
		w.bannerAlpha = 0
		w.bannerFade = nil
	}
}

// Intensity returns how strongly weather affects gameplay, ramping from 0
// at the end of the grace period to 1 after the ramp.
func (w *Weather) Intensity() float64 {
	if !w.cfg.Enabled || w.sessionTime < w.cfg.GraceMs {
		return 0
	}
	if w.cfg.RampMs <= 0 {
		return 1
	}
	return math.Min(1, (w.sessionTime-w.cfg.GraceMs)/w.cfg.RampMs)
}

// Effects returns the gameplay modifiers for this tick.
func (w *Weather) Effects() Effect {
	if !w.cfg.Enabled {
		return NeutralEffect
	}
	active := w.base[w.current]
	if w.transition != nil {
		active = active.lerp(w.base[w.target], w.eased)
	}
	return NeutralEffect.lerp(active, w.Intensity())
}

// ForceKind commits kind immediately with no transition in flight.
func (w *Weather) ForceKind(kind WeatherKind) {
	_ = kind.String() // Reject unknown kinds
	w.current = kind
	w.target = kind
	w.progress = 1
	w.eased = 1
	w.transition = nil
	w.timer = 0
	w.severeTime = 0
}

// Current returns the committed weather kind.
func (w *Weather) Current() WeatherKind { return w.current }

// Target returns the kind being transitioned to, or Current when idle.
func (w *Weather) Target() WeatherKind { return w.target }

// Transitioning reports whether a transition is in flight.
func (w *Weather) Transitioning() bool { return w.transition != nil }

// Progress returns the linear transition progress in [0, 1].
func (w *Weather) Progress() float64 { return w.progress }

// SessionTime returns the simulation time seen by the weather.
func (w *Weather) SessionTime() float64 { return w.sessionTime }

// Severe returns the kind treated as most severe.
func (w *Weather) Severe() WeatherKind { return w.severe }

// Base returns the full-strength effect of kind.
func (w *Weather) Base(kind WeatherKind) Effect { return w.base[kind] }

// Visuals returns the eased cosmetic scalars.
func (w *Weather) Visuals() WeatherVisuals { return w.visuals }

// Banner returns the current announcement and its alpha.
// The text is empty once the announcement has faded.
func (w *Weather) Banner() (string, float64) { return w.banner, w.bannerAlpha }
