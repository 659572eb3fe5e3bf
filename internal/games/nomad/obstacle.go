package nomad

import (
	"fmt"
	"math"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

// ObstacleKind is the closed set of obstacle variants.
type ObstacleKind uint8

const (
	KindCactus ObstacleKind = iota
	KindRock
	KindSnake
	KindScorpion
	KindQuicksand  // Hazard zone, traps instead of killing
	KindTumbleweed // Flying, must be ducked under

	obstacleKindCount = 6
)

// AllObstacleKinds lists every kind in declaration order.
var AllObstacleKinds = []ObstacleKind{
	KindCactus, KindRock, KindSnake, KindScorpion, KindQuicksand, KindTumbleweed,
}

// Tumbleweed bounce amplitude. Elevation limits in config assume this value.
const tumbleweedBounce = 4.0

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindCactus:
		return "cactus"
	case KindRock:
		return "rock"
	case KindSnake:
		return "snake"
	case KindScorpion:
		return "scorpion"
	case KindQuicksand:
		return "quicksand"
	case KindTumbleweed:
		return "tumbleweed"
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", k))
	}
}

// IsHard reports whether the kind counts toward the consecutive-hard limit.
func (k ObstacleKind) IsHard() bool {
	switch k {
	case KindCactus, KindRock, KindSnake:
		return false
	case KindScorpion, KindQuicksand, KindTumbleweed:
		return true
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", k))
	}
}

// IsHazard reports whether overlapping the kind traps instead of kills.
func (k ObstacleKind) IsHazard() bool {
	return k == KindQuicksand
}

// padding returns the horizontal and vertical hitbox inset.
func (k ObstacleKind) padding() (float64, float64) {
	switch k {
	case KindCactus, KindRock, KindTumbleweed:
		return 5, 5
	case KindSnake:
		return 3, 3
	case KindScorpion:
		return 4, 4
	case KindQuicksand:
		return 10, 2
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", k))
	}
}

// Obstacle is a single scrolling obstacle. Y grows downward.
type Obstacle struct {
	Kind          ObstacleKind
	X, Y          float64
	Width, Height float64
	SpeedMult     float64
	Active        bool

	BaseY       float64 // Resting Y; tumbleweeds bounce around it
	AnimFrame   float64 // Snake and scorpion gait
	AnimTime    float64 // Quicksand bubbling
	Rotation    float64 // Tumbleweed spin
	BouncePhase float64
}

// NewObstacle creates an obstacle of the given kind at x, resting on groundY.
func NewObstacle(kind ObstacleKind, x, groundY float64, rng *core.Rand, cfg config.NomadObstacles) Obstacle {
	o := Obstacle{Kind: kind, X: x, SpeedMult: 1, Active: true}

	switch kind {
	case KindCactus:
		o.Width = 30
		o.Height = float64(rng.Int(50, 80))
		o.Y = groundY - o.Height
	case KindRock:
		o.Width = float64(rng.Int(40, 60))
		o.Height = float64(rng.Int(25, 40))
		o.Y = groundY - o.Height
	case KindSnake:
		o.Width, o.Height = 50, 15
		o.Y = groundY - o.Height
		o.SpeedMult = 1.3
	case KindScorpion:
		o.Width, o.Height = 35, 20
		o.Y = groundY - o.Height
		o.SpeedMult = 1.1
	case KindQuicksand:
		// Sunk slightly into the ground so a standing player always touches it
		o.Width, o.Height = 100, 16
		o.Y = groundY - 12
	case KindTumbleweed:
		// Floats at head height: clears a ducking hitbox, hits a standing one
		o.Width, o.Height = 40, 40
		o.Y = groundY - float64(rng.Int(cfg.TumbleweedElevationMin, cfg.TumbleweedElevationMax))
		o.SpeedMult = 0.8
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", kind))
	}
	o.BaseY = o.Y
	return o
}

// Tick moves the obstacle and advances its animation.
func (o *Obstacle) Tick(dt, speed, despawnMargin float64) {
	o.X -= speed * o.SpeedMult

	switch o.Kind {
	case KindCactus, KindRock:
	case KindSnake, KindScorpion:
		o.AnimFrame += dt * 0.01
	case KindQuicksand:
		o.AnimTime += dt * 0.005
	case KindTumbleweed:
		o.Rotation += speed * 0.1
		o.BouncePhase += 0.1
		o.Y = o.BaseY + tumbleweedBounce*math.Sin(o.BouncePhase)
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", o.Kind))
	}

	if o.X+o.Width < -despawnMargin {
		o.Active = false
	}
}

// Hitbox returns the collision box with the kind-specific inset.
func (o Obstacle) Hitbox() core.Box {
	padX, padY := o.Kind.padding()
	return core.NewBox(o.X, o.Y, o.Width, o.Height).Inset(padX, padY)
}

// Bounds returns the full drawn box.
func (o Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}
