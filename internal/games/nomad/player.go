package nomad

import (
	"math"

	"github.com/vovakirdan/desert-nomad/internal/config"
	"github.com/vovakirdan/desert-nomad/internal/core"
)

// JumpKind reports which jump, if any, a Jump call performed.
type JumpKind uint8

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpDouble
	JumpEscape
)

// String returns a human-readable name for the jump kind.
func (k JumpKind) String() string {
	switch k {
	case JumpNone:
		return "none"
	case JumpGround:
		return "ground"
	case JumpDouble:
		return "double"
	case JumpEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// TickResult reports discrete events from one player tick.
type TickResult struct {
	Landed    bool // Touched down this tick
	WalkedOff bool // Ground dropped away under a grounded player
}

// Player is the traveller. Y grows downward; when grounded the feet
// (Y + Height) rest exactly on the ground line.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityX     float64
	VelocityY     float64

	Grounded          bool
	Ducking           bool
	CanDoubleJump     bool
	TimeSinceGrounded float64 // Milliseconds since last grounded
	InHazard          bool
	CoyoteActive      bool
	HazardTime        float64 // Milliseconds spent in the current hazard
	RunFrame          int     // Running animation frame, 0-3

	frameTimer float64
	groundY    float64
	cfg        config.NomadPlayer
	phys       config.NomadPhysics
}

// NewPlayer creates a player standing on the ground at its lane.
func NewPlayer(cfg config.NomadPlayer, phys config.NomadPhysics, groundY float64) *Player {
	return &Player{
		X:        cfg.LaneX,
		Y:        groundY - cfg.Height,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Grounded: true,
		groundY:  groundY,
		cfg:      cfg,
		phys:     phys,
	}
}

// Feet returns the y-coordinate of the bottom edge.
func (p *Player) Feet() float64 {
	return p.Y + p.Height
}

// Jump attempts a jump. A hazard escape takes priority and is never
// scaled by weather; otherwise a ground (or coyote) jump, then a double
// jump, are tried in order.
func (p *Player) Jump(eff Effect) JumpKind {
	switch {
	case p.InHazard:
		p.VelocityY = p.phys.JumpForce * p.phys.EscapeFactor
		p.InHazard = false
		p.Grounded = false
		p.CoyoteActive = false
		return JumpEscape
	case p.Grounded || p.CoyoteActive:
		p.VelocityY = p.phys.JumpForce * eff.JumpMod
		p.Grounded = false
		p.CanDoubleJump = true
		p.CoyoteActive = false
		return JumpGround
	case p.CanDoubleJump:
		p.VelocityY = p.phys.DoubleJumpForce * eff.JumpMod
		p.CanDoubleJump = false
		return JumpDouble
	}
	return JumpNone
}

// Duck enters or leaves the ducking posture and reports whether the
// posture changed. Entering keeps the feet where they are. Leaving snaps
// back onto the ground when grounded and keeps the feet otherwise.
func (p *Player) Duck(active bool) bool {
	if active == p.Ducking {
		return false
	}
	feet := p.Feet()
	p.Ducking = active
	if active {
		p.Height = p.cfg.DuckHeight
	} else {
		p.Height = p.cfg.Height
	}
	if !active && p.Grounded {
		p.Y = p.groundY - p.Height
	} else {
		p.Y = feet - p.Height
	}
	return true
}

// EnterHazard marks the player as stuck in a hazard zone.
func (p *Player) EnterHazard() {
	if !p.InHazard {
		p.HazardTime = 0
	}
	p.InHazard = true
}

// Animate advances the running animation. Frames advance faster at
// higher scroll speeds and hold while airborne or ducking.
func (p *Player) Animate(dt, speed float64) {
	if p.InHazard {
		p.HazardTime += dt
	}
	if !p.Grounded || p.Ducking {
		return
	}
	p.frameTimer += dt * speed
	if p.frameTimer > 100 {
		p.RunFrame = (p.RunFrame + 1) % 4
		p.frameTimer = 0
	}
}

// Tick advances the player by one simulation tick of dt milliseconds.
func (p *Player) Tick(dt float64, eff Effect, groundY float64) TickResult {
	var res TickResult
	p.groundY = groundY

	// Resize can move the ground away from a grounded player
	if p.Grounded && p.Feet() < groundY {
		p.Grounded = false
		res.WalkedOff = true
	}

	if p.Grounded {
		p.Y = groundY - p.Height
		p.VelocityX = 0
		p.X = core.ClampF(core.Lerp(p.X, p.cfg.LaneX, p.cfg.ReturnLerp), p.cfg.DriftMinX, p.cfg.DriftMaxX)
		return res
	}

	p.TimeSinceGrounded += dt
	p.VelocityY = math.Min(p.VelocityY+p.phys.Gravity*eff.GravityMod, p.phys.MaxFallSpeed)
	p.Y += p.VelocityY

	p.VelocityX = eff.WindForce
	p.X = core.ClampF(p.X+p.VelocityX, p.cfg.DriftMinX, p.cfg.DriftMaxX)

	if p.Feet() >= groundY {
		p.Y = groundY - p.Height
		p.VelocityY = 0
		p.VelocityX = 0
		p.Grounded = true
		p.CanDoubleJump = false
		p.TimeSinceGrounded = 0
		p.CoyoteActive = false
		res.Landed = true
		return res
	}

	p.CoyoteActive = p.TimeSinceGrounded <= p.cfg.CoyoteMs &&
		p.VelocityY >= 0 && p.VelocityY <= p.cfg.CoyoteMaxFall
	return res
}

// Hitbox returns the collision box, inset on every side.
func (p *Player) Hitbox() core.Box {
	pad := p.cfg.HitboxPadding
	return core.NewBox(p.X, p.Y, p.Width, p.Height).Inset(pad, pad)
}

// GroundY returns the ground line the player last saw.
func (p *Player) GroundY() float64 {
	return p.groundY
}
