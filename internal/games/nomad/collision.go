package nomad

// Verdict is the outcome of one collision check.
type Verdict struct {
	Fatal   bool
	Hazard  bool         // The player entered or stayed in a hazard zone
	HitKind ObstacleKind // Valid when Fatal
}

// CheckCollisions tests the player against every active obstacle.
// A grounded player touching a hazard zone is trapped rather than killed
// and scanning continues, so a solid obstacle in the same tick still
// ends the run. Airborne players pass over hazards untouched.
func CheckCollisions(p *Player, obstacles []Obstacle) Verdict {
	var v Verdict
	hitbox := p.Hitbox()

	for i := range obstacles {
		o := &obstacles[i]
		if !o.Active || !hitbox.Overlaps(o.Hitbox()) {
			continue
		}
		if o.Kind.IsHazard() {
			if p.Grounded {
				p.EnterHazard()
				v.Hazard = true
			}
			continue
		}
		v.Fatal = true
		v.HitKind = o.Kind
		return v
	}
	return v
}
