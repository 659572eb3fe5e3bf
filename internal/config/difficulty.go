package config

import (
	"math"
	"sort"
)

// DifficultyModel maps a score to a tier. It is a pure step function:
// the same score always yields the same tier.
type DifficultyModel struct {
	tiers []Tier
}

// NewDifficultyModel creates a model from tiers in any order.
// An empty list yields a single Calm tier at multiplier 1.
func NewDifficultyModel(tiers []Tier) *DifficultyModel {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	if len(sorted) == 0 {
		sorted = []Tier{{Score: 0, SpeedMult: 1.0, Label: "Calm"}}
	}
	return &DifficultyModel{tiers: sorted}
}

// Tiers returns a copy of the tiers in ascending threshold order.
func (d *DifficultyModel) Tiers() []Tier {
	out := make([]Tier, len(d.tiers))
	copy(out, d.tiers)
	return out
}

// TierFor returns the last tier whose threshold is at or below score.
// Scores below the first threshold get the first tier.
func (d *DifficultyModel) TierFor(score float64) Tier {
	current := d.tiers[0]
	for _, t := range d.tiers[1:] {
		if float64(t.Score) > score {
			break
		}
		current = t
	}
	return current
}

// TargetSpeed returns the scroll speed the tier for score aims for.
func (d *DifficultyModel) TargetSpeed(baseSpeed, score float64) float64 {
	return baseSpeed * d.TierFor(score).SpeedMult
}

// GapReduction returns how much a tier tightens obstacle gaps.
func GapReduction(t Tier, perMult float64) float64 {
	return math.Max(0, (t.SpeedMult-1)*perMult)
}
