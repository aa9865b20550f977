package worldpvp

import (
	"math"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/model"
)

// Formula holds XP and money arithmetic of world PvP kills.
type Formula struct {
	rewards config.Rewards
	groups  config.Groups
}

// NewFormula creates a Formula from reward balance and group caps.
func NewFormula(rewards config.Rewards, groups config.Groups) Formula {
	return Formula{rewards: rewards, groups: groups}
}

// ExperienceRange returns the per-level XP bounds [lo, hi]: 950*0.25 → 237, 1000*0.25 → 250.
func (f Formula) ExperienceRange() (lo, hi int) {
	lo = int(f.rewards.XPOffsetMin * f.rewards.XPRatio)
	hi = int(f.rewards.XPOffsetMax * f.rewards.XPRatio)
	return lo, hi
}

// Experience returns attackerLevel * urand(lo, hi).
func (f Formula) Experience(rng Rand, attackerLevel int32) int64 {
	lo, hi := f.ExperienceRange()
	return int64(attackerLevel) * int64(urand(rng, lo, hi))
}

// GroupRatio returns the money share of a group with memberCount members:
//
//	raid:     1 - memberCount/MaxRaidSize  * 0.975
//	non-raid: 1 - memberCount/MaxGroupSize * 0.9
func (f Formula) GroupRatio(memberCount int, raid bool) float64 {
	n := float64(memberCount)
	if raid {
		return 1 - (n/float64(f.groups.MaxRaidSize))*f.rewards.RaidMoneyRatio
	}
	return 1 - (n/float64(f.groups.MaxGroupSize))*f.rewards.GroupMoneyRatio
}

// Money returns the copper reward for killing a victim of victimLevel.
// memberCount == 0 means the attacker is solo. The scaled amount is rounded to
// the nearest copper; a non-positive result grants nothing.
func (f Formula) Money(victimLevel int32, memberCount int, raid bool) int64 {
	base := int64(victimLevel) * f.rewards.MoneyPerLevel
	if memberCount == 0 {
		return base
	}

	money := math.Round(float64(base) * f.GroupRatio(memberCount, raid))
	if money <= 0 {
		return 0
	}
	return int64(money)
}

// CountMembers counts group members in a single pass, always including attacker.
func CountMembers(g *model.Group, attacker *model.Player) int {
	count := 0
	seenAttacker := false
	for _, m := range g.Members() {
		count++
		if m.ObjectID() == attacker.ObjectID() {
			seenAttacker = true
		}
	}
	if !seenAttacker {
		count++
	}
	return count
}
