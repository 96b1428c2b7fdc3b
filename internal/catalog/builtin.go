package catalog

import "bazaar-sim/internal/sim"

// Builtin returns the small, fully-compiled set of cards that ships with
// the engine itself rather than a loaded pack — enough to exercise every
// core mechanic end to end (cooldown damage, Radiant immunity, crit) for
// tests and the canonical fixtures without requiring a TOML file on disk.
func Builtin() *Catalog {
	return New(fang(), fangRadiant())
}

// fang is the canonical bronze dagger fixture: a Small weapon that deals
// 3 damage on a 1.5s cooldown with a 20% crit chance.
func fang() *sim.CardDefinition {
	dealDamage := sim.Tooltip{
		Kind: sim.TooltipWhen,
		When: sim.EffectEvent{
			Kind: sim.EventOnCooldown,
			Effect: sim.Effect{
				Kind:         sim.EffectDealDamage,
				PlayerTarget: sim.TargetOpponent,
				Amount:       sim.Constant[uint32](3),
			},
		},
	}
	cooldown := sim.Tooltip{
		Kind:     sim.TooltipStaticModifier,
		Modifier: sim.Modifier{Kind: sim.ModCooldown, Value: 1.5},
	}
	crit := sim.Tooltip{
		Kind:     sim.TooltipStaticModifier,
		Modifier: sim.Modifier{Kind: sim.ModCritChance, Value: 0.2},
	}

	return &sim.CardDefinition{
		ID:   "fang",
		Name: "Fang",
		Size: sim.SizeSmall,
		Tags: map[sim.Tag]struct{}{"Weapon": {}},
		Tiers: map[sim.Tier][]sim.Tooltip{
			sim.TierBronze: {cooldown, crit, dealDamage},
		},
		StartingTier: sim.TierBronze,
	}
}

// fangRadiant is Fang with a Radiant enchantment baked into the
// definition, used by the freeze-immunity fixture when a
// template wants the enchantment without an explicit modification entry.
func fangRadiant() *sim.CardDefinition {
	base := fang()
	radiant := sim.Tooltip{
		Kind:     sim.TooltipStaticModifier,
		Modifier: sim.Modifier{Kind: sim.ModRadiant},
	}
	return &sim.CardDefinition{
		ID:   "fang-radiant",
		Name: "Radiant Fang",
		Size: base.Size,
		Tags: base.Tags,
		Tiers: map[sim.Tier][]sim.Tooltip{
			sim.TierBronze: append(append([]sim.Tooltip{}, base.Tiers[sim.TierBronze]...), radiant),
		},
		Enchantments: []sim.Enchantment{{Kind: sim.EnchantRadiant, Tooltips: []sim.Tooltip{radiant}}},
		StartingTier: sim.TierBronze,
	}
}
