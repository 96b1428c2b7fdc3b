package sim

// CombatEventKind discriminates the lowered, ready-to-apply events that
// flow through the per-tick emit/apply buffer.
type CombatEventKind uint8

const (
	CombatDealDamage CombatEventKind = iota
	CombatBurn
	CombatPoison
	CombatShield
	CombatHeal
	CombatRegen
	CombatFreeze
	CombatSlow
	CombatHaste
	CombatSkip
	CombatRaw
)

// SkipReason explains why a card did nothing on a tick.
type SkipReason uint8

const (
	SkipIsFrozen SkipReason = iota
)

// CombatEvent is one lowered effect, tagged with the emitting card so the
// apply phase can resolve "owner" for the player-target mapping rule
// and so Derived values can look up the source card. Only fields relevant
// to Kind are populated.
type CombatEvent struct {
	Kind   CombatEventKind
	Source CardId
	Owner  PlayerTarget

	PlayerTarget PlayerTarget    // DealDamage/Burn/Poison/Shield/Heal/Regen
	Amount       Derived[uint32] // DealDamage/Burn/Poison/Shield/Heal/Regen

	CardTarget CardTarget // Freeze/Slow/Haste
	Duration   GameTicks  // Freeze/Slow/Haste

	Skip SkipReason // CombatSkip
	Raw  string     // CombatRaw
}

// lowerEffect converts a compiled Effect into zero or more CombatEvents
// carrying the source card id. Durations arrive already converted
// to GameTicks by the template builder.
func lowerEffect(source CardId, owner PlayerTarget, eff Effect) []CombatEvent {
	base := CombatEvent{Source: source, Owner: owner}

	switch eff.Kind {
	case EffectDealDamage:
		e := base
		e.Kind = CombatDealDamage
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectBurn:
		e := base
		e.Kind = CombatBurn
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectPoison:
		e := base
		e.Kind = CombatPoison
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectHeal:
		e := base
		e.Kind = CombatHeal
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectShield:
		e := base
		e.Kind = CombatShield
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectRegen:
		e := base
		e.Kind = CombatRegen
		e.PlayerTarget = eff.PlayerTarget
		e.Amount = eff.Amount
		return []CombatEvent{e}
	case EffectFreeze:
		e := base
		e.Kind = CombatFreeze
		e.CardTarget = eff.CardTarget
		e.Duration = eff.Duration
		return []CombatEvent{e}
	case EffectSlow:
		e := base
		e.Kind = CombatSlow
		e.CardTarget = eff.CardTarget
		e.Duration = eff.Duration
		return []CombatEvent{e}
	case EffectHaste:
		e := base
		e.Kind = CombatHaste
		e.CardTarget = eff.CardTarget
		e.Duration = eff.Duration
		return []CombatEvent{e}
	case EffectMultiEffect:
		var out []CombatEvent
		for _, nested := range eff.Nested {
			out = append(out, lowerEffect(source, owner, nested)...)
		}
		return out
	default:
		e := base
		e.Kind = CombatRaw
		e.Raw = eff.Raw
		return []CombatEvent{e}
	}
}
