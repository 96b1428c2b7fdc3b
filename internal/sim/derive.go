package sim

// maxDerivedRecursion bounds FromCard(Damage) recursion into nested
// FromCard sub-queries.
const maxDerivedRecursion = 4

// ResolveDerivedU32 evaluates a Derived[uint32] against the board relative
// to the given source card. Values resolve to f32 intermediately
// and round to the destination type on use.
func ResolveDerivedU32(board *Board, source *Card, d Derived[uint32]) uint32 {
	return roundU32(resolveDerivedF32(board, source, d.Kind, d.ConstantValue, d.Target, d.CardProperty, d.PlayerProperty, d.Multiplier, 0))
}

func resolveDerivedF32(board *Board, source *Card, kind DerivedKind, constant uint32, target CardTarget, cardProp CardProperty, playerProp PlayerProperty, multiplier float32, depth int) float32 {
	switch kind {
	case DerivedConstant:
		return float32(constant)
	case DerivedFromCard:
		candidates := board.ResolveTargets(source, target.Predicate)
		candidates = SelectN(candidates, target.Count, statusNone, nil)
		var sum float32
		for _, c := range candidates {
			sum += cardPropertyValue(board, c, cardProp, depth)
		}
		return sum * multiplier
	case DerivedFromPlayer:
		// Not required for the minimum core: degrades to 0 with a
		// RuntimeWarning raised by Simulation.applyEvent, which checks
		// IsFromPlayerDerived.
		return 0
	default:
		return 0
	}
}

func cardPropertyValue(board *Board, c *Card, prop CardProperty, depth int) float32 {
	switch prop {
	case PropValue:
		if c.Def == nil {
			return 0
		}
		return c.Tier.CostScale() * c.Def.Size.BaseCost()
	case PropDamage:
		if depth >= maxDerivedRecursion {
			return 0
		}
		var total float32
		for _, eff := range c.CooldownEffects {
			total += damageFromEffect(board, c, eff, depth+1)
		}
		return total
	default:
		return 0
	}
}

func damageFromEffect(board *Board, c *Card, eff Effect, depth int) float32 {
	if eff.Kind != EffectDealDamage {
		if eff.Kind == EffectMultiEffect {
			var total float32
			for _, nested := range eff.Nested {
				total += damageFromEffect(board, c, nested, depth)
			}
			return total
		}
		return 0
	}
	return resolveDerivedF32(board, c, eff.Amount.Kind, eff.Amount.ConstantValue, eff.Amount.Target, eff.Amount.CardProperty, eff.Amount.PlayerProperty, eff.Amount.Multiplier, depth)
}

// IsFromPlayerDerived reports whether resolving d would hit the
// unimplemented FromPlayer path, so callers can raise a RuntimeWarning
// without duplicating the switch.
func IsFromPlayerDerived[T any](d Derived[T]) bool {
	return d.Kind == DerivedFromPlayer
}
