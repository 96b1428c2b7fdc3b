package sim

import "testing"

func TestResolveDerivedU32Constant(t *testing.T) {
	b, _, _ := newTestBoard()
	got := ResolveDerivedU32(b, nil, Constant[uint32](7))

	if got != 7 {
		t.Errorf("expected constant derived value 7, got %d", got)
	}
}

func TestResolveDerivedU32FromCardValue(t *testing.T) {
	b, _, _ := newTestBoard()
	def := &CardDefinition{Size: SizeMedium}
	source := boardCard(1, TargetPlayer, 0, nil)
	target := boardCard(2, TargetPlayer, 1, def)
	target.Tier = TierSilver
	b.AddCard(source)
	b.AddCard(target)

	d := FromCard[uint32](CardTarget{Count: AllTargets, Predicate: IsSelf()}, PropValue, 1)
	// IsSelf() is relative to the resolver's source arg, so resolve
	// relative to target itself to select it.
	got := ResolveDerivedU32(b, target, d)

	// Silver (x2) * Medium base cost (20) = 40.
	if got != 40 {
		t.Errorf("expected Value 40 (tier x2 * base 20), got %d", got)
	}
}

func TestResolveDerivedU32FromCardSumsMultipleTargets(t *testing.T) {
	b, _, _ := newTestBoard()
	source := boardCard(1, TargetPlayer, 0, nil)
	a := boardCard(2, TargetPlayer, 1, &CardDefinition{Size: SizeSmall})
	bcard := boardCard(3, TargetPlayer, 2, &CardDefinition{Size: SizeSmall})
	b.AddCard(source)
	b.AddCard(a)
	b.AddCard(bcard)

	d := FromCard[uint32](CardTarget{Count: AllTargets, Predicate: HasOwner(TargetPlayer)}, PropValue, 1)
	got := ResolveDerivedU32(b, source, d)

	// source (base cost 0, nil Def) + a (10) + bcard (10) = 20.
	if got != 20 {
		t.Errorf("expected summed Value 20 across matching cards, got %d", got)
	}
}

func TestResolveDerivedU32FromCardAppliesMultiplier(t *testing.T) {
	b, _, _ := newTestBoard()
	source := boardCard(1, TargetPlayer, 0, &CardDefinition{Size: SizeSmall})
	b.AddCard(source)

	d := FromCard[uint32](CardTarget{Count: AllTargets, Predicate: IsSelf()}, PropValue, 2)
	got := ResolveDerivedU32(b, source, d)

	if got != 20 {
		t.Errorf("expected Value 10 * multiplier 2 = 20, got %d", got)
	}
}

func TestResolveDerivedU32FromPlayerDegradesToZero(t *testing.T) {
	b, _, _ := newTestBoard()
	source := boardCard(1, TargetPlayer, 0, nil)
	b.AddCard(source)

	d := FromPlayer[uint32](CardTarget{Count: AllTargets, Predicate: Always()}, PropCurrentHealth, 1)
	got := ResolveDerivedU32(b, source, d)

	if got != 0 {
		t.Errorf("FromPlayer is unimplemented and must degrade to 0, got %d", got)
	}
	if !IsFromPlayerDerived(d) {
		t.Error("IsFromPlayerDerived must report true for a FromPlayer derived value")
	}
}

func TestIsFromPlayerDerivedFalseForOtherKinds(t *testing.T) {
	if IsFromPlayerDerived(Constant[uint32](1)) {
		t.Error("IsFromPlayerDerived must be false for DerivedConstant")
	}
	if IsFromPlayerDerived(FromCard[uint32](CardTarget{}, PropValue, 1)) {
		t.Error("IsFromPlayerDerived must be false for DerivedFromCard")
	}
}

func TestResolveDerivedU32FromCardDamageRecursesThroughCooldownEffects(t *testing.T) {
	b, _, _ := newTestBoard()
	weapon := boardCard(1, TargetPlayer, 0, &CardDefinition{Size: SizeSmall})
	weapon.CooldownEffects = []Effect{
		{Kind: EffectDealDamage, Amount: Constant[uint32](5)},
	}
	b.AddCard(weapon)

	d := FromCard[uint32](CardTarget{Count: AllTargets, Predicate: IsSelf()}, PropDamage, 1)
	got := ResolveDerivedU32(b, weapon, d)

	if got != 5 {
		t.Errorf("expected Damage derived from a single 5-damage cooldown effect, got %d", got)
	}
}
