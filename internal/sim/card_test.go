package sim

import "testing"

func newTestCard(id CardId, owner PlayerTarget, cooldownSeconds float32) *Card {
	return &Card{
		ID:              id,
		Owner:           owner,
		Def:             &CardDefinition{},
		Tags:            map[Tag]struct{}{},
		CooldownSeconds: cooldownSeconds,
	}
}

func TestCardTickZeroCooldownNeverFires(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 0)

	for i := 0; i < 200; i++ {
		events := c.Tick()
		if len(events) != 0 {
			t.Fatalf("a card with zero cooldown must never fire, got %v at tick %d", events, i)
		}
	}
}

func TestCardTickFiresAtCooldownBoundary(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1) // 1 second == 60 ticks == threshold 120 half-ticks
	c.CooldownEffects = []Effect{{Kind: EffectDealDamage, Amount: Constant[uint32](3)}}

	// threshold = SecondsToTicks(1)*2 = 120 half-ticks; the counter check
	// runs before this tick's increment is added, so the 61st tick (counter
	// reaching 120 on tick 60, observed on tick 61) is the one that fires.
	var fired int
	for i := 0; i < 61; i++ {
		events := c.Tick()
		fired += len(events)
	}

	if fired != 1 {
		t.Fatalf("expected exactly one cooldown fire after 61 ticks at 1s cooldown, got %d", fired)
	}
}

func TestCardTickSkipsWhileFrozen(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1)
	c.ApplyFreeze(3)

	for i := 0; i < 3; i++ {
		events := c.Tick()
		if len(events) != 1 || events[0].Kind != CombatSkip || events[0].Skip != SkipIsFrozen {
			t.Fatalf("expected a single frozen-skip event at tick %d, got %v", i, events)
		}
	}

	if c.Frozen() {
		t.Error("card should be unfrozen once freeze_ticks reaches zero")
	}
}

func TestApplyFreezeIsNoOpOnRadiant(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1)
	c.Radiant = true

	c.ApplyFreeze(10)

	if c.Frozen() {
		t.Error("Radiant cards must be immune to freeze")
	}
}

func TestApplySlowIsNoOpOnRadiant(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1)
	c.Radiant = true

	c.ApplySlow(10)

	if c.Slowed() {
		t.Error("Radiant cards must be immune to slow")
	}
}

//: haste has no Radiant exemption, unlike freeze/slow.
func TestApplyHasteAppliesToRadiantCards(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1)
	c.Radiant = true

	c.ApplyHaste(10)

	if !c.Hasted() {
		t.Error("haste must apply to Radiant cards too")
	}
}

func TestCardTickSlowHalvesIncrementRate(t *testing.T) {
	normal := newTestCard(1, TargetPlayer, 1)
	slowed := newTestCard(2, TargetPlayer, 1)
	slowed.ApplySlow(1000)

	// Drive both for the same number of ticks and compare fire counts: a
	// slowed card accumulates half-ticks at half the rate (increment 1 vs 2).
	var normalFires, slowedFires int
	for i := 0; i < 120; i++ {
		normalFires += len(normal.Tick())
		slowedFires += len(slowed.Tick())
	}

	if normalFires <= slowedFires {
		t.Errorf("expected slowed card to fire less often: normal=%d slowed=%d", normalFires, slowedFires)
	}
}

func TestCardTickHasteDoublesIncrementRate(t *testing.T) {
	normal := newTestCard(1, TargetPlayer, 1)
	hasted := newTestCard(2, TargetPlayer, 1)
	hasted.ApplyHaste(1000)

	var normalFires, hastedFires int
	for i := 0; i < 60; i++ {
		normalFires += len(normal.Tick())
		hastedFires += len(hasted.Tick())
	}

	if hastedFires <= normalFires {
		t.Errorf("expected hasted card to fire more often: normal=%d hasted=%d", normalFires, hastedFires)
	}
}

func TestOnCooldownReflectsCooldownSeconds(t *testing.T) {
	withCooldown := newTestCard(1, TargetPlayer, 2.5)
	withoutCooldown := newTestCard(2, TargetPlayer, 0)

	if !withCooldown.OnCooldown() {
		t.Error("expected a positive cooldown to report OnCooldown() true")
	}
	if withoutCooldown.OnCooldown() {
		t.Error("expected a zero cooldown to report OnCooldown() false")
	}
}

func TestHasTag(t *testing.T) {
	c := newTestCard(1, TargetPlayer, 1)
	c.Tags[Tag("Weapon")] = struct{}{}

	if !c.HasTag(Tag("Weapon")) {
		t.Error("expected HasTag(\"Weapon\") true")
	}
	if c.HasTag(Tag("Food")) {
		t.Error("expected HasTag(\"Food\") false for an untagged tag")
	}
}
