package sim

// Player is the mutable runtime state of one side of the fight. All
// operations are total: none of them can error.
type Player struct {
	Side PlayerTarget

	MaxHealth    int32
	CurrentHealth int32

	ShieldStacks uint32
	BurnStacks   uint32
	PoisonStacks uint32
	RegenStacks  int32

	dotCounter GameTicks
}

// NewPlayer constructs a player at full health with the given regen
// stacks and every other stack zeroed.
func NewPlayer(side PlayerTarget, maxHealth int32, regen int32) *Player {
	return &Player{
		Side:          side,
		MaxHealth:     maxHealth,
		CurrentHealth: maxHealth,
		RegenStacks:   regen,
	}
}

// Dead reports current_health <= 0.
func (p *Player) Dead() bool {
	return p.CurrentHealth <= 0
}

// Tick advances the player's per-second dot/regen schedule and burn stack.
// It never emits CombatEvents; it only mutates state.
func (p *Player) Tick() {
	if p.dotCounter%TicksPerSecond == 0 {
		// Burn stacks tick at 2 Hz on a 60 Hz engine: two half-ticks land
		// back-to-back on the once-a-second boundary.
		p.burnTick()
		p.burnTick()
		p.CurrentHealth += p.RegenStacks - int32(p.PoisonStacks)
		if p.CurrentHealth > p.MaxHealth {
			p.CurrentHealth = p.MaxHealth
		}
	}
	p.dotCounter++
}

func (p *Player) burnTick() {
	if p.BurnStacks == 0 {
		return
	}
	var dmg uint32
	if p.ShieldStacks == 0 {
		dmg = p.BurnStacks
	} else {
		dmg = roundU32(float32(p.BurnStacks) * 0.5)
	}
	p.TakeDamage(dmg)
	p.BurnStacks--
}

// TakeDamage absorbs into shield first, then reduces health.
func (p *Player) TakeDamage(n uint32) {
	absorbed := n
	if uint32(p.ShieldStacks) < absorbed {
		absorbed = p.ShieldStacks
	}
	p.ShieldStacks -= absorbed
	remainder := n - absorbed
	p.CurrentHealth -= int32(remainder)
}

// Heal raises current_health up to max_health and cleanses a fraction of
// burn/poison stacks.
func (p *Player) Heal(n uint32) {
	p.CurrentHealth += int32(n)
	if p.CurrentHealth > p.MaxHealth {
		p.CurrentHealth = p.MaxHealth
	}
	cleanse := roundU32(0.05 * float32(n))
	p.BurnStacks = subClampU32(p.BurnStacks, cleanse)
	p.PoisonStacks = subClampU32(p.PoisonStacks, cleanse)
}

// Shield adds shield stacks.
func (p *Player) Shield(n uint32) {
	p.ShieldStacks += n
}

// Burn adds burn stacks (no cap).
func (p *Player) Burn(n uint32) {
	p.BurnStacks += n
}

// Poison adds poison stacks (no cap).
func (p *Player) Poison(n uint32) {
	p.PoisonStacks += n
}

func roundU32(f float32) uint32 {
	if f <= 0 {
		return 0
	}
	return uint32(f + 0.5)
}

func subClampU32(v, n uint32) uint32 {
	if n >= v {
		return 0
	}
	return v - n
}
