package sim

import "math/rand"

// Simulation is one fully-built, runnable fight. It is
// strictly single-threaded and cooperative: no concurrency is observable
// inside Run. A Simulation may be cloned and re-run with a different
// seed without affecting the original.
type Simulation struct {
	Board *Board

	rng   *rand.Rand
	seed  uint64
	sink  *dispatchSink
	warns []string
}

// NewSimulation wires a prebuilt board to a deterministic RNG seed and an
// optional dispatch sink (0 capacity disables it).
func NewSimulation(board *Board, seed uint64, dispatchCapacity int) *Simulation {
	return &Simulation{
		Board: board,
		rng:   rand.New(rand.NewSource(int64(seed))),
		seed:  seed,
		sink:  newDispatchSink(dispatchCapacity),
	}
}

// Clone produces an independent copy of the simulation's board state,
// suitable for running under a different seed without disturbing the
// original.
func (s *Simulation) Clone(seed uint64, dispatchCapacity int) *Simulation {
	clonedPlayer := *s.Board.Player
	clonedOpponent := *s.Board.Opponent
	board := NewBoard(&clonedPlayer, &clonedOpponent)
	for _, c := range s.Board.Cards {
		cc := *c
		board.AddCard(&cc)
	}
	return NewSimulation(board, seed, dispatchCapacity)
}

// DrainDispatch returns up to maxItems queued dispatch events without
// waiting for the run to finish, letting a caller (the HTTP/WebSocket
// control surface) narrate a run live instead of only seeing its
// final SimulationResult.Events. Safe to call from one consumer goroutine
// while Run executes concurrently on another, per the sink's single-reader
// contract.
func (s *Simulation) DrainDispatch(maxItems int) []DispatchableEvent {
	return s.sink.Drain(maxItems)
}

// DispatchDropped reports how many dispatch events this simulation has
// discarded to backpressure so far.
func (s *Simulation) DispatchDropped() uint64 {
	return s.sink.Dropped()
}

// Run executes the fixed tick loop to completion or MaxFightTicks,
// whichever comes first, and returns the terminal SimulationResult. It is
// the sole entry point a worker calls per run.
func (s *Simulation) Run() *SimulationResult {
	var tick GameTicks
	for ; tick < MaxFightTicks; tick++ {
		if result := s.checkExit(tick); result != nil {
			return result
		}

		var events []CombatEvent

		s.Board.Player.Tick()
		s.Board.Opponent.Tick()

		for _, c := range s.Board.Cards {
			for _, ev := range c.Tick() {
				events = append(events, ev)
			}
		}

		s.sink.push(DispatchableEvent{Kind: DispatchTick, Tick: tick})

		for _, ev := range events {
			s.applyEvent(tick, ev)
		}
	}

	return s.finish(OutcomeDraw, DrawTimeout, tick)
}

// checkExit implements the exit-condition priority: simultaneous
// defeat outranks either single-sided defeat.
func (s *Simulation) checkExit(tick GameTicks) *SimulationResult {
	playerDead := s.Board.Player.Dead()
	opponentDead := s.Board.Opponent.Dead()

	switch {
	case playerDead && opponentDead:
		return s.finish(OutcomeDraw, DrawSimultaneousDefeat, tick)
	case opponentDead:
		return s.finish(OutcomeVictory, DrawNone, tick)
	case playerDead:
		return s.finish(OutcomeDefeat, DrawNone, tick)
	default:
		return nil
	}
}

func (s *Simulation) finish(outcome Outcome, draw DrawType, tick GameTicks) *SimulationResult {
	return &SimulationResult{
		Outcome:       outcome,
		DrawType:      draw,
		Duration:      tick,
		FinalPlayer:   snapshotPlayer(s.Board.Player),
		FinalOpponent: snapshotPlayer(s.Board.Opponent),
		Events:        s.sink.DrainAll(),
		Warnings:      s.warns,
	}
}

// applyEvent reduces one CombatEvent against the mutable board.
// Failures never abort the run: unknown source ids and unresolved derived
// values are logged as warnings and the event is dropped.
func (s *Simulation) applyEvent(tick GameTicks, ev CombatEvent) {
	source := s.Board.CardByID(ev.Source)
	if source == nil && ev.Kind != CombatSkip && ev.Kind != CombatRaw {
		s.warn("unknown source card %d at tick %d", ev.Source, tick)
		return
	}
	if IsFromPlayerDerived(ev.Amount) {
		s.warn("FromPlayer derived value from card %d resolved to 0 at tick %d", ev.Source, tick)
	}

	switch ev.Kind {
	case CombatDealDamage:
		s.applyDealDamage(tick, source, ev)
	case CombatBurn:
		s.mappedPlayer(source, ev.Owner, ev.PlayerTarget).Burn(ResolveDerivedU32(s.Board, source, ev.Amount))
	case CombatPoison:
		s.mappedPlayer(source, ev.Owner, ev.PlayerTarget).Poison(ResolveDerivedU32(s.Board, source, ev.Amount))
	case CombatShield:
		s.mappedPlayer(source, ev.Owner, ev.PlayerTarget).Shield(ResolveDerivedU32(s.Board, source, ev.Amount))
	case CombatHeal:
		s.mappedPlayer(source, ev.Owner, ev.PlayerTarget).Heal(ResolveDerivedU32(s.Board, source, ev.Amount))
	case CombatRegen:
		amt := ResolveDerivedU32(s.Board, source, ev.Amount)
		p := s.mappedPlayer(source, ev.Owner, ev.PlayerTarget)
		p.RegenStacks += int32(amt)
	case CombatFreeze:
		s.applyCrowdControl(tick, source, ev, true, true, DispatchCardFrozen, (*Card).ApplyFreeze)
	case CombatSlow:
		s.applyCrowdControl(tick, source, ev, true, true, DispatchCardSlowed, (*Card).ApplySlow)
	case CombatHaste:
		s.applyCrowdControl(tick, source, ev, false, false, DispatchCardHasted, (*Card).ApplyHaste)
	case CombatSkip:
		s.sink.push(DispatchableEvent{Kind: DispatchCardSkipped, Tick: tick, Source: ev.Source})
	case CombatRaw:
		s.warn("raw effect %q dropped at tick %d", ev.Raw, tick)
	}
}

// mappedPlayer implements the owner/target mapping rule: if
// owner == target the event hits the source's own player, else the enemy.
func (s *Simulation) mappedPlayer(source *Card, owner, target PlayerTarget) *Player {
	var side PlayerTarget
	if owner == target {
		side = owner
	} else {
		side = owner.Inverse()
	}
	return s.Board.PlayerByTarget(side)
}

func (s *Simulation) applyDealDamage(tick GameTicks, source *Card, ev CombatEvent) {
	amount := ResolveDerivedU32(s.Board, source, ev.Amount)

	crit := false
	if source != nil && s.rng.Float64() < source.critChance() {
		crit = true
		amount *= 2
	}

	target := s.mappedPlayer(source, ev.Owner, ev.PlayerTarget)
	target.TakeDamage(amount)

	s.sink.push(DispatchableEvent{
		Kind:   DispatchDamageDealt,
		Tick:   tick,
		Source: ev.Source,
		Player: ev.PlayerTarget,
		Amount: amount,
		Crit:   crit,
	})
}

// applyCrowdControl resolves a Freeze/Slow/Haste CombatEvent: eligibility
// filtering, selection, and per-card mutation.
func (s *Simulation) applyCrowdControl(tick GameTicks, source *Card, ev CombatEvent, dropRadiant, requireCooldown bool, kind DispatchEventKind, apply func(*Card, GameTicks)) {
	candidates := s.Board.ResolveTargets(source, ev.CardTarget.Predicate)
	candidates = FilterEligible(candidates, dropRadiant, requireCooldown)

	status := statusNone
	switch kind {
	case DispatchCardFrozen:
		status = statusFrozen
	case DispatchCardSlowed:
		status = statusSlowed
	}

	selected := SelectN(candidates, ev.CardTarget.Count, status, s.rng)
	for _, c := range selected {
		apply(c, ev.Duration)
		s.sink.push(DispatchableEvent{
			Kind:   kind,
			Tick:   tick,
			Source: ev.Source,
			Target: c.ID,
			Amount: uint32(ev.Duration),
		})
	}
}

func (s *Simulation) warn(format string, args ...any) {
	w := newRuntimeWarning(format, args...)
	s.warns = append(s.warns, w.Error())
	s.sink.push(DispatchableEvent{Kind: DispatchWarning, Message: w.Error()})
}
