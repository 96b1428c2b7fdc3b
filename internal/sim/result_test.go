package sim

import "testing"

func TestSummarizeAggregatesOutcomesAndAverages(t *testing.T) {
	results := []*SimulationResult{
		{Outcome: OutcomeVictory, Duration: 100, FinalPlayer: PlayerSnapshot{CurrentHealth: 10}, FinalOpponent: PlayerSnapshot{CurrentHealth: 0}},
		{Outcome: OutcomeDefeat, Duration: 200, FinalPlayer: PlayerSnapshot{CurrentHealth: 0}, FinalOpponent: PlayerSnapshot{CurrentHealth: 5}},
		{Outcome: OutcomeDraw, DrawType: DrawTimeout, Duration: MaxFightTicks, FinalPlayer: PlayerSnapshot{CurrentHealth: 3}, FinalOpponent: PlayerSnapshot{CurrentHealth: 3}},
		{Outcome: OutcomeDraw, DrawType: DrawSimultaneousDefeat, Duration: 50, FinalPlayer: PlayerSnapshot{CurrentHealth: 0}, FinalOpponent: PlayerSnapshot{CurrentHealth: 0}},
	}

	s := Summarize(results)

	if s.TotalRuns != 4 {
		t.Fatalf("expected TotalRuns 4, got %d", s.TotalRuns)
	}
	if s.Victories != 1 || s.Defeats != 1 || s.DrawTimeout != 1 || s.DrawSimultaneous != 1 {
		t.Fatalf("expected one of each outcome, got %+v", s)
	}

	wantDuration := float64(100+200+int(MaxFightTicks)+50) / 4
	if s.AvgDuration != wantDuration {
		t.Errorf("expected AvgDuration %v, got %v", wantDuration, s.AvgDuration)
	}

	wantPlayerHP := float64(10+0+3+0) / 4
	if s.AvgPlayerHP != wantPlayerHP {
		t.Errorf("expected AvgPlayerHP %v, got %v", wantPlayerHP, s.AvgPlayerHP)
	}
}

func TestSummarizeEmptyResultsIsZeroValue(t *testing.T) {
	s := Summarize(nil)

	if s.TotalRuns != 0 || s.AvgDuration != 0 || s.AvgPlayerHP != 0 || s.AvgOpponentHP != 0 {
		t.Fatalf("expected a zero-value Summary for no results, got %+v", s)
	}
}

func TestOutcomeAndDrawTypeStrings(t *testing.T) {
	if OutcomeVictory.String() != "Victory" {
		t.Errorf("expected Victory, got %s", OutcomeVictory.String())
	}
	if OutcomeDraw.String() != "Draw" {
		t.Errorf("expected Draw, got %s", OutcomeDraw.String())
	}
	if DrawTimeout.String() != "Timeout" {
		t.Errorf("expected Timeout, got %s", DrawTimeout.String())
	}
	if DrawNone.String() != "None" {
		t.Errorf("expected None, got %s", DrawNone.String())
	}
}

func TestSnapshotPlayerCopiesAllStacks(t *testing.T) {
	p := NewPlayer(TargetPlayer, 50, 3)
	p.Shield(4)
	p.Burn(2)
	p.Poison(1)

	snap := snapshotPlayer(p)

	if snap.MaxHealth != 50 || snap.CurrentHealth != 50 || snap.ShieldStacks != 4 || snap.BurnStacks != 2 || snap.PoisonStacks != 1 || snap.RegenStacks != 3 {
		t.Fatalf("expected snapshot to mirror all player stacks, got %+v", snap)
	}
}
