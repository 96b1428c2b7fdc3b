package sim

import "testing"

func TestRunBatchReturnsOneResultPerRunInOrder(t *testing.T) {
	tmpl, catalog := fangVsFangTemplate()

	results, err := RunBatch(tmpl, catalog, 20, 1, 4)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("expected 20 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
	}
}

func TestRunBatchPropagatesBuildErrors(t *testing.T) {
	tmpl := SimulationTemplate{
		Player: PlayerTemplate{Health: 20, Cards: []CardTemplate{{Name: "Nonexistent", Tier: "Bronze"}}},
	}

	_, err := RunBatch(tmpl, fakeCatalog{}, 10, 1, 4)

	if err == nil || !IsBuildError(err) {
		t.Fatalf("expected a BuildError from an invalid template, got %v", err)
	}
}

func TestRunBatchWithFixedSeedIsFullyReproducible(t *testing.T) {
	tmpl, catalog := fangVsFangTemplate()
	seed := uint64(0xC0FFEE)
	tmpl.Seed = &seed

	results, err := RunBatch(tmpl, catalog, 5, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := results[0]
	for i, r := range results[1:] {
		if r.Outcome != first.Outcome || r.Duration != first.Duration {
			t.Errorf("run %d diverged from run 0 despite a shared fixed seed: %+v vs %+v", i+1, r, first)
		}
	}
}

func TestRunSeedIsDeterministicPerIndex(t *testing.T) {
	tmpl := SimulationTemplate{}

	a := runSeed(tmpl, 42, 3)
	b := runSeed(tmpl, 42, 3)
	c := runSeed(tmpl, 42, 4)

	if a != b {
		t.Error("expected runSeed to be a pure function of (batchSeed, index)")
	}
	if a == c {
		t.Error("expected different run indices to derive different seeds")
	}
}

func TestRunBatchSummaryReducesResults(t *testing.T) {
	tmpl, catalog := fangVsFangTemplate()

	summary, err := RunBatchSummary(tmpl, catalog, 10, 5, 2)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalRuns != 10 {
		t.Fatalf("expected TotalRuns 10, got %d", summary.TotalRuns)
	}
	if summary.Victories+summary.Defeats+summary.DrawTimeout+summary.DrawSimultaneous != 10 {
		t.Errorf("expected outcome counts to sum to TotalRuns, got %+v", summary)
	}
}
