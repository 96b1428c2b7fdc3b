// =============================================================================
// BAZAAR-SIM - SIMULATE
// =============================================================================
// Standalone batch-run CLI: loads a SimulationTemplate from a TOML file,
// runs it n times in parallel, and prints the aggregate Summary.
//
// USAGE:
//   go run ./cmd/simulate -template matchup.toml -n 1000
// =============================================================================
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"

	"bazaar-sim/internal/catalog"
	"bazaar-sim/internal/sim"
)

func main() {
	templatePath := flag.String("template", "", "path to a SimulationTemplate TOML file (required)")
	iterations := flag.Int("n", 1, "number of independent runs")
	seed := flag.Uint64("seed", 0, "batch seed used to derive distinct per-run seeds")
	workers := flag.Int("workers", 4, "worker goroutines")
	packPath := flag.String("catalog", "", "optional TOML card pack to merge into the builtin catalog")
	flag.Parse()

	if *templatePath == "" {
		fmt.Fprintln(os.Stderr, "usage: simulate -template <path> [-n iterations] [-seed uint64]")
		os.Exit(2)
	}

	cards := catalog.Builtin()
	if *packPath != "" {
		loaded, err := catalog.Load(*packPath)
		if err != nil {
			log.Fatalf("load card pack: %v", err)
		}
		cards = loaded
	}

	raw, err := os.ReadFile(*templatePath)
	if err != nil {
		log.Fatalf("read template: %v", err)
	}

	var tmpl sim.SimulationTemplate
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmpl); err != nil {
		log.Fatalf("decode template: %v", err)
	}

	summary, err := sim.RunBatchSummary(tmpl, cards, *iterations, *seed, *workers)
	if err != nil {
		log.Fatalf("build simulation: %v", err)
	}

	printSummary(summary)
}

func printSummary(s sim.Summary) {
	fmt.Printf("Total runs:         %d\n", s.TotalRuns)
	fmt.Printf("Victories:          %d\n", s.Victories)
	fmt.Printf("Defeats:            %d\n", s.Defeats)
	fmt.Printf("Draw (timeout):     %d\n", s.DrawTimeout)
	fmt.Printf("Draw (simultaneous):%d\n", s.DrawSimultaneous)
	fmt.Printf("Avg duration ticks: %.1f\n", s.AvgDuration)
	fmt.Printf("Avg player HP:      %.1f\n", s.AvgPlayerHP)
	fmt.Printf("Avg opponent HP:    %.1f\n", s.AvgOpponentHP)
}
