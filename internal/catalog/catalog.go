// Package catalog is the read-only name -> CardDefinition lookup the
// simulation builder consults at template-build time. It owns no simulation
// state and is never mutated by a run.
package catalog

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"bazaar-sim/internal/sim"
)

// Catalog is an immutable, name-keyed set of card definitions. The zero
// value is not usable; construct one with New or Load.
type Catalog struct {
	defs map[string]*sim.CardDefinition
}

// New builds a catalog from an explicit set of definitions, keyed by
// their Name field. Later entries with the same name overwrite earlier
// ones, mirroring a plain map literal.
func New(defs ...*sim.CardDefinition) *Catalog {
	c := &Catalog{defs: make(map[string]*sim.CardDefinition, len(defs))}
	for _, d := range defs {
		c.defs[d.Name] = d
	}
	return c
}

// Get returns the definition for an exact display name.
func (c *Catalog) Get(name string) (*sim.CardDefinition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names returns every known card name in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.defs))
	for n := range c.defs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// cardPack is the on-disk TOML shape a card pack file decodes into.
type cardPack struct {
	Cards []cardEntry `toml:"cards"`
}

type cardEntry struct {
	ID           string              `toml:"id"`
	Name         string              `toml:"name"`
	Size         string              `toml:"size"`
	Tags         []string            `toml:"tags"`
	StartingTier string              `toml:"starting_tier"`
	Tiers        map[string][]string `toml:"tiers"`
}

// Load reads a TOML card pack from path and merges it into the builtin
// catalog. Unknown keys are rejected, matching the simulation template's
// own decode strictness.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var pack cardPack
	if err := dec.Decode(&pack); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}

	c := Builtin()
	for _, entry := range pack.Cards {
		def, err := entry.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", path, err)
		}
		c.defs[def.Name] = def
	}
	return c, nil
}

func (e cardEntry) toDefinition() (*sim.CardDefinition, error) {
	size, err := parseSize(e.Size)
	if err != nil {
		return nil, err
	}

	startingTier, ok := sim.ParseTier(e.StartingTier)
	if !ok {
		return nil, fmt.Errorf("card %q: unknown starting_tier %q", e.Name, e.StartingTier)
	}

	tags := make(map[sim.Tag]struct{}, len(e.Tags))
	for _, t := range e.Tags {
		tags[sim.Tag(t)] = struct{}{}
	}

	// Raw tooltip text decodes to sim.Tooltip via the tooltip parser
	// collaborator; the catalog itself only shuttles the raw strings
	// through as Raw tooltips so a pack can be loaded even before a tier's
	// text has been compiled.
	tiers := make(map[sim.Tier][]sim.Tooltip, len(e.Tiers))
	for tierName, lines := range e.Tiers {
		tier, ok := sim.ParseTier(tierName)
		if !ok {
			return nil, fmt.Errorf("card %q: unknown tier %q", e.Name, tierName)
		}
		tips := make([]sim.Tooltip, 0, len(lines))
		for _, line := range lines {
			tips = append(tips, sim.Tooltip{Kind: sim.TooltipRaw, Raw: line})
		}
		tiers[tier] = tips
	}

	return &sim.CardDefinition{
		ID:           e.ID,
		Name:         e.Name,
		Size:         size,
		Tags:         tags,
		Tiers:        tiers,
		StartingTier: startingTier,
	}, nil
}

func parseSize(s string) (sim.Size, error) {
	switch s {
	case "Small":
		return sim.SizeSmall, nil
	case "Medium":
		return sim.SizeMedium, nil
	case "Large":
		return sim.SizeLarge, nil
	default:
		return 0, fmt.Errorf("unknown size %q", s)
	}
}
