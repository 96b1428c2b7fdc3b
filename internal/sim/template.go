package sim

import (
	"strings"

	"github.com/pkg/errors"
)

// CardModification is one entry of a CardTemplate's modifications list.
// Exactly one field is set per entry; TOML decodes
// whichever key is present.
type CardModification struct {
	Enchanted string  `toml:"Enchanted"`
	Value     float32 `toml:"Value"`
}

// CardTemplate describes one card slot in a PlayerTemplate.
type CardTemplate struct {
	Name          string             `toml:"name"`
	Tier          string             `toml:"tier"`
	Modifications []CardModification `toml:"modifications"`
}

// PlayerTemplate describes one side of the fight before it is built.
type PlayerTemplate struct {
	Health int32          `toml:"health"`
	Regen  int32          `toml:"regen"`
	Cards  []CardTemplate `toml:"cards"`
	Skills []CardTemplate `toml:"skills"`
}

// SimulationTemplate is the TOML-decoded, caller-facing description of a
// fight to build. Seed is a pointer so "not set" is
// distinguishable from "seed 0".
type SimulationTemplate struct {
	Seed     *uint64        `toml:"seed"`
	Player   PlayerTemplate `toml:"player"`
	Opponent PlayerTemplate `toml:"opponent"`
}

// Invert swaps player and opponent, used by the round-trip property
// ("SimulationTemplate::invert(t)" should yield the dual outcome).
func (t SimulationTemplate) Invert() SimulationTemplate {
	return SimulationTemplate{
		Seed:     t.Seed,
		Player:   t.Opponent,
		Opponent: t.Player,
	}
}

// Catalog is the read-only collaborator the builder looks up card
// definitions from (internal/catalog implements this).
type Catalog interface {
	Get(name string) (*CardDefinition, bool)
}

// Build constructs a runnable Simulation from a template. It
// returns a *BuildError (via the error interface) on any of the fatal
// conditions in: unknown card name, missing tier tooltips, or board
// overflow.
func Build(tmpl SimulationTemplate, catalog Catalog) (*Simulation, error) {
	player := NewPlayer(TargetPlayer, tmpl.Player.Health, tmpl.Player.Regen)
	opponent := NewPlayer(TargetOpponent, tmpl.Opponent.Health, tmpl.Opponent.Regen)
	board := NewBoard(player, opponent)

	if err := buildSide(board, TargetPlayer, tmpl.Player, catalog); err != nil {
		return nil, err
	}
	if err := buildSide(board, TargetOpponent, tmpl.Opponent, catalog); err != nil {
		return nil, err
	}

	seed := uint64(0)
	if tmpl.Seed != nil {
		seed = *tmpl.Seed
	}
	return NewSimulation(board, seed, 0), nil
}

func buildSide(board *Board, owner PlayerTarget, pt PlayerTemplate, catalog Catalog) error {
	var position uint
	allCards := append(append([]CardTemplate{}, pt.Cards...), pt.Skills...)

	for _, ct := range allCards {
		def, ok := catalog.Get(ct.Name)
		if !ok {
			return newBuildError("unknown card %q", ct.Name)
		}

		tier, ok := ParseTier(ct.Tier)
		if !ok {
			return newBuildError("unknown tier %q for card %q", ct.Tier, ct.Name)
		}

		tooltips := def.TooltipsForTier(tier)
		if len(tooltips) == 0 {
			return newBuildError("no tooltips for card %q at tier %s", ct.Name, tier)
		}

		if position+uint(def.Size) > BoardSize {
			return newBuildError("board overflow: %s side exceeds %d slots", owner, BoardSize)
		}

		card := &Card{
			ID:       NewCardID(),
			Owner:    owner,
			Position: position,
			Def:      def,
			Tier:     tier,
			Name:     def.Name,
			Tags:     def.Tags,
		}
		position += uint(def.Size)

		compileCooldown(card, tooltips)
		applyModifications(card, ct.Modifications)

		board.AddCard(card)
	}

	return nil
}

// compileCooldown precomputes a card's cooldown seconds and OnCooldown
// effect list from its tier's tooltips.
func compileCooldown(card *Card, tooltips []Tooltip) {
	for _, tt := range tooltips {
		switch tt.Kind {
		case TooltipStaticModifier:
			applyStaticModifier(card, tt.Modifier)
		case TooltipWhen:
			if tt.When.Kind == EventOnCooldown {
				card.CooldownEffects = append(card.CooldownEffects, tt.When.Effect)
			}
		case TooltipConditionalModifier:
			// Modifiers conditional on runtime state (e.g. "while
			// frozen") are not part of the minimum core; recorded as a
			// no-op static skip rather than guessed at.
		}
	}
}

func applyStaticModifier(card *Card, m Modifier) {
	switch m.Kind {
	case ModCooldown:
		card.CooldownSeconds = m.Value
	case ModCritChance:
		card.CritChance = m.Value
	case ModRadiant:
		card.Radiant = true
	}
}

// applyModifications layers template-level Enchanted overrides onto an
// already-compiled card. Value entries are accepted and ignored.
func applyModifications(card *Card, mods []CardModification) {
	for _, m := range mods {
		if m.Enchanted != "" {
			applyEnchantment(card, m.Enchanted)
			continue
		}
		// A bare numeric Value modification overrides a specific
		// tooltip's derived constant; that level of per-tooltip
		// patching is a catalog concern outside the minimum core.
	}
}

func applyEnchantment(card *Card, name string) {
	switch strings.ToLower(name) {
	case "radiant":
		card.Radiant = true
	}
}

// ErrNoTooltips names the condition of a CardDefinition having no
// tooltips for a requested tier. Build reports that condition as a
// BuildError and does not wrap this value.
var ErrNoTooltips = errors.New("no tooltips for requested tier")
