// Package tooltip turns card tooltip source text into the structured
// sim.Tooltip values the engine consumes. It recognizes a small literal subset sufficient
// for the builtin card pack format; anything else survives as a Raw
// tooltip so the build continues rather than fails.
package tooltip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bazaar-sim/internal/sim"
)

// dealDamagePattern matches lines like "Deal 3 damage" or "Deal 12 damage
// to Opponent" (target defaults to Opponent when omitted, since effect
// authors write Player to mean "self").
var dealDamagePattern = regexp.MustCompile(`(?i)^deal\s+(\d+)\s+damage(?:\s+to\s+(player|opponent))?$`)

// cooldownPattern matches a bare "Cooldown: 1.5s" line.
var cooldownPattern = regexp.MustCompile(`(?i)^cooldown:\s*([0-9.]+)s?$`)

// critPattern matches "Crit chance: 20%".
var critPattern = regexp.MustCompile(`(?i)^crit chance:\s*([0-9.]+)%$`)

// Parse compiles one tooltip line into a sim.Tooltip. Unrecognized text is
// never an error: it becomes TooltipRaw, which the simulation builder
// skips when compiling a card, without a warning.
func Parse(raw string) (sim.Tooltip, error) {
	line := strings.TrimSpace(raw)

	if m := dealDamagePattern.FindStringSubmatch(line); m != nil {
		amount, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return sim.Tooltip{Kind: sim.TooltipRaw, Raw: raw}, nil
		}
		target := sim.TargetOpponent
		if strings.EqualFold(m[2], "player") {
			target = sim.TargetPlayer
		}
		return sim.Tooltip{
			Kind: sim.TooltipWhen,
			When: sim.EffectEvent{
				Kind: sim.EventOnCooldown,
				Effect: sim.Effect{
					Kind:         sim.EffectDealDamage,
					PlayerTarget: target,
					Amount:       sim.Constant(uint32(amount)),
				},
			},
		}, nil
	}

	if m := cooldownPattern.FindStringSubmatch(line); m != nil {
		seconds, err := strconv.ParseFloat(m[1], 32)
		if err != nil {
			return sim.Tooltip{Kind: sim.TooltipRaw, Raw: raw}, nil
		}
		return sim.Tooltip{
			Kind:     sim.TooltipStaticModifier,
			Modifier: sim.Modifier{Kind: sim.ModCooldown, Value: float32(seconds)},
		}, nil
	}

	if m := critPattern.FindStringSubmatch(line); m != nil {
		pct, err := strconv.ParseFloat(m[1], 32)
		if err != nil {
			return sim.Tooltip{Kind: sim.TooltipRaw, Raw: raw}, nil
		}
		return sim.Tooltip{
			Kind:     sim.TooltipStaticModifier,
			Modifier: sim.Modifier{Kind: sim.ModCritChance, Value: float32(pct) / 100},
		}, nil
	}

	return sim.Tooltip{Kind: sim.TooltipRaw, Raw: raw}, nil
}

// ParseAll parses a card's full tooltip block, one line per tooltip.
func ParseAll(lines []string) ([]sim.Tooltip, error) {
	out := make([]sim.Tooltip, 0, len(lines))
	for i, line := range lines {
		tt, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("tooltip line %d: %w", i, err)
		}
		out = append(out, tt)
	}
	return out, nil
}
