package sim

import (
	"math/rand"
	"strings"
)

// Board is the full set of runtime cards plus both players, addressable by
// CardId, iterated in a fixed deterministic order.
type Board struct {
	Player   *Player
	Opponent *Player

	// Cards is insertion order: player cards first, then opponent cards,
	// each in template declaration order. Iterating this slice is the canonical emission order.
	Cards []*Card

	byID map[CardId]*Card
}

// NewBoard constructs an empty board wired to its two players.
func NewBoard(player, opponent *Player) *Board {
	return &Board{
		Player:   player,
		Opponent: opponent,
		byID:     make(map[CardId]*Card),
	}
}

// AddCard appends a card in emission order and indexes it by id.
func (b *Board) AddCard(c *Card) {
	b.Cards = append(b.Cards, c)
	b.byID[c.ID] = c
}

// CardByID looks up a card by its id, or nil if it is gone (destroyed or
// never existed).
func (b *Board) CardByID(id CardId) *Card {
	return b.byID[id]
}

// PlayerByTarget returns the Player struct for a side.
func (b *Board) PlayerByTarget(p PlayerTarget) *Player {
	if p == TargetOpponent {
		return b.Opponent
	}
	return b.Player
}

// RemoveCard removes a destroyed card from the board and its index.
func (b *Board) RemoveCard(id CardId) {
	delete(b.byID, id)
	for i, c := range b.Cards {
		if c.ID == id {
			b.Cards = append(b.Cards[:i], b.Cards[i+1:]...)
			return
		}
	}
}

// ResolveTargets evaluates a TargetCondition against every card on the
// board relative to the given source, in board iteration order.
func (b *Board) ResolveTargets(source *Card, cond TargetCondition) []*Card {
	var out []*Card
	for _, c := range b.Cards {
		if evalCondition(b, source, c, cond) {
			out = append(out, c)
		}
	}
	return out
}

func evalCondition(b *Board, source, candidate *Card, cond TargetCondition) bool {
	switch cond.Kind {
	case CondAlways:
		return true
	case CondNever:
		return false
	case CondIsSelf:
		return candidate.ID == source.ID
	case CondAdjacent:
		if candidate.Owner != source.Owner {
			return false
		}
		diff := int(candidate.Position) - int(source.Position)
		return diff == 1 || diff == -1
	case CondHasCooldown:
		return candidate.OnCooldown()
	case CondHasOwner:
		want := cond.Owner
		if source.Owner == TargetOpponent {
			want = want.Inverse()
		}
		return candidate.Owner == want
	case CondHasTag:
		return candidate.HasTag(cond.Tag)
	case CondHasSize:
		return candidate.Def != nil && candidate.Def.Size == cond.Size
	case CondNameIncludes:
		return strings.Contains(strings.ToLower(candidate.Name), strings.ToLower(cond.Substr))
	case CondAnd:
		for _, child := range cond.Children {
			if !evalCondition(b, source, candidate, child) {
				return false
			}
		}
		return true
	case CondOr:
		for _, child := range cond.Children {
			if evalCondition(b, source, candidate, child) {
				return true
			}
		}
		return false
	case CondNot:
		if cond.Child == nil {
			return true
		}
		return !evalCondition(b, source, candidate, *cond.Child)
	case CondRaw:
		return false
	default:
		return false
	}
}

// statusPredicate names the status used to partition candidates during
// selection, matched to the CombatEvent
// kind being applied.
type statusPredicate uint8

const (
	statusNone statusPredicate = iota
	statusFrozen
	statusSlowed
)

// SelectN implements the selection algorithm on already-filtered
// candidates (eligibility filtering is FilterEligible's job): partition
// into not-yet-afflicted / already-afflicted, shuffle each with the sim
// RNG, concatenate. AllTargets means "all candidates, no shuffle".
func SelectN(candidates []*Card, n uint, status statusPredicate, rng *rand.Rand) []*Card {
	if n == AllTargets {
		return candidates
	}

	var fresh, afflicted []*Card
	for _, c := range candidates {
		if isAfflicted(c, status) {
			afflicted = append(afflicted, c)
		} else {
			fresh = append(fresh, c)
		}
	}

	shuffle(fresh, rng)
	shuffle(afflicted, rng)

	picked := make([]*Card, 0, n)
	for _, c := range fresh {
		if uint(len(picked)) >= n {
			break
		}
		picked = append(picked, c)
	}
	for _, c := range afflicted {
		if uint(len(picked)) >= n {
			break
		}
		picked = append(picked, c)
	}
	return picked
}

func isAfflicted(c *Card, status statusPredicate) bool {
	switch status {
	case statusFrozen:
		return c.Frozen()
	case statusSlowed:
		return c.Slowed()
	default:
		return false
	}
}

// shuffle is a no-op when rng is nil (derived-value resolution,
// selects deterministically in board order rather than consuming RNG
// state that must stay reserved for crit/target-selection rolls).
func shuffle(cards []*Card, rng *rand.Rand) {
	if rng == nil {
		return
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// FilterEligible drops Radiant cards when dropRadiant is set and, when
// requireCooldown is set, cards with no active cooldown.
func FilterEligible(candidates []*Card, dropRadiant, requireCooldown bool) []*Card {
	out := candidates[:0:0]
	for _, c := range candidates {
		if dropRadiant && c.Radiant {
			continue
		}
		if requireCooldown && !c.OnCooldown() {
			continue
		}
		out = append(out, c)
	}
	return out
}
