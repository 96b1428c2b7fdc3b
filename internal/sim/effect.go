package sim

// This file holds the structured sum types shared with the (out of scope)
// tooltip parser: Tooltip, Modifier, EffectEvent, Effect, CardTarget,
// TargetCondition, and Derived[T]. Each is a closed enumeration carrying a
// payload, represented as a Kind discriminant plus the union of possible
// fields on one concrete struct, generalized so effect trees (conditions,
// nested conditionals) can be built and walked without interface boxing in
// the per-tick hot path.

// --- Modifier (static properties) ---

type ModifierKind uint8

const (
	ModCooldown ModifierKind = iota
	ModAmmo
	ModMulticast
	ModCritChance
	ModWeaponDamage
	ModLessDamageTaken
	ModDoubleCritDamage
	ModRadiant
	ModIncreasedValue
)

// Modifier is a static property contributed by a tooltip (cooldown, ammo,
// crit chance, Radiant immunity, etc).
type Modifier struct {
	Kind  ModifierKind
	Value float32 // seconds for ModCooldown, count for ModAmmo/ModMulticast,
	// fraction for ModCritChance/ModLessDamageTaken, flat for ModWeaponDamage,
	// gold for ModIncreasedValue. Unused for ModDoubleCritDamage/ModRadiant.
}

// --- CardProperty / PlayerProperty ---

type CardProperty uint8

const (
	PropValue CardProperty = iota
	PropDamage
)

type PlayerProperty uint8

const (
	PropMaxHealth PlayerProperty = iota
	PropCurrentHealth
)

// --- TargetCondition ---

type TargetConditionKind uint8

const (
	CondAlways TargetConditionKind = iota
	CondNever
	CondIsSelf
	CondAdjacent
	CondHasCooldown
	CondHasOwner
	CondHasTag
	CondHasSize
	CondNameIncludes
	CondAnd
	CondOr
	CondNot
	CondRaw
)

// TargetCondition is a node in the predicate tree evaluated by the target
// resolver. Only the fields relevant to Kind are populated.
type TargetCondition struct {
	Kind     TargetConditionKind
	Owner    PlayerTarget // CondHasOwner
	Tag      Tag          // CondHasTag
	Size     Size         // CondHasSize
	Substr   string       // CondNameIncludes, CondRaw (raw source text)
	Children []TargetCondition // CondAnd, CondOr (two or more)
	Child    *TargetCondition  // CondNot
}

func Always() TargetCondition { return TargetCondition{Kind: CondAlways} }
func Never() TargetCondition  { return TargetCondition{Kind: CondNever} }
func IsSelf() TargetCondition { return TargetCondition{Kind: CondIsSelf} }
func Adjacent() TargetCondition { return TargetCondition{Kind: CondAdjacent} }
func HasCooldown() TargetCondition { return TargetCondition{Kind: CondHasCooldown} }

func HasOwner(p PlayerTarget) TargetCondition {
	return TargetCondition{Kind: CondHasOwner, Owner: p}
}

func HasTag(t Tag) TargetCondition { return TargetCondition{Kind: CondHasTag, Tag: t} }

func HasSize(s Size) TargetCondition { return TargetCondition{Kind: CondHasSize, Size: s} }

func NameIncludes(substr string) TargetCondition {
	return TargetCondition{Kind: CondNameIncludes, Substr: substr}
}

func And(conds ...TargetCondition) TargetCondition {
	return TargetCondition{Kind: CondAnd, Children: conds}
}

func Or(conds ...TargetCondition) TargetCondition {
	return TargetCondition{Kind: CondOr, Children: conds}
}

func Not(c TargetCondition) TargetCondition {
	return TargetCondition{Kind: CondNot, Child: &c}
}

func RawCondition(src string) TargetCondition {
	return TargetCondition{Kind: CondRaw, Substr: src}
}

// --- CardTarget ---

// AllTargets means "all matching, no cap, no shuffle".
const AllTargets = ^uint(0)

type CardTarget struct {
	Count     uint
	Predicate TargetCondition
}

// --- Derived[T] ---

type DerivedKind uint8

const (
	DerivedConstant DerivedKind = iota
	DerivedFromCard
	DerivedFromPlayer
)

// Derived[T] resolves to a T either directly (Constant) or from the state
// of targeted cards/players at apply-time.
type Derived[T any] struct {
	Kind           DerivedKind
	ConstantValue  T
	Target         CardTarget
	CardProperty   CardProperty
	PlayerProperty PlayerProperty
	Multiplier     float32
}

func Constant[T any](v T) Derived[T] {
	return Derived[T]{Kind: DerivedConstant, ConstantValue: v}
}

func FromCard[T any](target CardTarget, prop CardProperty, multiplier float32) Derived[T] {
	return Derived[T]{Kind: DerivedFromCard, Target: target, CardProperty: prop, Multiplier: multiplier}
}

func FromPlayer[T any](target CardTarget, prop PlayerProperty, multiplier float32) Derived[T] {
	return Derived[T]{Kind: DerivedFromPlayer, Target: target, PlayerProperty: prop, Multiplier: multiplier}
}

// --- Effect ---

type EffectKind uint8

const (
	EffectDealDamage EffectKind = iota
	EffectBurn
	EffectPoison
	EffectHeal
	EffectShield
	EffectRegen
	EffectFreeze
	EffectSlow
	EffectHaste
	EffectUse
	EffectDestroy
	EffectIncreaseDamage
	EffectCooldownReduction
	// Recognized-but-degraded variants: dispatched only where
	// explicitly supported, otherwise lowered to a CombatRaw event that
	// the apply phase drops with a warning.
	EffectGainGold
	EffectGainXp
	EffectUpgrade
	EffectObtainItem
	EffectSpendGoldForEffect
	EffectMultiEffect
	EffectConditionalMatchItem
	EffectRaw
)

// AmountKind distinguishes a flat amount from a percentage for
// IncreaseDamage/CooldownReduction.
type AmountKind uint8

const (
	AmountFlat AmountKind = iota
	AmountPercent
)

// Effect is a structured combat action attached to an EffectEvent. Only
// the fields relevant to Kind are populated.
type Effect struct {
	Kind EffectKind

	PlayerTarget PlayerTarget    // DealDamage/Burn/Poison/Heal/Shield/Regen
	Amount       Derived[uint32] // DealDamage/Burn/Poison/Heal/Shield/Regen

	CardTarget CardTarget // Freeze/Slow/Haste/Use/Destroy/IncreaseDamage/CooldownReduction
	Duration   GameTicks  // Freeze/Slow/Haste

	AmountKind AmountKind // IncreaseDamage/CooldownReduction
	FlatAmount int32      // IncreaseDamage/CooldownReduction (AmountFlat)
	PctAmount  float32    // IncreaseDamage/CooldownReduction (AmountPercent)

	Nested []Effect // MultiEffect

	Raw string // EffectRaw/unrecognized source text
}

// --- EffectEvent ---

type EffectEventKind uint8

const (
	EventOnCooldown EffectEventKind = iota
	EventOnFightStart
	EventOnDayStart
	EventOnCardUsed
	EventOnCrit
	EventOnCardSold
	EventOnCardTransformed
	EventOnWinVersusHero
	EventOnFirstTime
	EventRaw
)

type GlobalEvent uint8

const (
	GlobalEventNone GlobalEvent = iota
	GlobalEventDayStart
	GlobalEventFightStart
	GlobalEventCardSold
)

// EffectEvent is a tooltip's trigger: "when X happens, do Effect".
type EffectEvent struct {
	Kind            EffectEventKind
	Effect          Effect
	TargetCondition TargetCondition // OnCardUsed, OnCrit
	Global          GlobalEvent     // OnFirstTime
	Raw             string          // EventRaw
}

// --- Tooltip ---

type TooltipKind uint8

const (
	TooltipWhen TooltipKind = iota
	TooltipStaticModifier
	TooltipConditionalModifier
	TooltipConditional
	TooltipSellsForGold
	TooltipRaw
)

// Condition gates a ConditionalModifier/Conditional tooltip. It reuses the
// TargetCondition tree evaluated against the owning card as "self".
type Condition = TargetCondition

// Tooltip is one line of a card's compiled effect text. The tooltip
// parser (out of scope) is the sole producer of these values; the engine
// only ever consumes them.
type Tooltip struct {
	Kind TooltipKind

	When EffectEvent // TooltipWhen

	Modifier Modifier // TooltipStaticModifier, TooltipConditionalModifier

	Condition Condition // TooltipConditionalModifier, TooltipConditional
	Inner     *Tooltip  // TooltipConditional

	Raw string // TooltipRaw
}
