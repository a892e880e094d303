package cards

import (
	"github.com/cory-johannsen/tactics/internal/game/character"
	"github.com/cory-johannsen/tactics/internal/game/condition"
)

// skillCardType assigns a card type to every skill that yields a card.
// Skills absent from this table produce no card.
var skillCardType = map[string]CardType{
	character.SkillFighting:      TypeAttack,
	character.SkillBlades:        TypeAttack,
	character.SkillShooting:      TypeAttack,
	character.SkillArtillery:     TypeAttack,
	character.SkillResistance:    TypeDefense,
	character.SkillEvasion:       TypeDefense,
	character.SkillAthletics:     TypeMovement,
	character.SkillStealth:       TypeMovement,
	character.SkillMedicine:      TypeSupport,
	character.SkillPersuasion:    TypeSupport,
	character.SkillLeadership:    TypeCommand,
	character.SkillTactics:       TypeCommand,
	character.SkillOccultism:     TypeSpecial,
	character.SkillTechnology:    TypeSpecial,
	character.SkillInvestigation: TypeSpecial,
}

// CardTypeForSkill returns the card type skill produces, if any.
func CardTypeForSkill(skill string) (CardType, bool) {
	t, ok := skillCardType[skill]
	return t, ok
}

var rarityByLevel = map[int]Rarity{
	1: Common,
	2: Common,
	3: Uncommon,
	4: Rare,
	5: Epic,
}

// RarityForLevel maps a skill level to a rarity. Levels outside 1-5 are common.
func RarityForLevel(level int) Rarity {
	if r, ok := rarityByLevel[level]; ok {
		return r
	}
	return Common
}

var cooldownByRarity = map[Rarity]int{
	Common:   0,
	Uncommon: 1,
	Rare:     2,
	Epic:     3,
}

var baseCost = map[CardType]int{
	TypeAttack:   2,
	TypeDefense:  1,
	TypeMovement: 1,
	TypeSupport:  2,
	TypeSpecial:  3,
	TypeCommand:  2,
}

// meleeSkills get the staggered status on high-level attack cards; every
// other attack skill suppresses instead.
var meleeSkills = map[string]bool{
	character.SkillFighting: true,
	character.SkillBlades:   true,
}

type cardText struct {
	Name        string
	Description string
}

// skillCardText holds the name and description for levels 1 through 5, in order.
var skillCardText = map[string][5]cardText{
	character.SkillFighting: {
		{"Jab", "A quick punch to test the opponent's guard."},
		{"Combination Strike", "A flurry of blows that keeps the enemy on the back foot."},
		{"Brutal Haymaker", "A wide swing that trades finesse for raw force."},
		{"Crushing Blow", "A heavy strike that leaves the target reeling."},
		{"Titan's Fist", "An overwhelming blow that can break a battle line on its own."},
	},
	character.SkillBlades: {
		{"Quick Slash", "A fast cut aimed at an exposed limb."},
		{"Twin Cut", "Two precise strokes delivered in one motion."},
		{"Riposte Edge", "Turns the enemy's attack into an opening for steel."},
		{"Whirling Steel", "A spinning sequence of cuts that staggers the target."},
		{"Thousand Cuts", "A storm of blades no armor can fully stop."},
	},
	character.SkillShooting: {
		{"Snap Shot", "A hurried shot fired from the hip."},
		{"Aimed Shot", "A steady shot at a chosen target."},
		{"Double Tap", "Two rounds placed close together."},
		{"Suppressing Volley", "Sustained fire that pins the enemy in place."},
		{"Deadeye", "A perfect shot through the narrowest gap."},
	},
	character.SkillArtillery: {
		{"Mortar Round", "A single lobbed shell on the enemy's position."},
		{"Ranging Salvo", "Shells walked onto the target with corrections."},
		{"Creeping Barrage", "A rolling wall of fire ahead of the advance."},
		{"Saturation Fire", "Every gun on one grid square, leaving survivors pinned."},
		{"Earthshaker", "A bombardment that reshapes the battlefield."},
	},
	character.SkillResistance: {
		{"Brace", "Set your feet and take the hit."},
		{"Iron Skin", "Toughened flesh shrugs off glancing blows."},
		{"Stand Firm", "Refuse to yield a single step."},
		{"Unbreakable", "Wounds that would fell others barely slow you."},
		{"Living Bulwark", "You become the wall the enemy breaks upon."},
	},
	character.SkillEvasion: {
		{"Sidestep", "Shift just out of the blow's path."},
		{"Weave", "Duck and bob between incoming attacks."},
		{"Blur", "Move too quickly for the eye to follow."},
		{"Untouchable", "Attacks pass through where you were a moment ago."},
		{"Phantom Step", "Enemies swear they struck only an afterimage."},
	},
	character.SkillAthletics: {
		{"Dash", "A short burst of speed."},
		{"Vault", "Clear an obstacle without breaking stride."},
		{"Bounding Leap", "Cover ground in great jumps."},
		{"Forced March", "Push through exhaustion to reposition."},
		{"Wind Runner", "Cross the battlefield before the enemy can react."},
	},
	character.SkillStealth: {
		{"Slip Away", "Ease out of the enemy's attention."},
		{"Shadow Step", "Move from cover to cover unseen."},
		{"Vanish", "Disappear from sight mid-stride."},
		{"Ghost Walk", "Walk through the enemy lines unnoticed."},
		{"One With Shadows", "Even allies lose track of you."},
	},
	character.SkillMedicine: {
		{"First Aid", "Stop the bleeding and bandage the wound."},
		{"Field Dressing", "Clean and dress a wound under fire."},
		{"Triage", "Treat the worst injuries first."},
		{"Surgeon's Hands", "Precise treatment that restores fighting strength."},
		{"Miracle Cure", "Bring an ally back from the brink."},
	},
	character.SkillPersuasion: {
		{"Steady Voice", "Calm words that ease an ally's pain."},
		{"Words of Comfort", "Reassurance that helps an ally recover."},
		{"Inspiring Plea", "An appeal that lends an ally renewed strength."},
		{"Silver Tongue", "Your words mend spirit and body alike."},
		{"Unshakable Conviction", "Your belief becomes an ally's second wind."},
	},
	character.SkillLeadership: {
		{"Hold the Line", "A short order that steadies nearby troops."},
		{"Forward!", "Urge your allies into the fight."},
		{"Rallying Banner", "Raise the colors and restore the unit's resolve."},
		{"Inspiring Command", "A commanding presence that lifts every heart."},
		{"Legendary Leader", "Troops would follow you through any fire."},
	},
	character.SkillTactics: {
		{"Flank Order", "Direct allies to the enemy's weak side."},
		{"Coordinated Push", "Time the advance so every unit strikes together."},
		{"Battle Plan", "A prepared plan that keeps the troops confident."},
		{"Masterstroke", "A maneuver that turns the tide."},
		{"Grand Stratagem", "Every move was foreseen and every answer ready."},
	},
	character.SkillOccultism: {
		{"Minor Ward", "A faint sigil that deflects ill intent."},
		{"Hex", "A curse whispered at the enemy."},
		{"Spirit Call", "Summon an echo to aid the fight."},
		{"Akashic Echo", "Draw on the memory of past battles."},
		{"Veil Rending", "Tear the boundary between worlds."},
	},
	character.SkillTechnology: {
		{"Patch Job", "Improvised repairs keep gear running."},
		{"Drone Ping", "A scout drone marks enemy positions."},
		{"Overclock", "Push equipment beyond its limits."},
		{"System Hijack", "Turn the enemy's devices against them."},
		{"Singularity Protocol", "Unleash technology best left sealed."},
	},
	character.SkillInvestigation: {
		{"Keen Eye", "Spot what others overlook."},
		{"Expose Weakness", "Reveal a flaw in the enemy's defense."},
		{"Deduction", "Predict the enemy's next move."},
		{"Pattern Read", "See the plan behind the enemy's actions."},
		{"Perfect Insight", "Nothing on the battlefield escapes you."},
	},
}

// virtueTemplate describes the bonus card granted by a starting virtue.
type virtueTemplate struct {
	Name        string
	Type        CardType
	Description string
	Effects     Effects
}

// Virtue cards are always rare with fixed cost and cooldown.
const (
	virtueCost     = 3
	virtueCooldown = 3
)

var virtueCards = map[string]virtueTemplate{
	character.VirtueWisdom: {
		Name:        "Sage's Insight",
		Type:        TypeSpecial,
		Description: "Reveal the enemy's weak point, lowering its defense.",
		Effects: Effects{
			Debuff{Stat: "defense", Value: 2, Duration: 2, Target: TargetEnemy},
		},
	},
	character.VirtueCourage: {
		Name:        "Fearless Charge",
		Type:        TypeAttack,
		Description: "Cast off fear and strike with everything you have.",
		Effects: Effects{
			Damage{Value: 4, Target: TargetEnemy},
			Cleanse{StatusID: condition.Fear, Target: TargetSelf},
		},
	},
	character.VirtuePerseverance: {
		Name:        "Endure",
		Type:        TypeDefense,
		Description: "Grit your teeth, recover, and dig in.",
		Effects: Effects{
			Heal{Value: 3, Target: TargetSelf},
			Buff{Stat: "defense", Value: 2, Duration: 2, Target: TargetSelf},
		},
	},
	character.VirtueHarmony: {
		Name:        "Harmonious Accord",
		Type:        TypeSupport,
		Description: "Bring the unit into accord, lifting everyone's morale.",
		Effects: Effects{
			Buff{Stat: "morale", Value: 2, Duration: 2, Target: TargetAllies},
		},
	},
}
