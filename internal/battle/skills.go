package battle

import "duel_ai/internal/config"

type requeueRef int

const (
	refCaster requeueRef = iota
	refTarget
)

// Skill is a single usable move: an SP cost, a damage amount, and the queue
// side effects of using it. Skills hold no per-character state and may be
// shared between characters.
type Skill struct {
	Name   string
	Cost   int
	Damage int

	requeue   []requeueRef // entries pushed after damage resolves
	lifesteal bool         // caster heals the damage dealt
	flush     bool         // drain the queue before re-adding
	delegate  bool         // pick the real skill from the caster's tree
}

// Use makes caster spend this skill on target. Damage is reduced by the
// target's defense, floored at zero; queue side effects run afterwards.
func (s *Skill) Use(caster, target *Character) {
	if s.delegate {
		s.useDelegated(caster, target)
		return
	}
	dealt := s.dealDamage(caster, target)
	if s.lifesteal {
		caster.Heal(dealt)
	}
	if s.flush {
		for !caster.queue.IsEmpty() {
			_, _ = caster.queue.Remove()
		}
	}
	for _, ref := range s.requeue {
		if ref == refCaster {
			caster.queue.Add(caster)
		} else {
			caster.queue.Add(target)
		}
	}
}

func (s *Skill) dealDamage(caster, target *Character) int {
	caster.ReduceSP(s.Cost)
	dealt := s.Damage - target.Defense()
	if dealt < 0 {
		dealt = 0
	}
	target.ApplyDamage(dealt)
	return dealt
}

// useDelegated is the sorcerer's ordinary attack: the decision tree picks
// the skill actually cast, but the cast costs this skill's flat amount
// regardless of what was picked.
func (s *Skill) useDelegated(caster, target *Character) {
	picked := caster.tree.PickSkill(caster, target)
	oldSP := caster.SP()
	picked.Use(caster, target)
	caster.SetSP(oldSP - s.Cost)
	caster.queue.Add(caster)
}

// ArchetypeSpec bundles the stat block and skill pair for one archetype.
type ArchetypeSpec struct {
	Name    string
	MaxHP   int
	MaxSP   int
	Defense int
	Attack  *Skill
	Special *Skill
}

// DefaultRoster returns the built-in archetypes. Config files may override
// the numbers; the queue effects are fixed per archetype.
func DefaultRoster() map[string]ArchetypeSpec {
	return map[string]ArchetypeSpec{
		"rogue": {
			Name: "Rogue", MaxHP: 100, MaxSP: 100, Defense: 10,
			Attack:  &Skill{Name: "rogue_attack", Cost: 3, Damage: 15, requeue: []requeueRef{refCaster}},
			Special: &Skill{Name: "rogue_special", Cost: 10, Damage: 20, requeue: []requeueRef{refCaster, refCaster}},
		},
		"mage": {
			Name: "Mage", MaxHP: 100, MaxSP: 100, Defense: 8,
			Attack:  &Skill{Name: "mage_attack", Cost: 5, Damage: 20, requeue: []requeueRef{refCaster}},
			Special: &Skill{Name: "mage_special", Cost: 30, Damage: 40, requeue: []requeueRef{refTarget, refCaster}},
		},
		"vampire": {
			Name: "Vampire", MaxHP: 100, MaxSP: 100, Defense: 3,
			Attack:  &Skill{Name: "vampire_attack", Cost: 15, Damage: 20, requeue: []requeueRef{refCaster}},
			Special: &Skill{Name: "vampire_special", Cost: 20, Damage: 30, lifesteal: true, requeue: []requeueRef{refCaster, refCaster, refTarget}},
		},
		"sorcerer": {
			Name: "Sorcerer", MaxHP: 100, MaxSP: 100, Defense: 6,
			Attack:  &Skill{Name: "sorcerer_attack", Cost: 15, Damage: 0, delegate: true},
			Special: &Skill{Name: "sorcerer_special", Cost: 20, Damage: 25, flush: true, requeue: []requeueRef{refCaster, refTarget, refCaster}},
		},
	}
}

// RosterFromConfig overlays YAML stat overrides on the default roster.
// A nil config returns the defaults untouched.
func RosterFromConfig(cfg *config.CharactersConfig) map[string]ArchetypeSpec {
	roster := DefaultRoster()
	if cfg == nil {
		return roster
	}
	for _, def := range cfg.Archetypes {
		spec, ok := roster[def.ID]
		if !ok {
			continue
		}
		if def.Name != "" {
			spec.Name = def.Name
		}
		if def.MaxHP > 0 {
			spec.MaxHP = def.MaxHP
		}
		if def.MaxSP > 0 {
			spec.MaxSP = def.MaxSP
		}
		if def.Defense > 0 {
			spec.Defense = def.Defense
		}
		if def.Attack.Cost > 0 {
			spec.Attack.Cost = def.Attack.Cost
		}
		if def.Attack.Damage > 0 {
			spec.Attack.Damage = def.Attack.Damage
		}
		if def.Special.Cost > 0 {
			spec.Special.Cost = def.Special.Cost
		}
		if def.Special.Damage > 0 {
			spec.Special.Damage = def.Special.Damage
		}
		roster[def.ID] = spec
	}
	return roster
}
