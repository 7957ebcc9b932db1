package battle

import "fmt"

// Character is one of the two combatants in a duel. Identity is pointer
// identity; all queue logic relies on it. HP and SP are clamped at zero and
// never exceed their maxima.
type Character struct {
	name      string
	archetype string

	hp, maxHP int
	sp, maxSP int
	defense   int

	attack  *Skill
	special *Skill

	enemy     *Character
	queue     Queue
	playstyle Playstyle
	tree      *SkillTree
}

// NewCharacter builds a character from an archetype spec. Enemy wiring is
// the caller's job, mirroring match setup.
func NewCharacter(name string, spec ArchetypeSpec, q Queue, ps Playstyle) *Character {
	return &Character{
		name:      name,
		archetype: spec.Name,
		hp:        spec.MaxHP,
		maxHP:     spec.MaxHP,
		sp:        spec.MaxSP,
		maxSP:     spec.MaxSP,
		defense:   spec.Defense,
		attack:    spec.Attack,
		special:   spec.Special,
		queue:     q,
		playstyle: ps,
	}
}

func (c *Character) Name() string         { return c.name }
func (c *Character) Archetype() string    { return c.archetype }
func (c *Character) HP() int              { return c.hp }
func (c *Character) SP() int              { return c.sp }
func (c *Character) MaxHP() int           { return c.maxHP }
func (c *Character) MaxSP() int           { return c.maxSP }
func (c *Character) Defense() int         { return c.defense }
func (c *Character) Enemy() *Character    { return c.enemy }
func (c *Character) SetEnemy(e *Character) { c.enemy = e }
func (c *Character) Queue() Queue         { return c.queue }
func (c *Character) Playstyle() Playstyle { return c.playstyle }
func (c *Character) Tree() *SkillTree     { return c.tree }
func (c *Character) SetTree(t *SkillTree) { c.tree = t }

// AvailableActions lists what the character can afford right now, ordinary
// action first.
func (c *Character) AvailableActions() []Action {
	var acts []Action
	if c.sp >= c.attack.Cost {
		acts = append(acts, ActionAttack)
	}
	if c.sp >= c.special.Cost {
		acts = append(acts, ActionSpecial)
	}
	return acts
}

func (c *Character) Attack()        { c.attack.Use(c, c.enemy) }
func (c *Character) SpecialAttack() { c.special.Use(c, c.enemy) }

// Perform runs the given action; invalid actions are no-ops.
func (c *Character) Perform(a Action) {
	switch a {
	case ActionAttack:
		c.Attack()
	case ActionSpecial:
		c.SpecialAttack()
	}
}

func (c *Character) ApplyDamage(amount int) {
	c.hp -= amount
	if c.hp < 0 {
		c.hp = 0
	}
}

func (c *Character) ReduceSP(cost int) {
	c.sp -= cost
	if c.sp < 0 {
		c.sp = 0
	}
}

func (c *Character) Heal(amount int) {
	c.hp += amount
	if c.hp > c.maxHP {
		c.hp = c.maxHP
	}
}

// SetHP overrides HP, clamped to [0, max]. Used by match setup and tests.
func (c *Character) SetHP(hp int) {
	switch {
	case hp < 0:
		c.hp = 0
	case hp > c.maxHP:
		c.hp = c.maxHP
	default:
		c.hp = hp
	}
}

// SetSP overrides SP, clamped to [0, max].
func (c *Character) SetSP(sp int) {
	switch {
	case sp < 0:
		c.sp = 0
	case sp > c.maxSP:
		c.sp = c.maxSP
	default:
		c.sp = sp
	}
}

// Clone returns a deep copy bound to q. The enemy reference is left for the
// caller to rebind; skills and the decision tree are stateless and shared.
func (c *Character) Clone(q Queue) *Character {
	cc := &Character{
		name:      c.name,
		archetype: c.archetype,
		hp:        c.hp,
		maxHP:     c.maxHP,
		sp:        c.sp,
		maxSP:     c.maxSP,
		defense:   c.defense,
		attack:    c.attack,
		special:   c.special,
		queue:     q,
		tree:      c.tree,
	}
	if c.playstyle != nil {
		cc.playstyle = c.playstyle.Clone(q)
	}
	return cc
}

func (c *Character) String() string {
	return fmt.Sprintf("%s (%s): %d/%d", c.name, c.archetype, c.hp, c.sp)
}
