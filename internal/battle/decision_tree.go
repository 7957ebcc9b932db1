package battle

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"duel_ai/internal/config"
)

// CondEnv is the evaluation environment for decision-tree conditions.
// Conditions call the exported accessors, e.g. `Caster.HP() > 50`.
type CondEnv struct {
	Caster *Character
	Target *Character
}

// SkillTree is a decision tree over skills. Interior nodes carry a compiled
// condition; a node with no children, or whose condition fails, becomes a
// candidate, and the candidate with the lowest priority number wins.
// Priorities are assumed unique.
type SkillTree struct {
	Skill        *Skill
	ConditionSrc string
	Priority     int
	Children     []*SkillTree

	program *vm.Program
}

// NewSkillTree compiles the node's condition into expr bytecode. An empty
// source marks a leaf condition that always holds.
func NewSkillTree(skill *Skill, conditionSrc string, priority int, children ...*SkillTree) (*SkillTree, error) {
	t := &SkillTree{Skill: skill, ConditionSrc: conditionSrc, Priority: priority, Children: children}
	if conditionSrc != "" {
		prog, err := expr.Compile(conditionSrc, expr.Env(CondEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile tree condition %q: %w", conditionSrc, err)
		}
		t.program = prog
	}
	return t, nil
}

func (t *SkillTree) holds(caster, target *Character) bool {
	if t.program == nil {
		return true
	}
	out, err := vm.Run(t.program, CondEnv{Caster: caster, Target: target})
	if err != nil {
		return false
	}
	b, _ := out.(bool)
	return b
}

// PickSkill walks the tree breadth-first. Nodes that are leaves or whose
// condition fails are collected; descent continues through nodes whose
// condition holds. The collected node with the lowest priority number wins.
func (t *SkillTree) PickSkill(caster, target *Character) *Skill {
	queue := []*SkillTree{t}
	var picked *SkillTree
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if len(node.Children) == 0 || !node.holds(caster, target) {
			if picked == nil || node.Priority < picked.Priority {
				picked = node
			}
			continue
		}
		queue = append(queue, node.Children...)
	}
	return picked.Skill
}

// DefaultTree builds the stock sorcerer tree over the given roster's rogue
// and mage skills.
func DefaultTree(roster map[string]ArchetypeSpec) (*SkillTree, error) {
	rogue, mage := roster["rogue"], roster["mage"]

	var firstErr error
	node := func(s *Skill, cond string, pri int, children ...*SkillTree) *SkillTree {
		t, err := NewSkillTree(s, cond, pri, children...)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return t
	}

	t6 := node(rogue.Attack, "", 6)
	t8 := node(rogue.Attack, "", 8)
	t7 := node(rogue.Special, "", 7)
	t4 := node(rogue.Special, "Target.HP() < 30", 4, t6)
	t3 := node(mage.Attack, "Caster.SP() > 20", 3, t4)
	t2 := node(mage.Special, "Target.SP() > 40", 2, t8)
	t1 := node(rogue.Attack, "Caster.HP() > 90", 1, t7)
	t5 := node(mage.Attack, "Caster.HP() > 50", 5, t3, t2, t1)
	if firstErr != nil {
		return nil, firstErr
	}
	return t5, nil
}

// TreeFromConfig builds a tree from its YAML form. Skill names refer to
// roster skills by their Name field, e.g. "mage_special".
func TreeFromConfig(n *config.TreeNode, roster map[string]ArchetypeSpec) (*SkillTree, error) {
	if n == nil {
		return nil, fmt.Errorf("empty tree config")
	}
	skill := findSkill(roster, n.Skill)
	if skill == nil {
		return nil, fmt.Errorf("unknown skill %q in tree config", n.Skill)
	}
	children := make([]*SkillTree, 0, len(n.Children))
	for i := range n.Children {
		child, err := TreeFromConfig(&n.Children[i], roster)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewSkillTree(skill, n.Condition, n.Priority, children...)
}

func findSkill(roster map[string]ArchetypeSpec, name string) *Skill {
	for _, spec := range roster {
		if spec.Attack.Name == name {
			return spec.Attack
		}
		if spec.Special.Name == name {
			return spec.Special
		}
	}
	return nil
}
