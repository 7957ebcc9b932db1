package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duel_ai/internal/config"
)

func treeFixture(t *testing.T) (*SkillTree, *Character, *Character) {
	t.Helper()
	roster := DefaultRoster()
	q := NewBattleQueue()
	s := NewCharacter("s", roster["sorcerer"], q, nil)
	m := NewCharacter("m", roster["mage"], q, nil)
	Setup(q, s, m)
	tree, err := DefaultTree(roster)
	require.NoError(t, err)
	return tree, s, m
}

func TestPickSkillLowestPriorityWins(t *testing.T) {
	tree, s, m := treeFixture(t)

	// Fresh stats: three candidates surface and the failed target-HP check wins.
	assert.Equal(t, "rogue_special", tree.PickSkill(s, m).Name)

	// Drained target SP fails the mage-special branch, which outranks the rest.
	m.SetSP(30)
	assert.Equal(t, "mage_special", tree.PickSkill(s, m).Name)
}

func TestPickSkillRootFailureStopsDescent(t *testing.T) {
	tree, s, m := treeFixture(t)
	s.SetHP(40)
	assert.Equal(t, "mage_attack", tree.PickSkill(s, m).Name)
}

func TestNewSkillTreeRejectsBadCondition(t *testing.T) {
	roster := DefaultRoster()
	_, err := NewSkillTree(roster["rogue"].Attack, "Caster.HP( >", 1)
	assert.Error(t, err)
}

func TestTreeFromConfigMatchesDefault(t *testing.T) {
	roster := DefaultRoster()
	cfgTree := config.TreeNode{
		Skill: "mage_attack", Condition: "Caster.HP() > 50", Priority: 5,
		Children: []config.TreeNode{
			{Skill: "mage_attack", Condition: "Caster.SP() > 20", Priority: 3,
				Children: []config.TreeNode{
					{Skill: "rogue_special", Condition: "Target.HP() < 30", Priority: 4,
						Children: []config.TreeNode{{Skill: "rogue_attack", Priority: 6}}},
				}},
			{Skill: "mage_special", Condition: "Target.SP() > 40", Priority: 2,
				Children: []config.TreeNode{{Skill: "rogue_attack", Priority: 8}}},
			{Skill: "rogue_attack", Condition: "Caster.HP() > 90", Priority: 1,
				Children: []config.TreeNode{{Skill: "rogue_special", Priority: 7}}},
		},
	}
	fromCfg, err := TreeFromConfig(&cfgTree, roster)
	require.NoError(t, err)
	stock, err := DefaultTree(roster)
	require.NoError(t, err)

	q := NewBattleQueue()
	s := NewCharacter("s", roster["sorcerer"], q, nil)
	m := NewCharacter("m", roster["mage"], q, nil)
	Setup(q, s, m)

	for _, tweak := range []func(){
		func() {},
		func() { m.SetSP(30) },
		func() { s.SetHP(40) },
		func() { s.SetHP(95); s.SetSP(10) },
	} {
		tweak()
		assert.Equal(t, stock.PickSkill(s, m).Name, fromCfg.PickSkill(s, m).Name)
	}
}

func TestTreeFromConfigUnknownSkill(t *testing.T) {
	_, err := TreeFromConfig(&config.TreeNode{Skill: "fireball", Priority: 1}, DefaultRoster())
	assert.Error(t, err)
}
