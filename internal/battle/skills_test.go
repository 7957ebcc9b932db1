package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRogueSpecialRequeuesTwice(t *testing.T) {
	q := NewBattleQueue()
	r, m := newRogueMage(q)

	r.SpecialAttack() // 20 damage against defense 8
	assert.Equal(t, 88, m.HP())
	assert.Equal(t, 90, r.SP())

	_, _ = q.Remove() // the turn entry
	_, _ = q.Remove() // m's original entry
	for i := 0; i < 2; i++ {
		got, err := q.Remove()
		require.NoError(t, err)
		assert.Same(t, r, got)
	}
}

func TestMageSpecialRequeuesTargetFirst(t *testing.T) {
	q := NewBattleQueue()
	r, m := newRogueMage(q)
	_, _ = q.Remove() // m at the front, acting

	m.SpecialAttack() // 40 damage against defense 10
	assert.Equal(t, 70, r.HP())
	assert.Equal(t, 70, m.SP())

	_, _ = q.Remove() // m's turn entry
	first, _ := q.Remove()
	second, _ := q.Remove()
	assert.Same(t, r, first)
	assert.Same(t, m, second)
}

func TestVampireSpecialLifesteal(t *testing.T) {
	q := NewBattleQueue()
	roster := DefaultRoster()
	v := NewCharacter("v", roster["vampire"], q, nil)
	m := NewCharacter("m", roster["mage"], q, nil)
	Setup(q, v, m)
	v.SetHP(50)

	v.SpecialAttack() // deals 22, heals the same
	assert.Equal(t, 78, m.HP())
	assert.Equal(t, 72, v.HP())
	assert.Equal(t, 80, v.SP())
}

func TestSorcererSpecialFlushesQueue(t *testing.T) {
	q := NewBattleQueue()
	roster := DefaultRoster()
	s := NewCharacter("s", roster["sorcerer"], q, nil)
	m := NewCharacter("m", roster["mage"], q, nil)
	Setup(q, s, m)
	q.Add(m)

	s.SpecialAttack() // 25 damage against defense 8
	assert.Equal(t, 83, m.HP())
	assert.Equal(t, 80, s.SP())
	assert.Equal(t, "s (Sorcerer): 100/80 -> m (Mage): 83/100 -> s (Sorcerer): 100/80", q.String())
}

func TestSorcererAttackDelegatesToTree(t *testing.T) {
	q := NewBattleQueue()
	roster := DefaultRoster()
	s := NewCharacter("s", roster["sorcerer"], q, nil)
	m := NewCharacter("m", roster["mage"], q, nil)
	Setup(q, s, m)
	tree, err := DefaultTree(roster)
	require.NoError(t, err)
	s.SetTree(tree)
	m.SetSP(30)

	s.Attack() // tree picks the mage's special: 40 damage against defense 8
	assert.Equal(t, 68, m.HP())
	assert.Equal(t, 85, s.SP(), "cast costs the flat delegate amount, not the picked skill's")
}
