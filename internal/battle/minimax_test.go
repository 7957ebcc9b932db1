package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// lethalState puts a rogue with rogueHP in front of a mage at 3 HP, one hit
// from losing.
func lethalState(rogueHP int) Queue {
	q := NewBattleQueue()
	r, m := newRogueMage(q)
	r.SetHP(rogueHP)
	m.SetHP(3)
	return q
}

func TestStateScoreImmediateWin(t *testing.T) {
	assert.Equal(t, 40, StateScore(lethalState(40)))
	assert.Equal(t, 100, StateScore(lethalState(100)))
}

func TestStateScoreDoomedActor(t *testing.T) {
	// The mage acts first at 3 HP against a 40 HP rogue: whatever it does,
	// the rogue answers and wins, but spending more SP up front softens the
	// rogue's remaining HP when the loss lands.
	q := NewBattleQueue()
	roster := DefaultRoster()
	m := NewCharacter("m", roster["mage"], q, nil)
	r := NewCharacter("r", roster["rogue"], q, nil)
	Setup(q, m, r)
	m.SetHP(3)
	r.SetHP(40)

	assert.Equal(t, -10, StateScore(q))
	assert.Equal(t, -10, iterate(q.Clone()))
}

func TestStateScoreActionlessTie(t *testing.T) {
	q := NewBattleQueue()
	r, m := newRogueMage(q)
	r.SetSP(0)
	m.SetSP(0)
	assert.Equal(t, 0, StateScore(q))
}

func TestStateScoreLeavesInputUntouched(t *testing.T) {
	q := lethalState(40)
	before := q.String()
	_ = StateScore(q)
	assert.Equal(t, before, q.String())
}

func TestIterateMatchesRecursive(t *testing.T) {
	for _, hp := range []int{40, 100} {
		q := lethalState(hp)
		assert.Equal(t, StateScore(q), iterate(q.Clone()))
	}

	q := NewBattleQueue()
	r, m := newRogueMage(q)
	r.SetSP(0)
	m.SetSP(0)
	assert.Equal(t, 0, iterate(q.Clone()))
}

func TestMinimaxSelectsSoftenedLoss(t *testing.T) {
	// Same doomed-mage state as above: the special lands 30 on the rogue and
	// loses to a 10 HP survivor, the plain attack loses to 30 HP. Both
	// engines should prefer the special.
	build := func() Queue {
		q := NewBattleQueue()
		roster := DefaultRoster()
		m := NewCharacter("m", roster["mage"], q, nil)
		r := NewCharacter("r", roster["rogue"], q, nil)
		Setup(q, m, r)
		m.SetHP(3)
		r.SetHP(40)
		return q
	}

	assert.Equal(t, ActionSpecial, NewRecursiveMinimax(build()).SelectAction(""))
	assert.Equal(t, ActionSpecial, NewIterativeMinimax(build()).SelectAction(""))
}

func TestMinimaxTiePrefersAttack(t *testing.T) {
	// Both actions end the duel at once with the same score.
	q := lethalState(40)
	assert.Equal(t, ActionAttack, NewRecursiveMinimax(q).SelectAction(""))
	assert.Equal(t, ActionAttack, NewIterativeMinimax(q).SelectAction(""))
}

func TestMinimaxSoleActionShortCircuits(t *testing.T) {
	q := NewBattleQueue()
	r, _ := newRogueMage(q)
	r.SetSP(5)
	assert.Equal(t, ActionAttack, NewRecursiveMinimax(q).SelectAction(""))
}

func TestMinimaxNoActionIsInvalid(t *testing.T) {
	q := NewBattleQueue()
	r, m := newRogueMage(q)
	r.SetSP(0)
	m.SetSP(0)
	assert.Equal(t, ActionInvalid, NewRecursiveMinimax(q).SelectAction(""))
	assert.Equal(t, ActionInvalid, NewIterativeMinimax(q).SelectAction(""))
}

func TestEnginesAgreeOnRandomStates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := NewBattleQueue()
		r, m := newRogueMage(q)
		r.SetHP(rapid.IntRange(1, 40).Draw(t, "rhp"))
		m.SetHP(rapid.IntRange(1, 40).Draw(t, "mhp"))
		r.SetSP(rapid.IntRange(0, 50).Draw(t, "rsp"))
		m.SetSP(rapid.IntRange(0, 50).Draw(t, "msp"))
		if rapid.Bool().Draw(t, "extraEntry") {
			q.Add(r)
		}

		rec := StateScore(q)
		it := iterate(q.Clone())
		if rec != it {
			t.Fatalf("recursive %d, iterative %d on %s", rec, it, q.String())
		}
		if rec < -100 || rec > 100 {
			t.Fatalf("score %d out of HP bounds on %s", rec, q.String())
		}
	})
}
