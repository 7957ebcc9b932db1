package battle

import (
	"errors"
	"strings"
)

// ErrEmptyQueue is returned by Remove when the queue has no usable entries
// left after cleaning. Callers are expected to check IsEmpty first.
var ErrEmptyQueue = errors.New("battle: remove from empty queue")

// Queue is the turn-order contract shared by BattleQueue and RestrictedQueue.
// The same character may appear any number of times; the two sides are fixed
// by the first Add and never change, even once the queue drains.
type Queue interface {
	Add(c *Character)
	Remove() (*Character, error)
	IsEmpty() bool
	Peek() *Character
	IsOver() bool
	Winner() *Character
	Clone() Queue
	String() string
}

// BattleQueue holds the order in which characters act.
type BattleQueue struct {
	entries []*Character
	sideA   *Character
	sideB   *Character
}

func NewBattleQueue() *BattleQueue { return &BattleQueue{} }

// clean drops leading entries whose character has no available actions.
// Passed-over entries are gone for good; this is how an exhausted character
// leaves an in-progress match.
func (q *BattleQueue) clean() {
	for len(q.entries) > 0 && len(q.entries[0].AvailableActions()) == 0 {
		q.entries = q.entries[1:]
	}
}

// Add appends c. The very first Add fixes the two sides from c and its enemy.
func (q *BattleQueue) Add(c *Character) {
	q.entries = append(q.entries, c)
	if q.sideA == nil {
		q.sideA = c
		q.sideB = c.Enemy()
	}
}

// Remove pops and returns the front entry after cleaning.
func (q *BattleQueue) Remove() (*Character, error) {
	q.clean()
	if len(q.entries) == 0 {
		return nil, ErrEmptyQueue
	}
	c := q.entries[0]
	q.entries = q.entries[1:]
	return c, nil
}

func (q *BattleQueue) IsEmpty() bool {
	q.clean()
	return len(q.entries) == 0
}

// Peek returns the next character to act without removing it. On an empty
// queue it falls back to side A so callers can always tell whose turn would
// resume.
func (q *BattleQueue) Peek() *Character {
	q.clean()
	if len(q.entries) > 0 {
		return q.entries[0]
	}
	return q.sideA
}

// IsOver reports whether the duel is decided: the queue drained, or either
// side is at zero HP.
func (q *BattleQueue) IsOver() bool {
	if q.IsEmpty() {
		return true
	}
	return q.sideA.HP() == 0 || q.sideB.HP() == 0
}

// Winner returns the side still standing, or nil while the duel runs, on a
// double knockout, or when the queue emptied with both sides alive.
func (q *BattleQueue) Winner() *Character {
	if !q.IsOver() || q.sideA == nil || q.sideB == nil {
		return nil
	}
	aDown := q.sideA.HP() == 0
	bDown := q.sideB.HP() == 0
	switch {
	case aDown && bDown:
		return nil
	case aDown:
		return q.sideB
	case bDown:
		return q.sideA
	}
	return nil
}

// Clone returns an independent queue with independently cloned characters.
// The clones rebind their enemy references to each other and their queue
// references to the new queue; the original sequence is replayed by identity.
// The clone shares no mutable state with the source.
func (q *BattleQueue) Clone() Queue {
	nq := NewBattleQueue()
	if q.sideA == nil {
		return nq
	}
	aCopy := q.sideA.Clone(nq)
	bCopy := q.sideB.Clone(nq)
	aCopy.SetEnemy(bCopy)
	bCopy.SetEnemy(aCopy)

	// Bootstrap add fixes the sides; the duplicate entry it introduces is
	// dropped before replaying the real sequence.
	nq.Add(aCopy)
	if !nq.IsEmpty() {
		_, _ = nq.Remove()
	}
	for _, c := range q.entries {
		if c == q.sideA {
			nq.Add(aCopy)
		} else {
			nq.Add(bCopy)
		}
	}
	return nq
}

func (q *BattleQueue) String() string {
	parts := make([]string, len(q.entries))
	for i, c := range q.entries {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
