package battle

import "strings"

// RestrictedQueue is a BattleQueue variant that tracks, per entry, whether
// that entry may add characters once it reaches the front. The entry and
// eligibility tracks always have equal length and move in lockstep.
type RestrictedQueue struct {
	entries []*Character
	canAdd  []bool
	sideA   *Character
	sideB   *Character
}

func NewRestrictedQueue() *RestrictedQueue { return &RestrictedQueue{} }

func (q *RestrictedQueue) clean() {
	for len(q.entries) > 0 && len(q.entries[0].AvailableActions()) == 0 {
		q.entries = q.entries[1:]
		q.canAdd = q.canAdd[1:]
	}
}

// Add applies the eligibility rules at insertion time. The character at the
// front is assumed to be the one adding. Rules, in order:
//
//   - the first insertion ever is eligible and fixes the sides;
//   - the other side's first insertion (queue holds exactly one side, the
//     insert is the other) is eligible;
//   - an eligible front adding its enemy succeeds, with the new entry marked
//     not eligible; any other insert through an eligible front falls through
//     to the duplicate-count rule rather than being rejected;
//   - the duplicate-count rule: fewer than two eligible copies of the
//     inserted character queued means the new entry is eligible, otherwise
//     not; the entry is appended either way;
//   - a fully drained queue accepts the insertion as eligible again;
//   - otherwise (front not eligible) the insertion is dropped.
func (q *RestrictedQueue) Add(c *Character) {
	switch {
	case len(q.entries) == 0 && q.sideA == nil:
		q.sideA = c
		q.sideB = c.Enemy()
		q.push(c, true)
	case len(q.entries) == 1 && q.entries[0] == q.sideA && c == q.sideB:
		q.push(c, true)
	case len(q.entries) == 1 && q.entries[0] == q.sideB && c == q.sideA:
		q.push(c, true)
	default:
		switch {
		case len(q.canAdd) > 0 && q.canAdd[0]:
			if q.entries[0] == c.Enemy() {
				q.push(c, false)
			} else {
				q.pushCounted(c)
			}
		case len(q.canAdd) == 0:
			// Both sides appeared in the past but the queue drained; let
			// the match restart.
			q.push(c, true)
		}
		// Front entry cannot add: the insertion is dropped.
	}
}

func (q *RestrictedQueue) push(c *Character, eligible bool) {
	q.entries = append(q.entries, c)
	q.canAdd = append(q.canAdd, eligible)
}

// pushCounted appends c, eligible only while fewer than two eligible copies
// of c are already queued. This caps self-chaining at two pending turns.
func (q *RestrictedQueue) pushCounted(c *Character) {
	count := 0
	for i, e := range q.entries {
		if e == c && q.canAdd[i] {
			count++
		}
	}
	q.push(c, count < 2)
}

// Remove pops and returns the front entry after cleaning, dropping its
// eligibility marker in lockstep.
func (q *RestrictedQueue) Remove() (*Character, error) {
	q.clean()
	if len(q.entries) == 0 {
		return nil, ErrEmptyQueue
	}
	c := q.entries[0]
	q.entries = q.entries[1:]
	q.canAdd = q.canAdd[1:]
	return c, nil
}

func (q *RestrictedQueue) IsEmpty() bool {
	q.clean()
	return len(q.entries) == 0
}

func (q *RestrictedQueue) Peek() *Character {
	q.clean()
	if len(q.entries) > 0 {
		return q.entries[0]
	}
	return q.sideA
}

func (q *RestrictedQueue) IsOver() bool {
	if q.IsEmpty() {
		return true
	}
	return q.sideA.HP() == 0 || q.sideB.HP() == 0
}

func (q *RestrictedQueue) Winner() *Character {
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

// Clone fixes the sides directly on the new instance and replays Add for
// each original entry; the eligibility track is rebuilt by the replay since
// Add's rules depend only on queue history.
func (q *RestrictedQueue) Clone() Queue {
	nq := NewRestrictedQueue()
	if q.sideA == nil {
		return nq
	}
	aCopy := q.sideA.Clone(nq)
	bCopy := q.sideB.Clone(nq)
	aCopy.SetEnemy(bCopy)
	bCopy.SetEnemy(aCopy)
	nq.sideA = aCopy
	nq.sideB = bCopy

	for _, c := range q.entries {
		if c == q.sideA {
			nq.Add(aCopy)
		} else {
			nq.Add(bCopy)
		}
	}
	return nq
}

func (q *RestrictedQueue) String() string {
	parts := make([]string, len(q.entries))
	for i, c := range q.entries {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
