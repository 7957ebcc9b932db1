package battle

// StateScore returns the best score the queue's next actor can guarantee,
// exploring every line of play recursively. Scores are expressed from the
// acting character's perspective: +HP when the actor is the winner, minus
// the enemy's HP when it is the loser, 0 on an actionless tie. The queue is
// cloned before any mutation, so the caller's state is never touched.
func StateScore(q Queue) int {
	bq := q.Clone()
	cur := bq.Peek()
	switch {
	case len(cur.AvailableActions()) == 0 && bq.Winner() == nil:
		return 0
	case bq.Winner() == cur:
		return cur.HP()
	case bq.Winner() == cur.Enemy():
		return -cur.Enemy().HP()
	}

	if len(cur.AvailableActions()) == 2 {
		special := bq.Clone()
		specialCur := special.Peek()
		cur.Attack()
		advance(bq, cur)
		specialCur.SpecialAttack()
		advance(special, specialCur)
		attackScore := signedScore(bq, cur)
		specialScore := signedScore(special, specialCur)
		if specialScore > attackScore {
			return specialScore
		}
		return attackScore
	}
	cur.Attack()
	advance(bq, cur)
	return signedScore(bq, cur)
}

// advance removes the acting entry from the front once its action resolved,
// unless the actor ran out of actions (cleaning drops it instead).
func advance(q Queue, actor *Character) {
	if len(actor.AvailableActions()) != 0 {
		_, _ = q.Remove()
	}
}

// signedScore re-signs a child score to the acting character's perspective:
// when the turn passed to the enemy, the child's score is negated.
func signedScore(q Queue, actor *Character) int {
	score := StateScore(q)
	if q.Peek() != actor {
		score = -score
	}
	return score
}

// pickAction is the shell shared by both minimax playstyles: short-circuit
// when only the ordinary action (or nothing) is available, otherwise clone
// per candidate action, advance, and compare eval scores re-signed to the
// actor. Equal scores prefer the ordinary action.
func pickAction(q Queue, eval func(Queue) int) Action {
	cur := q.Peek()
	if cur == nil {
		return ActionInvalid
	}
	acts := cur.AvailableActions()
	if len(acts) == 0 {
		return ActionInvalid
	}
	if len(acts) == 1 {
		return ActionAttack
	}

	attackQ, specialQ := q.Clone(), q.Clone()
	attackCur, specialCur := attackQ.Peek(), specialQ.Peek()
	attackCur.Attack()
	advance(attackQ, attackCur)
	specialCur.SpecialAttack()
	advance(specialQ, specialCur)

	attackScore := eval(attackQ)
	if attackQ.Peek() != attackCur {
		attackScore = -attackScore
	}
	specialScore := eval(specialQ)
	if specialQ.Peek() != specialCur {
		specialScore = -specialScore
	}

	if specialScore > attackScore {
		return ActionSpecial
	}
	return ActionAttack
}

// RecursiveMinimax chooses the action whose resulting state carries the best
// guaranteed score, evaluated with StateScore.
type RecursiveMinimax struct {
	queue Queue
}

func NewRecursiveMinimax(q Queue) *RecursiveMinimax { return &RecursiveMinimax{queue: q} }

func (p *RecursiveMinimax) SelectAction(string) Action { return pickAction(p.queue, StateScore) }
func (p *RecursiveMinimax) Clone(q Queue) Playstyle    { return NewRecursiveMinimax(q) }
func (p *RecursiveMinimax) IsManual() bool             { return false }

// IterativeMinimax computes the same scores as RecursiveMinimax but walks
// the state space with an explicit stack of nodes, so search depth is not
// bound by the call stack.
type IterativeMinimax struct {
	queue Queue
}

func NewIterativeMinimax(q Queue) *IterativeMinimax { return &IterativeMinimax{queue: q} }

func (p *IterativeMinimax) SelectAction(string) Action { return pickAction(p.queue, iterate) }
func (p *IterativeMinimax) Clone(q Queue) Playstyle    { return NewIterativeMinimax(q) }
func (p *IterativeMinimax) IsManual() bool             { return false }

// minimaxNode is one explored state: a private queue snapshot, its expanded
// children, and a memoized score. Nodes never outlive one search call.
type minimaxNode struct {
	queue    Queue
	children []*minimaxNode
	score    int
	expanded bool
}

// iterate computes the guaranteed score for the queue's next actor by
// post-order evaluation. A node is pushed back onto the stack before its
// children, so LIFO order revisits it only after both children resolved.
func iterate(q Queue) int {
	root := &minimaxNode{queue: q}
	stack := []*minimaxNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := node.queue.Peek()
		switch {
		case len(cur.AvailableActions()) == 0 && node.queue.Winner() == nil:
			node.score = 0
		case node.queue.Winner() == cur:
			node.score = cur.HP()
		case node.queue.Winner() == cur.Enemy():
			node.score = -cur.Enemy().HP()
		case !node.expanded:
			stack = expandNode(node, cur, stack)
		default:
			resolveNode(node)
		}
	}
	return root.score
}

// expandNode materializes the 1 or 2 reachable next-states as children and
// schedules the node for a second visit after them.
func expandNode(node *minimaxNode, cur *Character, stack []*minimaxNode) []*minimaxNode {
	node.expanded = true

	attackQ := node.queue.Clone()
	attackCur := attackQ.Peek()
	attackCur.Attack()
	advance(attackQ, attackCur)
	node.children = []*minimaxNode{{queue: attackQ}}

	if len(cur.AvailableActions()) == 2 {
		specialQ := node.queue.Clone()
		specialCur := specialQ.Peek()
		specialCur.SpecialAttack()
		advance(specialQ, specialCur)
		node.children = append(node.children, &minimaxNode{queue: specialQ})
	}

	stack = append(stack, node)
	stack = append(stack, node.children...)
	return stack
}

// resolveNode folds resolved child scores into the node, re-running each
// action once to learn whether the turn stayed with the actor or flipped.
func resolveNode(node *minimaxNode) {
	best := 0
	for i, child := range node.children {
		probe := node.queue.Clone()
		actor := probe.Peek()
		if i == 0 {
			actor.Attack()
		} else {
			actor.SpecialAttack()
		}
		advance(probe, actor)
		score := child.score
		if probe.Peek() != actor {
			score = -score
		}
		if i == 0 || score > best {
			best = score
		}
	}
	node.score = best
}
