package battle

import "math/rand"

// Playstyle decides which action the character at the front of its queue
// takes. Non-manual variants are deterministic functions of the queue state,
// except RandomPlaystyle which draws from its rng.
type Playstyle interface {
	// SelectAction returns the action for the next character in the queue,
	// or ActionInvalid when no legal action exists. input is only meaningful
	// for manual playstyles.
	SelectAction(input string) Action
	// Clone returns the same variant bound to q.
	Clone(q Queue) Playstyle
	IsManual() bool
}

// ManualPlaystyle maps raw input tokens to actions without any simulation.
type ManualPlaystyle struct {
	queue Queue
}

func NewManualPlaystyle(q Queue) *ManualPlaystyle { return &ManualPlaystyle{queue: q} }

func (p *ManualPlaystyle) SelectAction(input string) Action { return ParseAction(input) }
func (p *ManualPlaystyle) Clone(q Queue) Playstyle          { return NewManualPlaystyle(q) }
func (p *ManualPlaystyle) IsManual() bool                   { return true }

// RandomPlaystyle samples uniformly among the currently available actions.
type RandomPlaystyle struct {
	queue Queue
	rng   *rand.Rand
}

func NewRandomPlaystyle(q Queue, rng *rand.Rand) *RandomPlaystyle {
	return &RandomPlaystyle{queue: q, rng: rng}
}

func (p *RandomPlaystyle) SelectAction(string) Action {
	cur := p.queue.Peek()
	if cur == nil {
		return ActionInvalid
	}
	acts := cur.AvailableActions()
	if len(acts) == 0 {
		return ActionInvalid
	}
	return acts[p.rng.Intn(len(acts))]
}

func (p *RandomPlaystyle) Clone(q Queue) Playstyle { return NewRandomPlaystyle(q, p.rng) }
func (p *RandomPlaystyle) IsManual() bool          { return false }
