package battle

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxTurns caps a match as a guard against non-terminating setups. SP never
// regenerates, so real matches end well before this.
const MaxTurns = 500

// Setup wires two characters as enemies and seeds the queue with both sides.
func Setup(q Queue, a, b *Character) {
	a.SetEnemy(b)
	b.SetEnemy(a)
	q.Add(a)
	q.Add(b)
}

// Match runs one duel to completion, asking each front character's playstyle
// for its action each turn.
type Match struct {
	queue  Queue
	logger *zap.Logger
	record bool
}

// NewMatch builds a runner over q. A nil logger disables logging; record
// keeps the per-turn event list on the result.
func NewMatch(q Queue, logger *zap.Logger, record bool) *Match {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{queue: q, logger: logger, record: record}
}

// Run plays turns until the duel is over or no legal action remains.
func (m *Match) Run() MatchResult {
	res := MatchResult{ID: uuid.NewString()}
	for turn := 1; turn <= MaxTurns; turn++ {
		if m.queue.IsOver() {
			break
		}
		cur := m.queue.Peek()
		act := cur.Playstyle().SelectAction("")
		if act == ActionInvalid {
			break
		}
		cur.Perform(act)
		if len(cur.AvailableActions()) != 0 {
			_, _ = m.queue.Remove()
		}
		res.Turns = turn

		m.logger.Debug("turn resolved",
			zap.Int("turn", turn),
			zap.String("actor", cur.Name()),
			zap.String("action", act.String()),
			zap.Int("hp", cur.HP()),
			zap.Int("sp", cur.SP()),
			zap.Int("enemy_hp", cur.Enemy().HP()),
		)
		if m.record {
			res.Events = append(res.Events, Event{
				Turn:    turn,
				Actor:   cur.Name(),
				Action:  act.String(),
				HP:      cur.HP(),
				SP:      cur.SP(),
				EnemyHP: cur.Enemy().HP(),
			})
		}
	}

	if w := m.queue.Winner(); w != nil {
		res.Winner = w.Name()
	} else if m.queue.IsOver() {
		res.Tie = true
	}
	m.logger.Info("match finished",
		zap.String("id", res.ID),
		zap.String("winner", res.Winner),
		zap.Bool("tie", res.Tie),
		zap.Int("turns", res.Turns),
	)
	return res
}
