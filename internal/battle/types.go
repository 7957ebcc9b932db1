package battle

import "encoding/json"

// Action is one of the two moves a character may take on its turn.
type Action int

const (
	ActionInvalid Action = iota
	ActionAttack
	ActionSpecial
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "A"
	case ActionSpecial:
		return "S"
	}
	return "X"
}

// ParseAction maps a raw input token to an Action. Anything other than "A"
// or "S" is invalid.
func ParseAction(token string) Action {
	switch token {
	case "A":
		return ActionAttack
	case "S":
		return ActionSpecial
	}
	return ActionInvalid
}

// Event records one resolved turn for replay output.
type Event struct {
	Turn    int    `json:"turn"`
	Actor   string `json:"actor"`
	Action  string `json:"action"`
	HP      int    `json:"hp"`
	SP      int    `json:"sp"`
	EnemyHP int    `json:"enemy_hp"`
}

// MatchResult is the outcome of a single duel.
type MatchResult struct {
	ID     string  `json:"id"`
	Winner string  `json:"winner,omitempty"`
	Tie    bool    `json:"tie"`
	Turns  int     `json:"turns"`
	Events []Event `json:"events,omitempty"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
