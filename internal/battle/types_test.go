package battle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "A", ActionAttack.String())
	assert.Equal(t, "S", ActionSpecial.String())
	assert.Equal(t, "X", ActionInvalid.String())
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, ActionAttack, ParseAction("A"))
	assert.Equal(t, ActionSpecial, ParseAction("S"))
	assert.Equal(t, ActionInvalid, ParseAction("a"))
	assert.Equal(t, ActionInvalid, ParseAction(""))
}

func TestMarshalPrettyOmitsEmptyFields(t *testing.T) {
	b := MarshalPretty(MatchResult{ID: "x", Tie: true, Turns: 2})
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "winner")
	assert.NotContains(t, m, "events")
	assert.Equal(t, true, m["tie"])
}
