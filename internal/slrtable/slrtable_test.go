package slrtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load_buildsTableFromEmbeddedCSVs(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load()
	assert.NoError(err)
	assert.Equal(0, tab.Initial())
	assert.Equal(77, tab.NumStates())
}

func Test_Load_stateZeroShiftsOnInicio(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load()
	assert.NoError(err)

	act := tab.Action(0, "inicio")
	assert.Equal(ActionShift, act.Kind)
	assert.Equal(1, act.State)
	assert.Equal("S1", act.String())
}

func Test_Action_blankCellIsE0(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load()
	assert.NoError(err)

	act := tab.Action(0, "fim")
	assert.Equal(ActionError, act.Kind)
	assert.Equal(0, act.Code)
	assert.Equal("E0", act.String())
}

func Test_Action_unknownStateIsE0(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load()
	assert.NoError(err)

	act := tab.Action(9999, "inicio")
	assert.Equal(ActionError, act.Kind)
}

func Test_Goto_undefinedCellIsReportedAsAbsent(t *testing.T) {
	assert := assert.New(t)

	tab, err := Load()
	assert.NoError(err)

	_, ok := tab.Goto(0, "V")
	assert.False(ok)

	state, ok := tab.Goto(0, "P")
	assert.True(ok)
	assert.Equal(2, state)
}

func Test_Load_isIdempotent(t *testing.T) {
	assert := assert.New(t)

	a, errA := Load()
	b, errB := Load()
	assert.NoError(errA)
	assert.NoError(errB)

	assert.Equal(a.NumStates(), b.NumStates())
	assert.Equal(a.Action(0, "inicio"), b.Action(0, "inicio"))
}

func Test_parseAction_variants(t *testing.T) {
	testCases := []struct {
		name   string
		raw    string
		expect Action
	}{
		{"blank", "", Action{Kind: ActionError, Code: 0}},
		{"shift", "S12", Action{Kind: ActionShift, State: 12}},
		{"reduce", "R7", Action{Kind: ActionReduce, Rule: 7}},
		{"accept upper", "Acc", Action{Kind: ActionAccept}},
		{"accept short", "a", Action{Kind: ActionAccept}},
		{"error code", "E6", Action{Kind: ActionError, Code: 6}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			act, err := parseAction(tc.raw)
			assert.NoError(err)
			assert.Equal(tc.expect, act)
		})
	}
}
