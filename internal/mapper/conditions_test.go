package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RitterHou/search-platform/internal/model"
)

func TestConditionsToRows_DefaultsMissingOperator(t *testing.T) {
	conditions := []model.Row{{"type": "regex", "expression": "a"}}

	rows := ConditionsToRows(conditions)

	assert.Equal(t, []model.Row{{"type": "regex", "expression": "a", "operator": "is"}}, rows)
	// input is not touched
	assert.NotContains(t, conditions[0], "operator")
}

func TestConditionsToRows_KeepsOrderAndOperator(t *testing.T) {
	conditions := []model.Row{
		{"operator": "not", "type": "regex", "expression": "b"},
		{"operator": "", "type": "in", "expression": "c"},
	}

	rows := ConditionsToRows(conditions)

	assert.Len(t, rows, 2)
	assert.Equal(t, "not", rows[0]["operator"])
	assert.Equal(t, "b", rows[0]["expression"])
	assert.Equal(t, "is", rows[1]["operator"])
	assert.Equal(t, "c", rows[1]["expression"])
}

func TestConditionsToRows_Empty(t *testing.T) {
	assert.Equal(t, []model.Row{}, ConditionsToRows(nil))
}

func TestConditionsFromRows_StripsTrackingKey(t *testing.T) {
	rows := []model.Row{
		{"operator": "is", "type": "regex", "expression": "a", model.GridTrackingKey: "uiGrid-001"},
	}

	conditions := ConditionsFromRows(rows)

	assert.Equal(t, []model.Row{{"operator": "is", "type": "regex", "expression": "a"}}, conditions)
	assert.Contains(t, rows[0], model.GridTrackingKey)
}

func TestConditionsFromRows_NeverNil(t *testing.T) {
	assert.NotNil(t, ConditionsFromRows(nil))
	assert.Empty(t, ConditionsFromRows(nil))
	assert.NotNil(t, ConditionsFromRows([]model.Row{}))
}
