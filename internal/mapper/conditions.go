package mapper

import "github.com/RitterHou/search-platform/internal/model"

// DefaultOperator is shown for conditions saved before operator was mandatory
const DefaultOperator = "is"

// ConditionsToRows prepares filter conditions for the condition grid. Order is
// kept; a condition without operator is shown with DefaultOperator.
func ConditionsToRows(conditions []model.Row) []model.Row {
	rows := make([]model.Row, 0, len(conditions))
	for _, condition := range conditions {
		row := condition.Clone()
		if row == nil {
			row = model.Row{}
		}
		if isFalsy(row["operator"]) {
			row["operator"] = DefaultOperator
		}
		rows = append(rows, row)
	}
	return rows
}

// ConditionsFromRows rebuilds filter conditions from the edited grid rows.
// The result is never nil.
func ConditionsFromRows(rows []model.Row) []model.Row {
	conditions := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		conditions = append(conditions, storageRow(row))
	}
	return conditions
}
