package mapper

import "github.com/RitterHou/search-platform/internal/model"

// DefaultDestinationType is assumed for destinations saved without a type
const DefaultDestinationType = "elasticsearch"

// backfilled keys render as editable blanks in the destination grid
var backfilled = []string{"host", "index", "type", "id", "clear_policy"}

// optional keys are dropped from storage when unset
var optional = []string{"host", "index", "type", "id", "mapping", "clear_policy"}

// DestinationsToDisplay fills in the defaults the destination grid needs.
// mapping is never backfilled.
func DestinationsToDisplay(destinations []model.Row) []model.Row {
	rows := make([]model.Row, 0, len(destinations))
	for _, destination := range destinations {
		row := destination.Clone()
		if row == nil {
			row = model.Row{}
		}
		if isFalsy(row["destination_type"]) {
			row["destination_type"] = DefaultDestinationType
		}
		for _, key := range backfilled {
			if isFalsy(row[key]) {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DestinationsToStorage prunes unset optional keys and the grid tracking key.
// destination_type, reference and operation are always kept.
func DestinationsToStorage(rows []model.Row) []model.Row {
	destinations := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		destination := storageRow(row)
		for _, key := range optional {
			if isFalsy(destination[key]) {
				delete(destination, key)
			}
		}
		destinations = append(destinations, destination)
	}
	return destinations
}

// DestinationToList wraps a query handler's single destination for the grid
func DestinationToList(destination model.Row) []model.Row {
	return DestinationsToDisplay([]model.Row{destination})
}

// DestinationFromList unwraps the single destination edited in the grid
func DestinationFromList(rows []model.Row) model.Row {
	if len(rows) == 0 {
		return model.Row{}
	}
	return DestinationsToStorage(rows[:1])[0]
}
