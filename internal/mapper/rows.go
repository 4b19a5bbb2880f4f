package mapper

import (
	"fmt"
	"math"
	"reflect"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/pkg/utils"
)

// NewRow returns the blank row appended by a grid's "add row" action.
// The second result is false for grids that do not support adding rows.
func NewRow(grid string) (model.Row, bool) {
	switch grid {
	case model.GridFilterOptions:
		return model.Row{"operator": "", "type": "", "expression": ""}, true
	case model.GridFilterDataParserFields, model.GridDataParserList:
		return model.Row{"field_name": "", "type": "", "expression": ""}, true
	case model.GridSourceRequestBody, model.GridSourceResponseBody:
		return model.Row{"field_name": "", "field_value": ""}, true
	case model.GridDestinationList:
		return model.Row{
			"destination_type": "", "reference": "", "operation": "", "clear_policy": "",
			"id": "", "host": "", "index": "", "type": "", "mapping": "",
		}, true
	case model.GridSysParamHosts:
		return model.Row{
			"host":                "",
			"supervisor_port":     "9001",
			"supervisor_user":     "",
			"supervisor_password": "",
		}, true
	}
	return nil, false
}

// isFalsy reports whether v counts as "not set": nil, "", false, zero or NaN.
// Empty objects and lists are set.
func isFalsy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	}
	if utils.IsNumeric(v) {
		f := utils.Numeric(v)
		return f == 0 || math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// isBlankRow reports whether every cell of the row is unset, i.e. the row is
// still at its add-row default.
func isBlankRow(row model.Row) bool {
	for key, v := range row {
		if key == model.GridTrackingKey {
			continue
		}
		if !isFalsy(v) {
			return false
		}
	}
	return true
}

// storageRow copies a grid row without its tracking key
func storageRow(row model.Row) model.Row {
	out := row.Clone()
	if out == nil {
		return model.Row{}
	}
	delete(out, model.GridTrackingKey)
	return out
}

func nameOf(row model.Row) string {
	switch name := row["field_name"].(type) {
	case nil:
		return ""
	case string:
		return name
	default:
		return fmt.Sprint(name)
	}
}
