package mapper

import "github.com/RitterHou/search-platform/internal/model"

// ExtractorRegex is the parser type a bare string field is shorthand for
const ExtractorRegex = "regex"

// ParserFieldsToRows lists a data parser's fields as {field_name, type, expression}
// rows, sorted by field name. A bare string value is shorthand for a regex
// extractor and is expanded.
func ParserFieldsToRows(parser *model.DataParser) []model.Row {
	if parser == nil {
		return []model.Row{}
	}
	rows := make([]model.Row, 0, len(parser.Fields))
	for _, name := range parser.Fields.Keys() {
		var row model.Row
		switch val := parser.Fields[name].(type) {
		case string:
			row = model.Row{"expression": val, "type": ExtractorRegex}
		default:
			if obj, ok := model.AsObject(val); ok && obj != nil {
				row = model.Row(obj.Clone())
			} else {
				row = model.Row{}
			}
		}
		row["field_name"] = name
		rows = append(rows, row)
	}
	return rows
}

// ParserFieldsFromRows rebuilds a regex data parser from its grid rows. Rows
// still at their add-row default are dropped; names are not validated.
func ParserFieldsFromRows(rows []model.Row) *model.DataParser {
	fields := model.Object{}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		value := storageRow(row)
		name := nameOf(value)
		delete(value, "field_name")
		fields[name] = model.Object(value)
	}
	return &model.DataParser{Type: ExtractorRegex, Fields: fields}
}

// BodyToRows lists a request body or response field mapping as
// {field_name, field_value} rows, sorted by name.
func BodyToRows(body model.Object) []model.Row {
	rows := make([]model.Row, 0, len(body))
	for _, name := range body.Keys() {
		value := body[name]
		if obj, ok := model.AsObject(value); ok {
			value = obj.Clone()
		}
		rows = append(rows, model.Row{"field_name": name, "field_value": value})
	}
	return rows
}

// BodyFromRows rebuilds a body mapping from its grid rows
func BodyFromRows(rows []model.Row) model.Object {
	body := model.Object{}
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		value := storageRow(row)
		body[nameOf(value)] = value["field_value"]
	}
	return body
}

// SourceVariables lists the variables a source body value may reference:
// {version} followed by every parser field.
func SourceVariables(parser *model.DataParser) []model.Row {
	vars := []model.Row{{"field_value": "{version}"}}
	if parser == nil {
		return vars
	}
	for _, name := range parser.Fields.Keys() {
		vars = append(vars, model.Row{"field_value": "{" + name + "}"})
	}
	return vars
}
