package mapper

import "github.com/RitterHou/search-platform/internal/model"

// NewQueryHandlerView builds the complete editable form of a query handler.
// A nil handler yields the view of an empty one (create).
func NewQueryHandlerView(q *model.QueryHandler) *model.QueryHandlerView {
	if q == nil {
		q = &model.QueryHandler{}
	}
	filter := q.Filter.Clone()
	if filter == nil {
		filter = model.Object{}
	}
	conditions := model.AsRows(filter["conditions"])
	delete(filter, "conditions")

	return &model.QueryHandlerView{
		Name:                q.Name,
		ResType:             q.ResType,
		Filter:              filter,
		FilterOptions:       model.Grid{Data: ConditionsToRows(conditions)},
		DataParserList:      ParserFieldsToRows(q.DataParser),
		DestinationList:     DestinationToList(q.Destination),
		HTTPMethodViewModel: MethodsToViewModel(q.HTTPMethod),
		ResponseJSONStr:     JSONText(q.Response),
	}
}

// QueryHandlerFromView reduces an edited view to its wire record. It fails
// with a *FieldError, before anything else is converted, when the response
// text does not parse.
func QueryHandlerFromView(v *model.QueryHandlerView) (*model.QueryHandler, error) {
	if v == nil {
		return &model.QueryHandler{}, nil
	}
	response, err := ParseJSONText("response", v.ResponseJSONStr)
	if err != nil {
		return nil, err
	}
	filter := v.Filter.Clone()
	if filter == nil {
		filter = model.Object{}
	}
	filter["conditions"] = ConditionsFromRows(v.FilterOptions.Data)

	return &model.QueryHandler{
		Name:        v.Name,
		ResType:     v.ResType,
		HTTPMethod:  MethodsToWire(v.HTTPMethodViewModel),
		Filter:      filter,
		DataParser:  ParserFieldsFromRows(v.DataParserList),
		Destination: DestinationFromList(v.DestinationList),
		Response:    response,
	}, nil
}
