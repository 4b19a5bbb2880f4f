package mapper

import "github.com/RitterHou/search-platform/internal/model"

// NewPipelineView builds the complete editable form of a data river. The
// grid-owned values are moved out of notification and source into their
// grids. A nil pipeline yields the view of an empty one (create).
func NewPipelineView(p *model.Pipeline) *model.PipelineView {
	if p == nil {
		p = &model.Pipeline{}
	}
	notification := p.Notification.Clone()
	if notification == nil {
		notification = model.Object{}
	}
	source := p.Source.Clone()
	if source == nil {
		source = model.Object{}
	}

	var conditions []model.Row
	if filter := notification.Object("filter"); filter != nil {
		conditions = model.AsRows(filter["conditions"])
		delete(filter, "conditions")
	}
	parser := model.DataParserOf(notification["data_parser"])
	delete(notification, "data_parser")

	var requestBody, responseFields model.Object
	if request := source.Object("request"); request != nil {
		requestBody = request.Object("body")
		delete(request, "body")
	}
	if response := source.Object("response"); response != nil {
		responseFields = response.Object("fields")
		delete(response, "fields")
	}

	return &model.PipelineView{
		Name:                   p.Name,
		Notification:           notification,
		Source:                 source,
		FilterOptions:          model.Grid{Data: ConditionsToRows(conditions)},
		FilterDataParserFields: model.Grid{Data: ParserFieldsToRows(parser)},
		SourceRequestBody:      model.Grid{Data: BodyToRows(requestBody)},
		SourceResponseBody:     model.Grid{Data: BodyToRows(responseFields)},
		DestinationListGrid:    model.Grid{Data: DestinationsToDisplay(p.Destination)},
		SourceVariables:        SourceVariables(parser),
	}
}

// PipelineFromView reduces an edited view to the wire record sent to the backend.
// Missing notification.filter, source.request and source.response are created.
func PipelineFromView(v *model.PipelineView) *model.Pipeline {
	if v == nil {
		return &model.Pipeline{Destination: []model.Row{}}
	}
	notification := v.Notification.Clone()
	if notification == nil {
		notification = model.Object{}
	}
	notification.Ensure("filter")["conditions"] = ConditionsFromRows(v.FilterOptions.Data)
	notification["data_parser"] = ParserFieldsFromRows(v.FilterDataParserFields.Data).Object()

	source := v.Source.Clone()
	if source == nil {
		source = model.Object{}
	}
	source.Ensure("request")["body"] = BodyFromRows(v.SourceRequestBody.Data)
	source.Ensure("response")["fields"] = BodyFromRows(v.SourceResponseBody.Data)

	return &model.Pipeline{
		Name:         v.Name,
		Notification: notification,
		Source:       source,
		Destination:  DestinationsToStorage(v.DestinationListGrid.Data),
	}
}
