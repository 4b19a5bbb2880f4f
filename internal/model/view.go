package model

// Grid names shared by the editors and the session row operations
const (
	GridFilterOptions          = "filter_options"
	GridFilterDataParserFields = "filter_data_parser_fields"
	GridSourceRequestBody      = "source_request_body"
	GridSourceResponseBody     = "source_response_body"
	GridDestinationList        = "destination_list_grid"
	GridDataParserList         = "data_parser_list"
	GridQueryDestinationList   = "destination_list"
	GridSysParamHosts          = "host_grid"
)

// GridTrackingKey is attached to rows by the grid widget and never persisted
const GridTrackingKey = "$$hashKey"

// Grid holds the rows rendered by one tabular editor
type Grid struct {
	Data []Row `json:"data"`
}

// HTTPMethods has one toggle per supported verb
type HTTPMethods struct {
	GET    bool `json:"GET"`
	POST   bool `json:"POST"`
	PUT    bool `json:"PUT"`
	DELETE bool `json:"DELETE"`
}

// PipelineView is the editable form of a Pipeline. Grid-owned values
// (filter conditions, data parser, body mappings, destinations) live only in
// their grids; Notification and Source keep everything else.
type PipelineView struct {
	Name                   string `json:"name"`
	Notification           Object `json:"notification"`
	Source                 Object `json:"source"`
	FilterOptions          Grid   `json:"filter_options"`
	FilterDataParserFields Grid   `json:"filter_data_parser_fields"`
	SourceRequestBody      Grid   `json:"source_request_body"`
	SourceResponseBody     Grid   `json:"source_response_body"`
	DestinationListGrid    Grid   `json:"destination_list_grid"`
	SourceVariables        []Row  `json:"source_variables"` // value picker for body rows
}

// Rows returns the row sequence behind a grid name, or nil if the view has no such grid
func (v *PipelineView) Rows(grid string) *[]Row {
	switch grid {
	case GridFilterOptions:
		return &v.FilterOptions.Data
	case GridFilterDataParserFields:
		return &v.FilterDataParserFields.Data
	case GridSourceRequestBody:
		return &v.SourceRequestBody.Data
	case GridSourceResponseBody:
		return &v.SourceResponseBody.Data
	case GridDestinationList:
		return &v.DestinationListGrid.Data
	}
	return nil
}

// QueryHandlerView is the editable form of a QueryHandler
type QueryHandlerView struct {
	Name                string      `json:"name"`
	ResType             string      `json:"res_type"`
	Filter              Object      `json:"filter"` // without conditions
	FilterOptions       Grid        `json:"filter_options"`
	DataParserList      []Row       `json:"data_parser_list"`
	DestinationList     []Row       `json:"destination_list"` // exactly one entry
	HTTPMethodViewModel HTTPMethods `json:"http_method_view_model"`
	ResponseJSONStr     string      `json:"response_jsonstr"`
}

func (v *QueryHandlerView) Rows(grid string) *[]Row {
	switch grid {
	case GridFilterOptions:
		return &v.FilterOptions.Data
	case GridDataParserList:
		return &v.DataParserList
	case GridQueryDestinationList:
		return &v.DestinationList
	}
	return nil
}

// IndexTemplateView is the editable form of an IndexTemplate
type IndexTemplateView struct {
	Name           string `json:"name"`
	Host           string `json:"host"`
	Index          string `json:"index"`
	Type           string `json:"type"`
	ID             string `json:"id"`
	MappingJSONStr string `json:"mapping_jsonstr"`
}

func (v *IndexTemplateView) Rows(string) *[]Row { return nil }
