package model

import "time"

// DataParser extracts named variables from a message or request
type DataParser struct {
	Type   string `json:"type"`   // e.g., regex
	Fields Object `json:"fields"` // name -> {type, expression} or a bare regex string
}

// Object returns the parser in its generic form, for embedding in an Object tree
func (p *DataParser) Object() Object {
	if p == nil {
		return nil
	}
	fields := p.Fields.Clone()
	if fields == nil {
		fields = Object{}
	}
	return Object{"type": p.Type, "fields": fields}
}

// DataParserOf reads a data parser out of its generic form
func DataParserOf(v interface{}) *DataParser {
	switch val := v.(type) {
	case *DataParser:
		return val
	case DataParser:
		return &val
	}
	obj, ok := AsObject(v)
	if !ok || obj == nil {
		return nil
	}
	parser := &DataParser{}
	parser.Type, _ = obj["type"].(string)
	parser.Fields = obj.Object("fields")
	return parser
}

// Pipeline is a data river: trigger, data source and destinations
type Pipeline struct {
	Name         string `json:"name"`
	Notification Object `json:"notification,omitempty"` // filter.conditions, data_parser, ...
	Source       Object `json:"source,omitempty"`       // request.body, response.fields, ...
	Destination  []Row  `json:"destination"`
}

func (p Pipeline) RecordName() string { return p.Name }

// QueryHandler is a RESTful query chain entry
type QueryHandler struct {
	Name        string      `json:"name"`
	ResType     string      `json:"res_type,omitempty"`
	HTTPMethod  string      `json:"http_method"` // comma joined, e.g. GET,POST
	Filter      Object      `json:"filter,omitempty"`
	DataParser  *DataParser `json:"data_parser,omitempty"`
	Destination Row         `json:"destination,omitempty"` // a single destination, not a list
	Response    interface{} `json:"response,omitempty"`
}

func (q QueryHandler) RecordName() string { return q.Name }

// IndexTemplate is an elasticsearch index setting keyed by name
type IndexTemplate struct {
	Name    string      `json:"name"`
	Host    string      `json:"host,omitempty"`
	Index   string      `json:"index,omitempty"`
	Type    string      `json:"type,omitempty"`
	ID      string      `json:"id,omitempty"`
	Mapping interface{} `json:"mapping,omitempty"`
}

func (t IndexTemplate) RecordName() string { return t.Name }

// Message is a system message sent from the console
type Message struct {
	ID        string    `json:"id"`
	Payload   Object    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// ProcessHost is the supervisor state of one cluster host
type ProcessHost struct {
	Host      string `json:"host"`
	State     string `json:"state"`
	PID       int    `json:"pid"`
	Processes []Row  `json:"sub_process_list"` // supervisor process info, one row per program
}

// ProcessAction is an operation run by a host's supervisor
type ProcessAction string

const (
	ProcessStart    ProcessAction = "start"
	ProcessStop     ProcessAction = "stop"
	ProcessRestart  ProcessAction = "restart"
	ProcessClearLog ProcessAction = "clear_log"
	ProcessGetLog   ProcessAction = "get_log"
)

// Valid reports whether a is an action the backend runs. get_log is a read
// and is not valid here.
func (a ProcessAction) Valid() bool {
	switch a {
	case ProcessStart, ProcessStop, ProcessRestart, ProcessClearLog:
		return true
	}
	return false
}
