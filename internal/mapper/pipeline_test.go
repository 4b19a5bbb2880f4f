package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitterHou/search-platform/internal/model"
)

const orderPipelineJSON = `{
	"name": "order_sync",
	"notification": {
		"topic": "orders",
		"filter": {
			"type": "and",
			"conditions": [
				{"operator": "is", "type": "regex", "expression": "order_.*"},
				{"type": "regex", "expression": "shop_.*"}
			]
		},
		"data_parser": {
			"type": "regex",
			"fields": {
				"shop": "shop_(\\d+)",
				"order": {"type": "regex", "expression": "order_(\\d+)"}
			}
		}
	},
	"source": {
		"url": "http://orders/api",
		"request": {"method": "POST", "body": {"shop_id": "{shop}"}},
		"response": {"root": "$.data", "fields": {"title": "$.title"}}
	},
	"destination": [
		{"destination_type": "elasticsearch", "reference": "order", "operation": "create",
		 "host": "http://es:9200", "index": "orders", "mapping": {"properties": {}}}
	]
}`

func decodePipeline(t *testing.T, raw string) *model.Pipeline {
	t.Helper()
	var p model.Pipeline
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func encode(t *testing.T, v interface{}) string {
	t.Helper()
	buf, err := json.Marshal(v)
	require.NoError(t, err)
	return string(buf)
}

func TestNewPipelineView(t *testing.T) {
	p := decodePipeline(t, orderPipelineJSON)

	view := NewPipelineView(p)

	assert.Equal(t, "order_sync", view.Name)
	assert.Equal(t, []model.Row{
		{"operator": "is", "type": "regex", "expression": "order_.*"},
		{"operator": "is", "type": "regex", "expression": "shop_.*"},
	}, view.FilterOptions.Data)
	assert.Equal(t, []model.Row{
		{"field_name": "order", "type": "regex", "expression": `order_(\d+)`},
		{"field_name": "shop", "type": "regex", "expression": `shop_(\d+)`},
	}, view.FilterDataParserFields.Data)
	assert.Equal(t, []model.Row{{"field_name": "shop_id", "field_value": "{shop}"}}, view.SourceRequestBody.Data)
	assert.Equal(t, []model.Row{{"field_name": "title", "field_value": "$.title"}}, view.SourceResponseBody.Data)
	assert.Equal(t, []model.Row{
		{"field_value": "{version}"},
		{"field_value": "{order}"},
		{"field_value": "{shop}"},
	}, view.SourceVariables)

	require.Len(t, view.DestinationListGrid.Data, 1)
	dest := view.DestinationListGrid.Data[0]
	assert.Equal(t, "", dest["type"])
	assert.Equal(t, "", dest["id"])
	assert.Equal(t, "", dest["clear_policy"])
	assert.Equal(t, "orders", dest["index"])

	// grid-owned values live only in their grids
	assert.JSONEq(t, `{"topic": "orders", "filter": {"type": "and"}}`, encode(t, view.Notification))
	assert.JSONEq(t, `{"url": "http://orders/api", "request": {"method": "POST"}, "response": {"root": "$.data"}}`,
		encode(t, view.Source))
}

func TestNewPipelineView_DoesNotModifyRecord(t *testing.T) {
	p := decodePipeline(t, orderPipelineJSON)
	before := encode(t, p)

	view := NewPipelineView(p)
	view.FilterOptions.Data[0]["expression"] = "changed"
	view.Notification["topic"] = "changed"

	assert.JSONEq(t, before, encode(t, p))
}

func TestNewPipelineView_Empty(t *testing.T) {
	view := NewPipelineView(nil)

	assert.Equal(t, model.Object{}, view.Notification)
	assert.Equal(t, model.Object{}, view.Source)
	assert.Empty(t, view.FilterOptions.Data)
	assert.Empty(t, view.DestinationListGrid.Data)
	assert.Equal(t, []model.Row{{"field_value": "{version}"}}, view.SourceVariables)
}

func TestPipelineFromView(t *testing.T) {
	view := NewPipelineView(decodePipeline(t, orderPipelineJSON))
	view.FilterOptions.Data[1][model.GridTrackingKey] = "uiGrid-002"
	view.SourceRequestBody.Data = append(view.SourceRequestBody.Data,
		model.Row{"field_name": "order_id", "field_value": "{order}"})

	p := PipelineFromView(view)

	assert.JSONEq(t, `{
		"name": "order_sync",
		"notification": {
			"topic": "orders",
			"filter": {
				"type": "and",
				"conditions": [
					{"operator": "is", "type": "regex", "expression": "order_.*"},
					{"operator": "is", "type": "regex", "expression": "shop_.*"}
				]
			},
			"data_parser": {
				"type": "regex",
				"fields": {
					"shop": {"type": "regex", "expression": "shop_(\\d+)"},
					"order": {"type": "regex", "expression": "order_(\\d+)"}
				}
			}
		},
		"source": {
			"url": "http://orders/api",
			"request": {"method": "POST", "body": {"shop_id": "{shop}", "order_id": "{order}"}},
			"response": {"root": "$.data", "fields": {"title": "$.title"}}
		},
		"destination": [
			{"destination_type": "elasticsearch", "reference": "order", "operation": "create",
			 "host": "http://es:9200", "index": "orders", "mapping": {"properties": {}}}
		]
	}`, encode(t, p))
}

func TestPipelineFromView_CreatesMissingSections(t *testing.T) {
	p := PipelineFromView(NewPipelineView(nil))

	assert.JSONEq(t, `{
		"name": "",
		"notification": {"filter": {"conditions": []}, "data_parser": {"type": "regex", "fields": {}}},
		"source": {"request": {"body": {}}, "response": {"fields": {}}},
		"destination": []
	}`, encode(t, p))
}

func TestPipeline_DisplayStorageIdempotent(t *testing.T) {
	once := PipelineFromView(NewPipelineView(decodePipeline(t, orderPipelineJSON)))
	twice := PipelineFromView(NewPipelineView(once))

	assert.JSONEq(t, encode(t, once), encode(t, twice))
}
