package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitterHou/search-platform/internal/alert"
	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

// countingHandlers records the calls that reach the query handler collection
type countingHandlers struct {
	resource.Collection[model.QueryHandler]
	writes int
}

func (c *countingHandlers) Create(ctx context.Context, q model.QueryHandler) error {
	c.writes++
	return c.Collection.Create(ctx, q)
}

func (c *countingHandlers) Update(ctx context.Context, q model.QueryHandler) error {
	c.writes++
	return c.Collection.Update(ctx, q)
}

func newTestManager(t *testing.T) (*Manager, *resource.Resources, *alert.Board) {
	t.Helper()
	resources := resource.NewMemoryResources()
	board := alert.NewBoard()
	return NewManager(resources, board), resources, board
}

func TestOpen_OneCreateAndOneEditTabPerFamily(t *testing.T) {
	ctx := context.Background()
	m, resources, board := newTestManager(t)
	require.NoError(t, resources.Pipelines.Create(ctx, model.Pipeline{Name: "orders"}))
	require.NoError(t, resources.Pipelines.Create(ctx, model.Pipeline{Name: "stock"}))

	created, err := m.Open(ctx, DataRiver, "")
	require.NoError(t, err)
	assert.Equal(t, OpCreate, created.Op)
	assert.Equal(t, "new datariver", created.Title)

	edited, err := m.Open(ctx, DataRiver, "orders")
	require.NoError(t, err)
	assert.Equal(t, OpEdit, edited.Op)
	assert.Equal(t, "orders", edited.View.(*model.PipelineView).Name)

	_, err = m.Open(ctx, DataRiver, "")
	assert.ErrorIs(t, err, ErrTabOpen)
	_, err = m.Open(ctx, DataRiver, "stock")
	assert.ErrorIs(t, err, ErrTabOpen)

	// other families are independent
	_, err = m.Open(ctx, EsTmpl, "")
	require.NoError(t, err)

	alerts := board.List()
	require.Len(t, alerts, 2)
	assert.Equal(t, alert.Danger, alerts[0].Kind)
	assert.Equal(t, "a datariver create tab is already open", alerts[0].Message)
	assert.Equal(t, "a datariver edit tab is already open", alerts[1].Message)

	assert.Len(t, m.List(), 3)
	assert.Equal(t, created.ID, m.List()[0].ID)
}

func TestOpen_Errors(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.Open(context.Background(), Family("synonyms"), "")
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = m.Open(context.Background(), QueryChain, "missing")
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Empty(t, m.List())
}

func TestCloseFreesTheTab(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newTestManager(t)

	s, err := m.Open(ctx, QueryChain, "")
	require.NoError(t, err)
	require.NoError(t, m.Close(s.ID))
	assert.ErrorIs(t, m.Close(s.ID), ErrNoSession)

	_, err = m.Open(ctx, QueryChain, "")
	assert.NoError(t, err)
}

func TestAddAndDeleteRow(t *testing.T) {
	ctx := context.Background()
	m, _, board := newTestManager(t)
	s, err := m.Open(ctx, DataRiver, "")
	require.NoError(t, err)

	row, err := m.AddRow(s.ID, model.GridFilterDataParserFields)
	require.NoError(t, err)
	assert.Equal(t, model.Row{"field_name": "", "type": "", "expression": ""}, row)

	_, err = m.AddRow(s.ID, model.GridDestinationList)
	require.NoError(t, err)

	view := s.View.(*model.PipelineView)
	assert.Len(t, view.FilterDataParserFields.Data, 1)
	assert.Len(t, view.DestinationListGrid.Data, 1)

	_, err = m.AddRow(s.ID, model.GridDataParserList)
	assert.ErrorIs(t, err, ErrUnknownGrid)

	err = m.DeleteRow(s.ID, model.GridFilterOptions, 0)
	assert.ErrorIs(t, err, ErrNoRowSelected)
	require.Len(t, board.List(), 1)
	assert.Equal(t, "select a row first", board.List()[0].Message)
	assert.Equal(t, alert.Danger, board.List()[0].Kind)

	require.NoError(t, m.DeleteRow(s.ID, model.GridFilterDataParserFields, 0))
	assert.Empty(t, view.FilterDataParserFields.Data)
}

func TestAddRow_QueryDestinationIsFixed(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Open(context.Background(), QueryChain, "")
	require.NoError(t, err)

	_, err = m.AddRow(s.ID, model.GridQueryDestinationList)
	assert.ErrorIs(t, err, ErrUnknownGrid)
	assert.Len(t, s.View.(*model.QueryHandlerView).DestinationList, 1)
}

func TestDeleteRow_QueryDestinationIsFixed(t *testing.T) {
	m, _, _ := newTestManager(t)
	s, err := m.Open(context.Background(), QueryChain, "")
	require.NoError(t, err)

	err = m.DeleteRow(s.ID, model.GridQueryDestinationList, 0)
	assert.ErrorIs(t, err, ErrUnknownGrid)
	assert.Len(t, s.View.(*model.QueryHandlerView).DestinationList, 1)
}

// blockingHandlers holds Create until released
type blockingHandlers struct {
	resource.Collection[model.QueryHandler]
	entered chan struct{}
	release chan struct{}
}

func (b *blockingHandlers) Create(ctx context.Context, q model.QueryHandler) error {
	close(b.entered)
	<-b.release
	return b.Collection.Create(ctx, q)
}

func TestSave_ConvertsBeforeSending(t *testing.T) {
	ctx := context.Background()
	m, resources, _ := newTestManager(t)
	blocking := &blockingHandlers{
		Collection: resources.QueryHandlers,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	resources.QueryHandlers = blocking

	s, err := m.Open(ctx, QueryChain, "")
	require.NoError(t, err)
	s.View.(*model.QueryHandlerView).Name = "goods"

	saved := make(chan error, 1)
	go func() { saved <- m.Save(ctx, s.ID) }()

	<-blocking.entered
	// the row lands in the open session, not in the record being sent
	_, err = m.AddRow(s.ID, model.GridFilterOptions)
	require.NoError(t, err)
	close(blocking.release)
	require.NoError(t, <-saved)

	q, err := blocking.Collection.Get(ctx, "goods")
	require.NoError(t, err)
	assert.Empty(t, q.Filter["conditions"])
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	m, resources, _ := newTestManager(t)
	require.NoError(t, resources.Pipelines.Create(ctx, model.Pipeline{Name: "orders"}))
	s, err := m.Open(ctx, DataRiver, "orders")
	require.NoError(t, err)

	view := mapper.NewPipelineView(&model.Pipeline{Name: "renamed"})
	view.FilterDataParserFields.Data = []model.Row{{"field_name": "shop", "type": "regex", "expression": "s"}}
	raw, err := json.Marshal(view)
	require.NoError(t, err)

	s, err = m.Replace(s.ID, raw)
	require.NoError(t, err)

	got := s.View.(*model.PipelineView)
	assert.Equal(t, "orders", got.Name)
	assert.Equal(t, []model.Row{{"field_value": "{version}"}, {"field_value": "{shop}"}}, got.SourceVariables)

	_, err = m.Replace(s.ID, []byte(`{"name": `))
	assert.Error(t, err)
	_, err = m.Replace("missing", raw)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSave_CreatesAndCloses(t *testing.T) {
	ctx := context.Background()
	m, resources, board := newTestManager(t)
	s, err := m.Open(ctx, EsTmpl, "")
	require.NoError(t, err)

	raw := []byte(`{"name": "goods", "index": "goods_v1", "mapping_jsonstr": "{\"properties\": {}}"}`)
	_, err = m.Replace(s.ID, raw)
	require.NoError(t, err)

	require.NoError(t, m.Save(ctx, s.ID))

	tmpl, err := resources.IndexTemplates.Get(ctx, "goods")
	require.NoError(t, err)
	assert.Equal(t, "goods_v1", tmpl.Index)
	assert.Equal(t, map[string]interface{}{"properties": map[string]interface{}{}}, tmpl.Mapping)

	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNoSession)
	alerts := board.List()
	require.Len(t, alerts, 1)
	assert.Equal(t, alert.Success, alerts[0].Kind)
}

func TestSave_UpdatesEditedRecord(t *testing.T) {
	ctx := context.Background()
	m, resources, _ := newTestManager(t)
	require.NoError(t, resources.QueryHandlers.Create(ctx, model.QueryHandler{Name: "goods", HTTPMethod: "GET"}))
	s, err := m.Open(ctx, QueryChain, "goods")
	require.NoError(t, err)

	s.View.(*model.QueryHandlerView).HTTPMethodViewModel.POST = true
	require.NoError(t, m.Save(ctx, s.ID))

	q, err := resources.QueryHandlers.Get(ctx, "goods")
	require.NoError(t, err)
	assert.Equal(t, "GET,POST", q.HTTPMethod)
	assert.Equal(t, model.Row{"destination_type": "elasticsearch"}, q.Destination)
}

func TestSave_InvalidJSONSendsNothing(t *testing.T) {
	ctx := context.Background()
	m, resources, board := newTestManager(t)
	counting := &countingHandlers{Collection: resources.QueryHandlers}
	resources.QueryHandlers = counting

	s, err := m.Open(ctx, QueryChain, "")
	require.NoError(t, err)
	view := s.View.(*model.QueryHandlerView)
	view.Name = "goods"
	view.ResponseJSONStr = `{"root": `

	err = m.Save(ctx, s.ID)

	var fe *mapper.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "response", fe.Field)
	assert.Equal(t, 0, counting.writes)
	_, err = m.Get(s.ID)
	assert.NoError(t, err, "session stays open")
	require.Len(t, board.List(), 1)
	assert.Equal(t, "response is not valid JSON", board.List()[0].Message)
}

func TestSave_BackendFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	m, resources, board := newTestManager(t)
	require.NoError(t, resources.Pipelines.Create(ctx, model.Pipeline{Name: "orders"}))

	s, err := m.Open(ctx, DataRiver, "")
	require.NoError(t, err)
	s.View.(*model.PipelineView).Name = "orders"

	err = m.Save(ctx, s.ID)
	assert.ErrorIs(t, err, resource.ErrAlreadyExists)
	_, err = m.Get(s.ID)
	assert.NoError(t, err)
	assert.Equal(t, alert.Danger, board.List()[0].Kind)
}
