package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

// Resources returns the backend collections
func (c *Client) Resources() *resource.Resources {
	return &resource.Resources{
		Pipelines:      NewCollection[model.Pipeline](c, resource.KindPipelines),
		QueryHandlers:  NewCollection[model.QueryHandler](c, resource.KindQueryHandlers),
		IndexTemplates: NewCollection[model.IndexTemplate](c, resource.KindIndexTemplates),
		SysParams:      &sysParams{c: c},
		Messages:       &messages{c: c},
		Processes:      &processes{c: c},
	}
}

// Collection is one record kind served by the backend
type Collection[T resource.Record] struct {
	c    *Client
	kind string
}

func NewCollection[T resource.Record](c *Client, kind string) *Collection[T] {
	return &Collection[T]{c: c, kind: kind}
}

func (col *Collection[T]) path(name string) string {
	return col.kind + "/" + url.PathEscape(name)
}

func (col *Collection[T]) List(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := col.c.do(ctx, http.MethodGet, col.kind, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches one record. The backend answers with a filtered list.
func (col *Collection[T]) Get(ctx context.Context, name string) (T, error) {
	var record T
	var records []T
	if err := col.c.do(ctx, http.MethodGet, col.path(name), nil, &records); err != nil {
		return record, err
	}
	for _, r := range records {
		if r.RecordName() == name {
			return r, nil
		}
	}
	return record, fmt.Errorf("%s/%s: %w", col.kind, name, resource.ErrNotFound)
}

func (col *Collection[T]) Create(ctx context.Context, record T) error {
	if record.RecordName() == "" {
		return resource.ErrNameRequired
	}
	return col.c.do(ctx, http.MethodPost, col.kind, record, nil)
}

func (col *Collection[T]) Update(ctx context.Context, record T) error {
	return col.c.do(ctx, http.MethodPut, col.path(record.RecordName()), record, nil)
}

func (col *Collection[T]) Delete(ctx context.Context, name string) error {
	return col.c.do(ctx, http.MethodDelete, col.path(name), nil, nil)
}

type sysParams struct {
	c *Client
}

func (p *sysParams) Get(ctx context.Context) (model.Object, error) {
	params := model.Object{}
	if err := p.c.do(ctx, http.MethodGet, resource.KindSysParams, nil, &params); err != nil {
		return nil, err
	}
	if params == nil {
		params = model.Object{}
	}
	return params, nil
}

func (p *sysParams) Put(ctx context.Context, params model.Object) error {
	return p.c.replace(ctx, resource.KindSysParams, params)
}

type messages struct {
	c *Client
}

func (m *messages) List(ctx context.Context) ([]model.Message, error) {
	msgs := []model.Message{}
	if err := m.c.do(ctx, http.MethodGet, resource.KindMessages, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Send posts the payload. The backend echoes the stored message.
func (m *messages) Send(ctx context.Context, payload model.Object) (model.Message, error) {
	var msg model.Message
	if err := m.c.do(ctx, http.MethodPost, resource.KindMessages, payload, &msg); err != nil {
		return model.Message{}, err
	}
	return msg, nil
}
