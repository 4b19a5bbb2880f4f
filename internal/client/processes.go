package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

type processes struct {
	c *Client
}

// List returns the supervisor state of one host, or of every host when host is empty
func (p *processes) List(ctx context.Context, host string) ([]model.ProcessHost, error) {
	path := resource.KindProcesses
	if host != "" {
		path += "/" + url.PathEscape(host)
	}
	hosts := []model.ProcessHost{}
	if err := p.c.do(ctx, http.MethodGet, path, nil, &hosts); err != nil {
		return nil, err
	}
	return hosts, nil
}

// Do runs action on the named process of host, or on all of its processes
// when name is empty. It returns the backend's result message.
func (p *processes) Do(ctx context.Context, action model.ProcessAction, host, name string) (string, error) {
	if !action.Valid() {
		return "", fmt.Errorf("%q: %w", action, resource.ErrInvalidAction)
	}
	if host == "" {
		return "", fmt.Errorf("%s: host is required: %w", action, resource.ErrInvalidAction)
	}
	var out struct {
		Result string `json:"result"`
	}
	if err := p.c.do(ctx, http.MethodPost, operationPath(action, host, name), nil, &out); err != nil {
		return "", err
	}
	if out.Result == "" {
		out.Result = "success"
	}
	return out.Result, nil
}

// Log fetches the log text of a process
func (p *processes) Log(ctx context.Context, host, name string) (string, error) {
	if host == "" || name == "" {
		return "", fmt.Errorf("%s: host and name are required: %w", model.ProcessGetLog, resource.ErrInvalidAction)
	}
	var text string
	if err := p.c.do(ctx, http.MethodGet, operationPath(model.ProcessGetLog, host, name), nil, &text); err != nil {
		return "", err
	}
	return text, nil
}

func operationPath(action model.ProcessAction, host, name string) string {
	path := fmt.Sprintf("%s/operations/%s/host/%s",
		resource.KindProcesses, url.PathEscape(string(action)), url.PathEscape(host))
	if name != "" {
		path += "/name/" + url.PathEscape(name)
	}
	return path
}
