package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

func testConfig(url string) Config {
	return Config{
		BaseURL:   url + "/api",
		RateLimit: 1000,
		RateBurst: 100,
		Retry: RetryConfig{
			MaxRetries:        2,
			InitialDelay:      time.Millisecond,
			MaxDelay:          5 * time.Millisecond,
			BackoffMultiplier: 2,
		},
	}
}

func TestCollection_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/querychains", r.URL.Path)
		w.Write([]byte(`[{"name": "goods", "http_method": "GET"}, {"name": "stock", "http_method": "POST"}]`))
	}))
	defer srv.Close()

	handlers, err := New(testConfig(srv.URL)).Resources().QueryHandlers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, handlers, 2)
	assert.Equal(t, "stock", handlers[1].Name)
	assert.Equal(t, "POST", handlers[1].HTTPMethod)
}

func TestCollection_GetPicksNamedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/estmpls/goods", r.URL.Path)
		w.Write([]byte(`[{"name": "goods", "index": "goods_v1"}]`))
	}))
	defer srv.Close()

	tmpl, err := New(testConfig(srv.URL)).Resources().IndexTemplates.Get(context.Background(), "goods")
	require.NoError(t, err)
	assert.Equal(t, "goods_v1", tmpl.Index)
}

func TestCollection_GetEmptyListIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Resources().Pipelines.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestCollection_CreateAndUpdate(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var p model.Pipeline
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "orders", p.Name)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	config := testConfig(srv.URL)
	config.Token = "secret"
	pipelines := New(config).Resources().Pipelines
	ctx := context.Background()

	require.NoError(t, pipelines.Create(ctx, model.Pipeline{Name: "orders"}))
	require.NoError(t, pipelines.Update(ctx, model.Pipeline{Name: "orders"}))
	assert.Equal(t, []string{"POST /api/datarivers", "PUT /api/datarivers/orders"}, calls)
}

func TestCollection_StatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error": "orders already exists"}`))
		case http.MethodPut:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`update data not exist`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	pipelines := New(testConfig(srv.URL)).Resources().Pipelines
	ctx := context.Background()

	err := pipelines.Create(ctx, model.Pipeline{Name: "orders"})
	assert.ErrorIs(t, err, resource.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "orders already exists")

	err = pipelines.Update(ctx, model.Pipeline{Name: "orders"})
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Contains(t, err.Error(), "update data not exist")

	err = pipelines.Delete(ctx, "orders")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.NotErrorIs(t, err, resource.ErrNotFound)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"version": "3"}`, string(body))
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := New(testConfig(srv.URL)).Resources().SysParams.Put(context.Background(), model.Object{"version": "3"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Resources().SysParams.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(testConfig(srv.URL)).Resources().Messages.List(context.Background())
	assert.ErrorIs(t, err, resource.ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestMessages_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages", r.URL.Path)
		w.Write([]byte(`{"id": "m1", "payload": {"action": "reload"}, "created_at": "2024-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	msg, err := New(testConfig(srv.URL)).Resources().Messages.Send(context.Background(), model.Object{"action": "reload"})
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "reload", msg.Payload["action"])
}

func TestClient_DoesNotRepeatSlowPosts(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			// stored, but the reply arrives after the client gave up
			time.Sleep(200 * time.Millisecond)
		}
		w.Write([]byte(`{"id": "m1", "payload": {"action": "reload"}}`))
	}))
	defer srv.Close()

	config := testConfig(srv.URL)
	config.Timeout = 50 * time.Millisecond
	_, err := New(config).Resources().Messages.Send(context.Background(), model.Object{"action": "reload"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestClient_DoesNotRetryFailedCreate(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(testConfig(srv.URL)).Resources().Pipelines.Create(context.Background(), model.Pipeline{Name: "orders"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

// refuseFirst fails the first round trip as if the connection was refused
type refuseFirst struct {
	calls int32
}

func (rt *refuseFirst) RoundTrip(req *http.Request) (*http.Response, error) {
	if atomic.AddInt32(&rt.calls, 1) == 1 {
		return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	}
	return http.DefaultTransport.RoundTrip(req)
}

func TestClient_RetriesPostWhenConnectionRefused(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rt := &refuseFirst{}
	config := testConfig(srv.URL)
	config.Transport = rt
	err := New(config).Resources().Pipelines.Create(context.Background(), model.Pipeline{Name: "orders"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&rt.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestBackoff(t *testing.T) {
	c := New(Config{Retry: RetryConfig{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffMultiplier: 2}})

	assert.Equal(t, 100*time.Millisecond, c.backoff(1))
	assert.Equal(t, 400*time.Millisecond, c.backoff(3))
	assert.Equal(t, time.Second, c.backoff(6))
}
