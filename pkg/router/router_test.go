package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func serve(r *Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_ExactAndVars(t *testing.T) {
	r := New()
	r.GET("/api/v1/estmpls", text("list"))
	r.GET("/api/v1/estmpls/{name}", func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "get "+Vars(req)["name"])
	})

	assert.Equal(t, "list", serve(r, http.MethodGet, "/api/v1/estmpls").Body.String())
	assert.Equal(t, "get goods", serve(r, http.MethodGet, "/api/v1/estmpls/goods").Body.String())
	assert.Equal(t, "list", serve(r, http.MethodGet, "/api/v1/estmpls/").Body.String())
}

func TestRouter_RegistrationOrderWins(t *testing.T) {
	r := New()
	r.POST("/api/v1/sessions/{id}/save", text("save"))
	r.POST("/api/v1/sessions/{id}/*", text("fallback"))

	for i := 0; i < 10; i++ {
		assert.Equal(t, "save", serve(r, http.MethodPost, "/api/v1/sessions/abc/save").Body.String())
	}
	assert.Equal(t, "fallback", serve(r, http.MethodPost, "/api/v1/sessions/abc/rows/x").Body.String())
}

func TestRouter_TrailingWildcard(t *testing.T) {
	r := New()
	r.GET("/swagger/*", text("docs"))

	assert.Equal(t, "docs", serve(r, http.MethodGet, "/swagger/index.html").Body.String())
	assert.Equal(t, "docs", serve(r, http.MethodGet, "/swagger/").Body.String())
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/swaggerx").Code)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/alerts", text("alerts"))

	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, http.MethodPost, "/api/v1/alerts").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/api/v1/unknown").Code)
}

func TestRouter_Middleware(t *testing.T) {
	r := New()
	var order []string
	mark := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next(w, req)
			}
		}
	}
	r.Use(mark("first"), mark("second"))
	r.GET("/ping", text("pong"))

	rec := serve(r, http.MethodGet, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second"}, order)

	order = nil
	serve(r, http.MethodGet, "/missing")
	assert.Empty(t, order)
}

func TestRouter_Routes(t *testing.T) {
	r := New()
	r.GET("/a", text("a"))
	r.DELETE("/a/{name}", text("b"))

	assert.Equal(t, []string{"GET:/a", "DELETE:/a/{name}"}, r.Routes())
}

func TestVars_Empty(t *testing.T) {
	assert.Empty(t, Vars(httptest.NewRequest(http.MethodGet, "/", nil)))
}
