package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	assert.Error(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "console.db")

	s, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, s.Resources().IndexTemplates.Create(ctx, model.IndexTemplate{Name: "goods"}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Resources().IndexTemplates.Get(ctx, "goods")
	require.NoError(t, err)
	assert.Equal(t, "goods", got.Name)
}

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	pipelines := openTestStore(t).Resources().Pipelines

	orders := model.Pipeline{
		Name:        "orders",
		Source:      model.Object{"url": "http://orders/api"},
		Destination: []model.Row{{"destination_type": "elasticsearch", "index": "orders"}},
	}
	require.NoError(t, pipelines.Create(ctx, orders))
	require.NoError(t, pipelines.Create(ctx, model.Pipeline{Name: "stock", Destination: []model.Row{}}))

	assert.ErrorIs(t, pipelines.Create(ctx, orders), resource.ErrAlreadyExists)
	assert.ErrorIs(t, pipelines.Create(ctx, model.Pipeline{}), resource.ErrNameRequired)

	got, err := pipelines.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, "http://orders/api", got.Source["url"])
	assert.Equal(t, "orders", got.Destination[0]["index"])

	orders.Source["url"] = "http://orders/v2"
	require.NoError(t, pipelines.Update(ctx, orders))
	got, err = pipelines.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, "http://orders/v2", got.Source["url"])

	list, err := pipelines.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "orders", list[0].Name)
	assert.Equal(t, "stock", list[1].Name)

	require.NoError(t, pipelines.Delete(ctx, "orders"))
	_, err = pipelines.Get(ctx, "orders")
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestCollection_UpdateMissing(t *testing.T) {
	err := openTestStore(t).Resources().QueryHandlers.Update(context.Background(), model.QueryHandler{Name: "missing"})

	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestCollection_DeleteMissingIsNoop(t *testing.T) {
	err := openTestStore(t).Resources().QueryHandlers.Delete(context.Background(), "missing")

	assert.NoError(t, err)
}

func TestCollection_KindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	r := openTestStore(t).Resources()

	require.NoError(t, r.Pipelines.Create(ctx, model.Pipeline{Name: "goods"}))
	require.NoError(t, r.IndexTemplates.Create(ctx, model.IndexTemplate{Name: "goods"}))

	handlers, err := r.QueryHandlers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, handlers)
	assert.NotNil(t, handlers)
}

func TestSysParams(t *testing.T) {
	ctx := context.Background()
	params := openTestStore(t).Resources().SysParams

	got, err := params.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Object{}, got)

	require.NoError(t, params.Put(ctx, model.Object{"version": "1"}))
	require.NoError(t, params.Put(ctx, model.Object{"version": "2", "manager": model.Object{"hosts": []model.Row{}}}))

	got, err = params.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", got["version"])
	assert.Equal(t, map[string]interface{}{"hosts": []interface{}{}}, got["manager"])
}

func TestMessages(t *testing.T) {
	ctx := context.Background()
	msgs := openTestStore(t).Resources().Messages

	first, err := msgs.Send(ctx, model.Object{"action": "reload", "target": "querychains"})
	require.NoError(t, err)
	second, err := msgs.Send(ctx, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := msgs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "reload", list[0].Payload["action"])
	assert.WithinDuration(t, first.CreatedAt, list[0].CreatedAt, time.Second)
	assert.Equal(t, model.Object{}, list[1].Payload)
}

func TestRebind(t *testing.T) {
	s := &Store{driver: DriverPostgres}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", s.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	s.driver = DriverSQLite
	assert.Equal(t, "x = ?", s.rebind("x = ?"))
}
