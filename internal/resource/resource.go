package resource

import (
	"context"
	"errors"

	"github.com/RitterHou/search-platform/internal/model"
)

// Kinds name the backend collections. They double as REST path segments.
const (
	KindPipelines      = "datarivers"
	KindQueryHandlers  = "querychains"
	KindIndexTemplates = "estmpls"
	KindSysParams      = "sysparams"
	KindMessages       = "messages"
	KindProcesses      = "processes"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrNameRequired  = errors.New("record name is required")
	ErrInvalidAction = errors.New("invalid process action")

	// ErrBackendRequired is returned by operations only a running backend can serve
	ErrBackendRequired = errors.New("requires a backend")
)

// Record is anything stored by name
type Record interface {
	RecordName() string
}

// Collection is the CRUD surface of one named-record kind
type Collection[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, name string) (T, error)
	Create(ctx context.Context, record T) error
	Update(ctx context.Context, record T) error
	Delete(ctx context.Context, name string) error
}

// SysParams is the single system parameter document
type SysParams interface {
	Get(ctx context.Context) (model.Object, error)
	Put(ctx context.Context, params model.Object) error
}

// Messages is the outbox of system messages
type Messages interface {
	List(ctx context.Context) ([]model.Message, error)
	Send(ctx context.Context, payload model.Object) (model.Message, error)
}

// Processes controls the supervisor managed processes of the cluster hosts.
// An empty host means every host; an empty name means every process.
type Processes interface {
	List(ctx context.Context, host string) ([]model.ProcessHost, error)
	Do(ctx context.Context, action model.ProcessAction, host, name string) (string, error)
	Log(ctx context.Context, host, name string) (string, error)
}

// Resources bundles every collection the console edits
type Resources struct {
	Pipelines      Collection[model.Pipeline]
	QueryHandlers  Collection[model.QueryHandler]
	IndexTemplates Collection[model.IndexTemplate]
	SysParams      SysParams
	Messages       Messages
	Processes      Processes
}

// IsKind reports whether kind names a record collection
func IsKind(kind string) bool {
	switch kind {
	case KindPipelines, KindQueryHandlers, KindIndexTemplates:
		return true
	}
	return false
}
