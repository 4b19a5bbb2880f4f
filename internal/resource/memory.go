package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RitterHou/search-platform/internal/model"
)

// Memory is a Collection kept in process memory. Records are copied through
// JSON on the way in and out so callers never share state with it.
type Memory[T Record] struct {
	mu      sync.RWMutex
	names   []string
	records map[string][]byte
}

func NewMemory[T Record]() *Memory[T] {
	return &Memory[T]{records: make(map[string][]byte)}
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.names))
	for _, name := range m.names {
		var record T
		if err := json.Unmarshal(m.records[name], &record); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		out = append(out, record)
	}
	return out, nil
}

func (m *Memory[T]) Get(ctx context.Context, name string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var record T
	body, ok := m.records[name]
	if !ok {
		return record, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return record, fmt.Errorf("decode %s: %w", name, err)
	}
	return record, nil
}

func (m *Memory[T]) Create(ctx context.Context, record T) error {
	name := record.RecordName()
	if name == "" {
		return ErrNameRequired
	}
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrAlreadyExists)
	}
	m.names = append(m.names, name)
	m.records[name] = body
	return nil
}

func (m *Memory[T]) Update(ctx context.Context, record T) error {
	name := record.RecordName()
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[name]; !ok {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	m.records[name] = body
	return nil
}

func (m *Memory[T]) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[name]; !ok {
		return nil
	}
	delete(m.records, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
	return nil
}

// MemorySysParams keeps the system parameter document in memory
type MemorySysParams struct {
	mu   sync.Mutex
	body []byte
}

func (s *MemorySysParams) Get(ctx context.Context) (model.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	params := model.Object{}
	if s.body == nil {
		return params, nil
	}
	if err := json.Unmarshal(s.body, &params); err != nil {
		return nil, err
	}
	return params, nil
}

func (s *MemorySysParams) Put(ctx context.Context, params model.Object) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.body = body
	s.mu.Unlock()
	return nil
}

// MemoryMessages keeps sent messages in memory
type MemoryMessages struct {
	mu       sync.Mutex
	messages []model.Message
}

func (s *MemoryMessages) List(ctx context.Context) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *MemoryMessages) Send(ctx context.Context, payload model.Object) (model.Message, error) {
	msg := model.Message{
		ID:        uuid.New().String(),
		Payload:   payload.Clone(),
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg, nil
}

// NewMemoryResources returns a Resources bundle held entirely in memory
func NewMemoryResources() *Resources {
	return &Resources{
		Pipelines:      NewMemory[model.Pipeline](),
		QueryHandlers:  NewMemory[model.QueryHandler](),
		IndexTemplates: NewMemory[model.IndexTemplate](),
		SysParams:      &MemorySysParams{},
		Messages:       &MemoryMessages{},
		Processes:      NoProcesses{},
	}
}

// NoProcesses stands in for process control when records are kept locally
type NoProcesses struct{}

func (NoProcesses) List(ctx context.Context, host string) ([]model.ProcessHost, error) {
	return nil, fmt.Errorf("process control: %w", ErrBackendRequired)
}

func (NoProcesses) Do(ctx context.Context, action model.ProcessAction, host, name string) (string, error) {
	return "", fmt.Errorf("process control: %w", ErrBackendRequired)
}

func (NoProcesses) Log(ctx context.Context, host, name string) (string, error) {
	return "", fmt.Errorf("process control: %w", ErrBackendRequired)
}
