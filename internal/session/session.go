package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RitterHou/search-platform/internal/alert"
	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
)

// Family groups the records edited by one kind of tab
type Family string

const (
	DataRiver  Family = "datariver"
	QueryChain Family = "querychain"
	EsTmpl     Family = "estmpl"
)

// Op tells whether a session creates a new record or edits an existing one
type Op string

const (
	OpCreate Op = "create"
	OpEdit   Op = "edit"
)

var (
	ErrTabOpen       = errors.New("tab already open")
	ErrNoRowSelected = errors.New("no row selected")
	ErrNoSession     = errors.New("session not found")
	ErrUnknownFamily = errors.New("unknown record family")
	ErrUnknownGrid   = errors.New("unknown grid")
	ErrInvalidView   = errors.New("invalid view record")
)

// View is the editable form held by a session
type View interface {
	Rows(grid string) *[]model.Row
}

// Session is one open editor tab
type Session struct {
	ID       string    `json:"id"`
	Family   Family    `json:"family"`
	Op       Op        `json:"op"`
	Title    string    `json:"title"`
	Record   string    `json:"record,omitempty"` // name of the edited record
	View     View      `json:"view"`
	OpenedAt time.Time `json:"opened_at"`
}

// Manager tracks the open editor sessions
type Manager struct {
	mu        sync.Mutex
	resources *resource.Resources
	alerts    alert.Notifier
	sessions  map[string]*Session
	order     []string
}

func NewManager(resources *resource.Resources, alerts alert.Notifier) *Manager {
	return &Manager{
		resources: resources,
		alerts:    alerts,
		sessions:  make(map[string]*Session),
	}
}

func (f Family) valid() bool {
	switch f {
	case DataRiver, QueryChain, EsTmpl:
		return true
	}
	return false
}

// Open starts a session. An empty name opens a create session over an empty
// record; otherwise the named record is fetched for editing. Only one create
// and one edit session may be open per family.
func (m *Manager) Open(ctx context.Context, family Family, name string) (*Session, error) {
	if !family.valid() {
		return nil, fmt.Errorf("%q: %w", family, ErrUnknownFamily)
	}
	op := OpEdit
	if name == "" {
		op = OpCreate
	}

	m.mu.Lock()
	open := m.find(family, op) != nil
	m.mu.Unlock()
	if open {
		m.alerts.Add(alert.Danger, fmt.Sprintf("a %s %s tab is already open", family, op))
		return nil, fmt.Errorf("%s %s: %w", family, op, ErrTabOpen)
	}

	view, err := m.load(ctx, family, name)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.New().String(),
		Family:   family,
		Op:       op,
		Title:    title(family, op, name),
		Record:   name,
		View:     view,
		OpenedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// another caller may have opened the same tab while the record loaded
	if m.find(family, op) != nil {
		m.alerts.Add(alert.Danger, fmt.Sprintf("a %s %s tab is already open", family, op))
		return nil, fmt.Errorf("%s %s: %w", family, op, ErrTabOpen)
	}
	m.sessions[s.ID] = s
	m.order = append(m.order, s.ID)
	log.Printf("📝 Opened %s session %s", s.Title, s.ID)
	return s, nil
}

func (m *Manager) load(ctx context.Context, family Family, name string) (View, error) {
	switch family {
	case DataRiver:
		if name == "" {
			return mapper.NewPipelineView(nil), nil
		}
		p, err := m.resources.Pipelines.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewPipelineView(&p), nil
	case QueryChain:
		if name == "" {
			return mapper.NewQueryHandlerView(nil), nil
		}
		q, err := m.resources.QueryHandlers.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewQueryHandlerView(&q), nil
	default:
		if name == "" {
			return mapper.NewIndexTemplateView(nil), nil
		}
		t, err := m.resources.IndexTemplates.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewIndexTemplateView(&t), nil
	}
}

func title(family Family, op Op, name string) string {
	if op == OpCreate {
		return "new " + string(family)
	}
	return string(family) + " " + name
}

// find returns the open session of the family and op. m.mu must be held.
func (m *Manager) find(family Family, op Op) *Session {
	for _, s := range m.sessions {
		if s.Family == family && s.Op == op {
			return s
		}
	}
	return nil
}

// Get returns the session with the given id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	return s, nil
}

// List returns the open sessions in the order they were opened
func (m *Manager) List() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sessions[id])
	}
	return out
}

// Replace swaps the session's view for the edited one decoded from raw. The
// record name of an edit session cannot change.
func (m *Manager) Replace(id string, raw []byte) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	view, err := decodeView(s.Family, raw)
	if err != nil {
		return nil, err
	}
	if s.Op == OpEdit {
		setName(view, s.Record)
	}
	refresh(view)
	s.View = view
	return s, nil
}

// refresh recomputes values derived from the grids
func refresh(view View) {
	if v, ok := view.(*model.PipelineView); ok {
		v.SourceVariables = mapper.SourceVariables(mapper.ParserFieldsFromRows(v.FilterDataParserFields.Data))
	}
}

func decodeView(family Family, raw []byte) (View, error) {
	var view View
	switch family {
	case DataRiver:
		view = &model.PipelineView{}
	case QueryChain:
		view = &model.QueryHandlerView{}
	default:
		view = &model.IndexTemplateView{}
	}
	if err := json.Unmarshal(raw, view); err != nil {
		return nil, fmt.Errorf("%w: decode %s view: %v", ErrInvalidView, family, err)
	}
	return view, nil
}

func setName(view View, name string) {
	switch v := view.(type) {
	case *model.PipelineView:
		v.Name = name
	case *model.QueryHandlerView:
		v.Name = name
	case *model.IndexTemplateView:
		v.Name = name
	}
}

// AddRow appends the grid's blank row and returns it
func (m *Manager) AddRow(id, grid string) (model.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	rows := s.View.Rows(grid)
	row, addable := mapper.NewRow(grid)
	if rows == nil || !addable {
		return nil, fmt.Errorf("%s grid %q: %w", s.Family, grid, ErrUnknownGrid)
	}
	*rows = append(*rows, row)
	return row, nil
}

// DeleteRow removes the row at index from the grid
func (m *Manager) DeleteRow(id, grid string, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	// grids without an add-row action have a fixed size
	rows := s.View.Rows(grid)
	if _, resizable := mapper.NewRow(grid); rows == nil || !resizable {
		return fmt.Errorf("%s grid %q: %w", s.Family, grid, ErrUnknownGrid)
	}
	if index < 0 || index >= len(*rows) {
		m.alerts.Add(alert.Danger, "select a row first")
		return ErrNoRowSelected
	}
	*rows = append((*rows)[:index], (*rows)[index+1:]...)
	refresh(s.View)
	return nil
}

// Save converts the session's view to its wire record and creates or updates
// it. A successful save closes the session. Nothing is sent when the view
// does not convert.
func (m *Manager) Save(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	// convert while row edits are locked out, send without the lock
	send, err := m.prepare(s.Op, s.View)
	title := s.Title
	m.mu.Unlock()

	if err == nil {
		err = send(ctx)
	}
	if err != nil {
		var fe *mapper.FieldError
		if errors.As(err, &fe) {
			m.alerts.Add(alert.Danger, fmt.Sprintf("%s is not valid JSON", fe.Field))
		} else {
			m.alerts.Add(alert.Danger, fmt.Sprintf("save %s failed: %v", title, err))
		}
		return err
	}

	m.remove(id)
	m.alerts.Add(alert.Success, fmt.Sprintf("%s saved", title))
	log.Printf("✅ Saved %s", title)
	return nil
}

// prepare converts a view to its wire record and returns the call that
// stores it
func (m *Manager) prepare(op Op, view View) (func(ctx context.Context) error, error) {
	switch v := view.(type) {
	case *model.PipelineView:
		return write(m.resources.Pipelines, op, *mapper.PipelineFromView(v)), nil
	case *model.QueryHandlerView:
		q, err := mapper.QueryHandlerFromView(v)
		if err != nil {
			return nil, err
		}
		return write(m.resources.QueryHandlers, op, *q), nil
	case *model.IndexTemplateView:
		t, err := mapper.IndexTemplateFromView(v)
		if err != nil {
			return nil, err
		}
		return write(m.resources.IndexTemplates, op, *t), nil
	}
	return nil, fmt.Errorf("%T: %w", view, ErrUnknownFamily)
}

func write[T resource.Record](c resource.Collection[T], op Op, record T) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if op == OpCreate {
			return c.Create(ctx, record)
		}
		return c.Update(ctx, record)
	}
}

// Close discards the session without saving
func (m *Manager) Close(id string) error {
	if !m.remove(id) {
		return fmt.Errorf("%s: %w", id, ErrNoSession)
	}
	log.Printf("🚪 Closed session %s", id)
	return nil
}

func (m *Manager) remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}
