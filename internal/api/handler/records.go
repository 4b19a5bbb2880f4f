package handler

import (
	"fmt"
	"net/http"

	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/pkg/router"
)

func unknownKind(kind string) error {
	return fmt.Errorf("kind %q: %w", kind, resource.ErrNotFound)
}

// ListRecords lists every record of a kind
// @Summary List records
// @Description List data rivers, query chains or index templates in their stored form
// @Tags records
// @Produce json
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Success 200 {array} object "Records"
// @Failure 404 {object} ErrorResponse "Unknown kind"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /{kind} [get]
func (c *Console) ListRecords(w http.ResponseWriter, r *http.Request) {
	kind := router.Vars(r)["kind"]
	switch kind {
	case resource.KindPipelines:
		list(w, r, c.Resources.Pipelines)
	case resource.KindQueryHandlers:
		list(w, r, c.Resources.QueryHandlers)
	case resource.KindIndexTemplates:
		list(w, r, c.Resources.IndexTemplates)
	default:
		writeError(w, unknownKind(kind))
	}
}

// GetRecord fetches one record
// @Summary Get record
// @Description Get one record in its stored form
// @Tags records
// @Produce json
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Param name path string true "Record name"
// @Success 200 {object} object "Record"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{kind}/{name} [get]
func (c *Console) GetRecord(w http.ResponseWriter, r *http.Request) {
	kind, name := router.Vars(r)["kind"], router.Vars(r)["name"]
	switch kind {
	case resource.KindPipelines:
		get(w, r, c.Resources.Pipelines, name)
	case resource.KindQueryHandlers:
		get(w, r, c.Resources.QueryHandlers, name)
	case resource.KindIndexTemplates:
		get(w, r, c.Resources.IndexTemplates, name)
	default:
		writeError(w, unknownKind(kind))
	}
}

// GetRecordView renders one record in its editable form
// @Summary Get record view
// @Description Get one record as the grids and text fields of its editor
// @Tags records
// @Produce json
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Param name path string true "Record name"
// @Success 200 {object} object "View record"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{kind}/{name}/view [get]
func (c *Console) GetRecordView(w http.ResponseWriter, r *http.Request) {
	kind, name := router.Vars(r)["kind"], router.Vars(r)["name"]
	ctx := r.Context()
	switch kind {
	case resource.KindPipelines:
		p, err := c.Resources.Pipelines.Get(ctx, name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.NewPipelineView(&p))
	case resource.KindQueryHandlers:
		q, err := c.Resources.QueryHandlers.Get(ctx, name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.NewQueryHandlerView(&q))
	case resource.KindIndexTemplates:
		t, err := c.Resources.IndexTemplates.Get(ctx, name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mapper.NewIndexTemplateView(&t))
	default:
		writeError(w, unknownKind(kind))
	}
}

// CreateRecord stores a new record
// @Summary Create record
// @Description Create a record from its stored form
// @Tags records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Param record body object true "Record"
// @Success 201 {object} object "Created record"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 409 {object} ErrorResponse "Record already exists"
// @Router /{kind} [post]
func (c *Console) CreateRecord(w http.ResponseWriter, r *http.Request) {
	kind := router.Vars(r)["kind"]
	switch kind {
	case resource.KindPipelines:
		create(w, r, c.Resources.Pipelines)
	case resource.KindQueryHandlers:
		create(w, r, c.Resources.QueryHandlers)
	case resource.KindIndexTemplates:
		create(w, r, c.Resources.IndexTemplates)
	default:
		writeError(w, unknownKind(kind))
	}
}

// UpdateRecord replaces a record
// @Summary Update record
// @Description Replace a record. The name in the path wins over the body.
// @Tags records
// @Accept json
// @Produce json
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Param name path string true "Record name"
// @Param record body object true "Record"
// @Success 200 {object} object "Updated record"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /{kind}/{name} [put]
func (c *Console) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	kind, name := router.Vars(r)["kind"], router.Vars(r)["name"]
	switch kind {
	case resource.KindPipelines:
		var p model.Pipeline
		update(w, r, c.Resources.Pipelines, &p, func() { p.Name = name })
	case resource.KindQueryHandlers:
		var q model.QueryHandler
		update(w, r, c.Resources.QueryHandlers, &q, func() { q.Name = name })
	case resource.KindIndexTemplates:
		var t model.IndexTemplate
		update(w, r, c.Resources.IndexTemplates, &t, func() { t.Name = name })
	default:
		writeError(w, unknownKind(kind))
	}
}

// DeleteRecord removes a record
// @Summary Delete record
// @Description Delete a record. Deleting a missing record succeeds.
// @Tags records
// @Param kind path string true "Record kind" Enums(datarivers, querychains, estmpls)
// @Param name path string true "Record name"
// @Success 204 "Deleted"
// @Router /{kind}/{name} [delete]
func (c *Console) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	kind, name := router.Vars(r)["kind"], router.Vars(r)["name"]
	var err error
	switch kind {
	case resource.KindPipelines:
		err = c.Resources.Pipelines.Delete(r.Context(), name)
	case resource.KindQueryHandlers:
		err = c.Resources.QueryHandlers.Delete(r.Context(), name)
	case resource.KindIndexTemplates:
		err = c.Resources.IndexTemplates.Delete(r.Context(), name)
	default:
		err = unknownKind(kind)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func list[T resource.Record](w http.ResponseWriter, r *http.Request, c resource.Collection[T]) {
	records, err := c.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func get[T resource.Record](w http.ResponseWriter, r *http.Request, c resource.Collection[T], name string) {
	record, err := c.Get(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func create[T resource.Record](w http.ResponseWriter, r *http.Request, c resource.Collection[T]) {
	var record T
	if err := decode(r, &record); err != nil {
		writeError(w, err)
		return
	}
	if err := c.Create(r.Context(), record); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// update decodes into record, lets rename pin the path name, then stores it
func update[T resource.Record](w http.ResponseWriter, r *http.Request, c resource.Collection[T], record *T, rename func()) {
	if err := decode(r, record); err != nil {
		writeError(w, err)
		return
	}
	rename()
	if err := c.Update(r.Context(), *record); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, *record)
}
