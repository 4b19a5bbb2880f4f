package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/RitterHou/search-platform/internal/session"
	"github.com/RitterHou/search-platform/pkg/router"
)

// OpenSessionRequest opens a create tab (empty name) or an edit tab
type OpenSessionRequest struct {
	Family session.Family `json:"family"`
	Name   string         `json:"name"`
}

// ListSessions lists the open editor tabs
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} session.Session "Open sessions"
// @Router /sessions [get]
func (c *Console) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Sessions.List())
}

// OpenSession opens an editor tab
// @Summary Open session
// @Description Open a create tab (no name) or an edit tab. One of each per family.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body OpenSessionRequest true "Family and record name"
// @Success 201 {object} session.Session "Opened session"
// @Failure 400 {object} ErrorResponse "Unknown family"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "Tab already open"
// @Router /sessions [post]
func (c *Console) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s, err := c.Sessions.Open(r.Context(), req.Family, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// GetSession returns an editor tab
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Session "Session"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *Console) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := c.Sessions.Get(router.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ReplaceSessionView stores the edited view of a tab
// @Summary Replace session view
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param view body object true "Edited view record"
// @Success 200 {object} session.Session "Session"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{id} [put]
func (c *Console) ReplaceSessionView(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadPayload, err))
		return
	}
	s, err := c.Sessions.Replace(router.Vars(r)["id"], raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// AddSessionRow appends a blank row to a grid
// @Summary Add grid row
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param grid path string true "Grid name"
// @Success 201 {object} object "Added row"
// @Failure 400 {object} ErrorResponse "Unknown grid"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{id}/rows/{grid} [post]
func (c *Console) AddSessionRow(w http.ResponseWriter, r *http.Request) {
	vars := router.Vars(r)
	row, err := c.Sessions.AddRow(vars["id"], vars["grid"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, row)
}

// DeleteSessionRow removes the selected row of a grid
// @Summary Delete grid row
// @Tags sessions
// @Param id path string true "Session ID"
// @Param grid path string true "Grid name"
// @Param index path int true "Row index"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "No row selected"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{id}/rows/{grid}/{index} [delete]
func (c *Console) DeleteSessionRow(w http.ResponseWriter, r *http.Request) {
	vars := router.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		index = -1
	}
	if err := c.Sessions.DeleteRow(vars["id"], vars["grid"], index); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveSession converts the tab's view and stores the record
// @Summary Save session
// @Description Create or update the record. A saved session is closed.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Saved"
// @Failure 400 {object} ErrorResponse "Invalid JSON text field"
// @Failure 404 {object} ErrorResponse "Session or record not found"
// @Failure 409 {object} ErrorResponse "Record already exists"
// @Router /sessions/{id}/save [post]
func (c *Console) SaveSession(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Save(r.Context(), router.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloseSession discards a tab
// @Summary Close session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Closed"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *Console) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Close(router.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
