package handler

import (
	"net/http"

	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/model"
)

// GetSysParams returns the system parameters
// @Summary Get system parameters
// @Description Get the system parameter document. manager.hosts is always present.
// @Tags sysparams
// @Produce json
// @Success 200 {object} object "System parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sysparams [get]
func (c *Console) GetSysParams(w http.ResponseWriter, r *http.Request) {
	params, err := c.Resources.SysParams.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	mapper.EnsureHosts(params)
	writeJSON(w, http.StatusOK, params)
}

// SaveSysParams replaces the system parameters
// @Summary Save system parameters
// @Description Replace the system parameter document
// @Tags sysparams
// @Accept json
// @Produce json
// @Param params body object true "System parameters"
// @Success 200 {object} object "Saved parameters"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Router /sysparams [post]
func (c *Console) SaveSysParams(w http.ResponseWriter, r *http.Request) {
	params := model.Object{}
	if err := decode(r, &params); err != nil {
		writeError(w, err)
		return
	}
	if params == nil {
		params = model.Object{}
	}
	mapper.SetHosts(params, mapper.EnsureHosts(params))
	if err := c.Resources.SysParams.Put(r.Context(), params); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, params)
}

// ListMessages lists sent system messages
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {array} model.Message "Messages"
// @Router /messages [get]
func (c *Console) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := c.Resources.Messages.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// SendMessage sends a system message
// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Param payload body object true "Message payload"
// @Success 201 {object} model.Message "Sent message"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Router /messages [post]
func (c *Console) SendMessage(w http.ResponseWriter, r *http.Request) {
	payload := model.Object{}
	if err := decode(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	msg, err := c.Resources.Messages.Send(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}
