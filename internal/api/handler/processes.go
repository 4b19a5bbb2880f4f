package handler

import (
	"fmt"
	"net/http"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/pkg/router"
)

// ProcessResult is the outcome of a process action
type ProcessResult struct {
	Result string `json:"result"`
}

// ProcessLog is the log text of one process
type ProcessLog struct {
	Host string `json:"host"`
	Name string `json:"name"`
	Log  string `json:"log"`
}

// ListProcesses lists the supervisor state of every cluster host
// @Summary List processes
// @Description List the supervisor state and processes of every cluster host
// @Tags processes
// @Produce json
// @Success 200 {array} model.ProcessHost "Hosts"
// @Failure 501 {object} ErrorResponse "No backend configured"
// @Router /processes [get]
func (c *Console) ListProcesses(w http.ResponseWriter, r *http.Request) {
	c.listProcesses(w, r, "")
}

// ListHostProcesses lists the supervisor state of one host
// @Summary List host processes
// @Tags processes
// @Produce json
// @Param host path string true "Host address"
// @Success 200 {array} model.ProcessHost "Hosts"
// @Failure 501 {object} ErrorResponse "No backend configured"
// @Router /processes/{host} [get]
func (c *Console) ListHostProcesses(w http.ResponseWriter, r *http.Request) {
	c.listProcesses(w, r, router.Vars(r)["host"])
}

func (c *Console) listProcesses(w http.ResponseWriter, r *http.Request, host string) {
	hosts, err := c.Resources.Processes.List(r.Context(), host)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hosts)
}

// DoHostAction runs a supervisor action on every process of a host
// @Summary Run host action
// @Description Start, stop, restart or clear the logs of every process on the host
// @Tags processes
// @Produce json
// @Param action path string true "Action" Enums(start, stop, restart, clear_log)
// @Param host path string true "Host address"
// @Success 200 {object} ProcessResult "Result"
// @Failure 400 {object} ErrorResponse "Invalid action"
// @Failure 501 {object} ErrorResponse "No backend configured"
// @Router /processes/operations/{action}/host/{host} [post]
func (c *Console) DoHostAction(w http.ResponseWriter, r *http.Request) {
	c.doProcessAction(w, r, "")
}

// DoProcessAction runs a supervisor action on one process
// @Summary Run process action
// @Description Start, stop, restart or clear the log of one process
// @Tags processes
// @Produce json
// @Param action path string true "Action" Enums(start, stop, restart, clear_log)
// @Param host path string true "Host address"
// @Param name path string true "Process name"
// @Success 200 {object} ProcessResult "Result"
// @Failure 400 {object} ErrorResponse "Invalid action"
// @Failure 501 {object} ErrorResponse "No backend configured"
// @Router /processes/operations/{action}/host/{host}/name/{name} [post]
func (c *Console) DoProcessAction(w http.ResponseWriter, r *http.Request) {
	c.doProcessAction(w, r, router.Vars(r)["name"])
}

func (c *Console) doProcessAction(w http.ResponseWriter, r *http.Request, name string) {
	vars := router.Vars(r)
	action := model.ProcessAction(vars["action"])
	if !action.Valid() {
		writeError(w, fmt.Errorf("%q: %w", vars["action"], resource.ErrInvalidAction))
		return
	}
	result, err := c.Resources.Processes.Do(r.Context(), action, vars["host"], name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProcessResult{Result: result})
}

// GetProcessLog returns the log of one process
// @Summary Get process log
// @Tags processes
// @Produce json
// @Param host path string true "Host address"
// @Param name path string true "Process name"
// @Success 200 {object} ProcessLog "Log"
// @Failure 501 {object} ErrorResponse "No backend configured"
// @Router /processes/operations/get_log/host/{host}/name/{name} [get]
func (c *Console) GetProcessLog(w http.ResponseWriter, r *http.Request) {
	vars := router.Vars(r)
	text, err := c.Resources.Processes.Log(r.Context(), vars["host"], vars["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProcessLog{Host: vars["host"], Name: vars["name"], Log: text})
}
