package mapper

import "github.com/RitterHou/search-platform/internal/model"

// EnsureHosts returns the supervisor host rows of the system parameters,
// creating manager.hosts when it is missing.
func EnsureHosts(params model.Object) []model.Row {
	if params == nil {
		return []model.Row{}
	}
	manager := params.Ensure("manager")
	hosts := model.AsRows(manager["hosts"])
	if hosts == nil {
		hosts = []model.Row{}
	}
	manager["hosts"] = hosts
	return hosts
}

// SetHosts stores edited host rows back into the system parameters
func SetHosts(params model.Object, rows []model.Row) {
	hosts := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		hosts = append(hosts, storageRow(row))
	}
	params.Ensure("manager")["hosts"] = hosts
}
