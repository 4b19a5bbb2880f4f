package mapper

import (
	"net/http"
	"strings"

	"github.com/RitterHou/search-platform/internal/model"
)

// MethodsToViewModel splits a comma joined verb list into one toggle per verb.
// Unknown verbs are ignored.
func MethodsToViewModel(methods string) model.HTTPMethods {
	var vm model.HTTPMethods
	if methods == "" {
		return vm
	}
	for _, token := range strings.Split(methods, ",") {
		switch strings.TrimSpace(token) {
		case http.MethodGet:
			vm.GET = true
		case http.MethodPost:
			vm.POST = true
		case http.MethodPut:
			vm.PUT = true
		case http.MethodDelete:
			vm.DELETE = true
		}
	}
	return vm
}

// MethodsToWire joins the selected verbs in the persisted order GET, POST, DELETE, PUT
func MethodsToWire(vm model.HTTPMethods) string {
	methods := make([]string, 0, 4)
	if vm.GET {
		methods = append(methods, http.MethodGet)
	}
	if vm.POST {
		methods = append(methods, http.MethodPost)
	}
	if vm.DELETE {
		methods = append(methods, http.MethodDelete)
	}
	if vm.PUT {
		methods = append(methods, http.MethodPut)
	}
	return strings.Join(methods, ",")
}
