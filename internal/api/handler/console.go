package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/RitterHou/search-platform/internal/alert"
	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/internal/session"
)

// Console serves the admin console api
type Console struct {
	Resources *resource.Resources
	Sessions  *session.Manager
	Alerts    alert.Notifier
}

func NewConsole(resources *resource.Resources, alerts alert.Notifier) *Console {
	return &Console{
		Resources: resources,
		Sessions:  session.NewManager(resources, alerts),
		Alerts:    alerts,
	}
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

var errBadPayload = errors.New("invalid JSON payload")

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// writeError maps an error to its status code
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var fe *mapper.FieldError
	switch {
	case errors.As(err, &fe),
		errors.Is(err, errBadPayload),
		errors.Is(err, resource.ErrNameRequired),
		errors.Is(err, resource.ErrInvalidAction),
		errors.Is(err, session.ErrNoRowSelected),
		errors.Is(err, session.ErrUnknownGrid),
		errors.Is(err, session.ErrUnknownFamily),
		errors.Is(err, session.ErrInvalidView):
		status = http.StatusBadRequest
	case errors.Is(err, resource.ErrNotFound),
		errors.Is(err, session.ErrNoSession):
		status = http.StatusNotFound
	case errors.Is(err, resource.ErrAlreadyExists),
		errors.Is(err, session.ErrTabOpen):
		status = http.StatusConflict
	case errors.Is(err, resource.ErrBackendRequired):
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ %v", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errBadPayload, err)
	}
	return nil
}
