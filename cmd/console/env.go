package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/RitterHou/search-platform/internal/resource"
)

// env is handed to every command through subcommands.Execute
type env struct {
	out    io.Writer
	logger *log.Logger
	open   func(ctx context.Context) (*resource.Resources, error)
}

func envOf(args []interface{}) *env {
	for _, a := range args {
		if e, ok := a.(*env); ok {
			return e
		}
	}
	return &env{out: os.Stdout, logger: log.New(os.Stderr, "", log.LstdFlags)}
}

// resources opens the configured resources, logging on failure
func (e *env) resources(ctx context.Context) (*resource.Resources, subcommands.ExitStatus) {
	if e.open == nil {
		e.logger.Printf("no resources configured")
		return nil, subcommands.ExitFailure
	}
	res, err := e.open(ctx)
	if err != nil {
		e.logger.Printf("failed to open resources: %s", err)
		return nil, subcommands.ExitFailure
	}
	return res, subcommands.ExitSuccess
}

func (e *env) printJSON(v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, string(buf))
	return err
}

func checkKind(kind string) error {
	if !resource.IsKind(kind) {
		return fmt.Errorf("unknown kind %q (want %s, %s or %s)", kind,
			resource.KindPipelines, resource.KindQueryHandlers, resource.KindIndexTemplates)
	}
	return nil
}
