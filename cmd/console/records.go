package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"

	"github.com/RitterHou/search-platform/internal/mapper"
	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/pkg/utils"
)

type listCommand struct{}

func (*listCommand) Name() string     { return "list" }
func (*listCommand) Synopsis() string { return "list record names of a kind" }
func (*listCommand) Usage() string {
	return `list <kind>:
  Print the name of every datarivers, querychains or estmpls record.
`
}
func (*listCommand) SetFlags(*flag.FlagSet) {}

func (cmd *listCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	if f.NArg() != 1 {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	kind := f.Arg(0)
	if err := checkKind(kind); err != nil {
		e.logger.Print(err)
		return subcommands.ExitUsageError
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	names, err := listNames(ctx, res, kind)
	if err != nil {
		e.logger.Printf("failed to list %s: %s", kind, err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		fmt.Fprintln(e.out, name)
	}
	return subcommands.ExitSuccess
}

type viewCommand struct {
	debug bool
}

func (*viewCommand) Name() string     { return "view" }
func (*viewCommand) Synopsis() string { return "print a record in its editable form" }
func (*viewCommand) Usage() string {
	return `view [-debug] <kind> <name>:
  Print the view record (grids and text fields) of one record as JSON.
`
}

func (cmd *viewCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.debug, "debug", false, "dump the view record with its Go types")
}

func (cmd *viewCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	if f.NArg() != 2 {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	kind, name := f.Arg(0), f.Arg(1)
	if err := checkKind(kind); err != nil {
		e.logger.Print(err)
		return subcommands.ExitUsageError
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	view, err := viewOf(ctx, res, kind, name)
	if err != nil {
		e.logger.Printf("failed to get %s %s: %s", kind, name, err)
		return subcommands.ExitFailure
	}
	if cmd.debug {
		spew.Fdump(e.out, view)
		return subcommands.ExitSuccess
	}
	if err := e.printJSON(view); err != nil {
		e.logger.Printf("failed to print %s: %s", name, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type applyCommand struct {
	create bool
}

func (*applyCommand) Name() string     { return "apply" }
func (*applyCommand) Synopsis() string { return "store a record from its editable form" }
func (*applyCommand) Usage() string {
	return `apply [-create] <kind> <file>:
  Read a view record from a JSON or YAML file, convert it back to the stored
  form and update the record of the same name. With -create the record is
  created instead.
`
}

func (cmd *applyCommand) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.create, "create", false, "create the record instead of updating it")
}

func (cmd *applyCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	if f.NArg() != 2 {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	kind, path := f.Arg(0), f.Arg(1)
	if err := checkKind(kind); err != nil {
		e.logger.Print(err)
		return subcommands.ExitUsageError
	}
	raw, err := readView(path)
	if err != nil {
		e.logger.Printf("failed to read %s: %s", path, err)
		return subcommands.ExitFailure
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	name, err := applyView(ctx, res, kind, raw, cmd.create)
	if err != nil {
		e.logger.Printf("failed to apply %s: %s", path, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(e.out, "%s/%s saved\n", kind, name)
	return subcommands.ExitSuccess
}

type exportCommand struct{}

func (*exportCommand) Name() string     { return "export" }
func (*exportCommand) Synopsis() string { return "write every record of a kind as view files" }
func (*exportCommand) Usage() string {
	return `export <kind> <dir>:
  Write the view record of every record of a kind to <dir>/<kind>/<name>.json.
`
}
func (*exportCommand) SetFlags(*flag.FlagSet) {}

func (cmd *exportCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	if f.NArg() != 2 {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	kind, dir := f.Arg(0), f.Arg(1)
	if err := checkKind(kind); err != nil {
		e.logger.Print(err)
		return subcommands.ExitUsageError
	}
	om := utils.NewOutputManager(dir)
	if err := om.EnsureOutputDirExists(); err != nil {
		e.logger.Printf("failed to create %s: %s", dir, err)
		return subcommands.ExitFailure
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	names, err := listNames(ctx, res, kind)
	if err != nil {
		e.logger.Printf("failed to list %s: %s", kind, err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		view, err := viewOf(ctx, res, kind, name)
		if err != nil {
			e.logger.Printf("failed to get %s %s: %s", kind, name, err)
			return subcommands.ExitFailure
		}
		path, err := om.WriteJSON(kind, name, view)
		if err != nil {
			e.logger.Print(err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(e.out, path)
	}
	return subcommands.ExitSuccess
}

func listNames(ctx context.Context, res *resource.Resources, kind string) ([]string, error) {
	switch kind {
	case resource.KindPipelines:
		return namesOf(ctx, res.Pipelines)
	case resource.KindQueryHandlers:
		return namesOf(ctx, res.QueryHandlers)
	case resource.KindIndexTemplates:
		return namesOf(ctx, res.IndexTemplates)
	}
	return nil, checkKind(kind)
}

func namesOf[T resource.Record](ctx context.Context, c resource.Collection[T]) ([]string, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.RecordName())
	}
	return names, nil
}

func viewOf(ctx context.Context, res *resource.Resources, kind, name string) (interface{}, error) {
	switch kind {
	case resource.KindPipelines:
		p, err := res.Pipelines.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewPipelineView(&p), nil
	case resource.KindQueryHandlers:
		q, err := res.QueryHandlers.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewQueryHandlerView(&q), nil
	case resource.KindIndexTemplates:
		t, err := res.IndexTemplates.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		return mapper.NewIndexTemplateView(&t), nil
	}
	return nil, checkKind(kind)
}

// applyView converts a view record back to its stored form and saves it.
// It returns the record name.
func applyView(ctx context.Context, res *resource.Resources, kind string, raw []byte, create bool) (string, error) {
	switch kind {
	case resource.KindPipelines:
		var v model.PipelineView
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", err
		}
		return save(ctx, res.Pipelines, *mapper.PipelineFromView(&v), create)
	case resource.KindQueryHandlers:
		var v model.QueryHandlerView
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", err
		}
		q, err := mapper.QueryHandlerFromView(&v)
		if err != nil {
			return "", err
		}
		return save(ctx, res.QueryHandlers, *q, create)
	case resource.KindIndexTemplates:
		var v model.IndexTemplateView
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", err
		}
		t, err := mapper.IndexTemplateFromView(&v)
		if err != nil {
			return "", err
		}
		return save(ctx, res.IndexTemplates, *t, create)
	}
	return "", checkKind(kind)
}

func save[T resource.Record](ctx context.Context, c resource.Collection[T], record T, create bool) (string, error) {
	if record.RecordName() == "" {
		return "", resource.ErrNameRequired
	}
	var err error
	if create {
		err = c.Create(ctx, record)
	} else {
		err = c.Update(ctx, record)
	}
	return record.RecordName(), err
}

// readView loads a view record file. YAML files are converted to JSON so both
// decode through the same json tags.
func readView(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch utils.NewOutputManager("").GetFileType(path) {
	case "yaml":
		var doc interface{}
		if err := yaml.Unmarshal(buf, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return json.Marshal(doc)
	default:
		return buf, nil
	}
}
