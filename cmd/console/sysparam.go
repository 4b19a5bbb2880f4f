package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/RitterHou/search-platform/internal/model"
	"github.com/RitterHou/search-platform/pkg/utils"
)

type sysParamCommand struct{}

func (*sysParamCommand) Name() string     { return "sysparam" }
func (*sysParamCommand) Synopsis() string { return "read or change system parameters" }
func (*sysParamCommand) Usage() string {
	return `sysparam get [path] | sysparam set <path> <value>:
  Paths are dot separated keys such as manager.hosts. Values that look like
  numbers or booleans are stored as such, values starting with { or [ are
  decoded as JSON, anything else is stored as a string.
`
}
func (*sysParamCommand) SetFlags(*flag.FlagSet) {}

func (cmd *sysParamCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	argv := f.Args()
	valid := len(argv) > 0 &&
		((argv[0] == "get" && len(argv) <= 2) || (argv[0] == "set" && len(argv) == 3))
	if !valid {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	params, err := res.SysParams.Get(ctx)
	if err != nil {
		e.logger.Printf("failed to get system parameters: %s", err)
		return subcommands.ExitFailure
	}

	if argv[0] == "get" {
		var v interface{} = params
		if len(argv) == 2 {
			found, ok := lookup(params, argv[1])
			if !ok {
				e.logger.Printf("%s is not set", argv[1])
				return subcommands.ExitFailure
			}
			v = found
		}
		if err := e.printJSON(v); err != nil {
			e.logger.Print(err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	value, err := parseParam(argv[2])
	if err != nil {
		e.logger.Printf("failed to parse %q: %s", argv[2], err)
		return subcommands.ExitUsageError
	}
	if err := assign(params, argv[1], value); err != nil {
		e.logger.Print(err)
		return subcommands.ExitUsageError
	}
	if err := res.SysParams.Put(ctx, params); err != nil {
		e.logger.Printf("failed to save system parameters: %s", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(e.out, "%s saved\n", argv[1])
	return subcommands.ExitSuccess
}

func parseParam(s string) (interface{}, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v interface{}
		if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return utils.ParseValue(s), nil
}

func lookup(params model.Object, path string) (interface{}, bool) {
	keys := strings.Split(path, ".")
	cur := params
	for _, key := range keys[:len(keys)-1] {
		cur = cur.Object(key)
		if cur == nil {
			return nil, false
		}
	}
	v, ok := cur[keys[len(keys)-1]]
	return v, ok
}

func assign(params model.Object, path string, value interface{}) error {
	keys := strings.Split(path, ".")
	cur := params
	for _, key := range keys[:len(keys)-1] {
		if key == "" {
			return fmt.Errorf("invalid path %q", path)
		}
		if v, ok := cur[key]; ok {
			if _, isObject := model.AsObject(v); !isObject {
				return fmt.Errorf("%s is not an object", key)
			}
		}
		cur = cur.Ensure(key)
	}
	last := keys[len(keys)-1]
	if last == "" {
		return fmt.Errorf("invalid path %q", path)
	}
	cur[last] = value
	return nil
}
