package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/RitterHou/search-platform/internal/model"
)

type processCommand struct{}

func (*processCommand) Name() string     { return "process" }
func (*processCommand) Synopsis() string { return "inspect or control cluster processes" }
func (*processCommand) Usage() string {
	return `process list [host] | process log <host> <name> | process <action> <host> [name]:
  Actions are start, stop, restart and clear_log. Without a process name the
  action applies to every process on the host. Requires a backend.
`
}
func (*processCommand) SetFlags(*flag.FlagSet) {}

func (cmd *processCommand) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	e := envOf(args)
	argv := f.Args()
	if len(argv) == 0 {
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	verb := argv[0]
	switch {
	case verb == "list" && len(argv) <= 2:
	case verb == "log" && len(argv) == 3:
	case model.ProcessAction(verb).Valid() && (len(argv) == 2 || len(argv) == 3):
	default:
		e.logger.Print(cmd.Usage())
		return subcommands.ExitUsageError
	}
	res, status := e.resources(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}

	switch verb {
	case "list":
		host := ""
		if len(argv) == 2 {
			host = argv[1]
		}
		hosts, err := res.Processes.List(ctx, host)
		if err != nil {
			e.logger.Printf("failed to list processes: %s", err)
			return subcommands.ExitFailure
		}
		for _, h := range hosts {
			fmt.Fprintf(e.out, "%s\t%s\t%d\n", h.Host, h.State, h.PID)
			for _, p := range h.Processes {
				fmt.Fprintf(e.out, "  %v\t%v\n", p["name"], p["statename"])
			}
		}
	case "log":
		text, err := res.Processes.Log(ctx, argv[1], argv[2])
		if err != nil {
			e.logger.Printf("failed to get log of %s on %s: %s", argv[2], argv[1], err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(e.out, text)
	default:
		name := ""
		if len(argv) == 3 {
			name = argv[2]
		}
		result, err := res.Processes.Do(ctx, model.ProcessAction(verb), argv[1], name)
		if err != nil {
			e.logger.Printf("failed to %s on %s: %s", verb, argv[1], err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(e.out, result)
	}
	return subcommands.ExitSuccess
}
