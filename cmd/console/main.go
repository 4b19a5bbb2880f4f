package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/RitterHou/search-platform/internal/app"
	"github.com/RitterHou/search-platform/internal/config"
	"github.com/RitterHou/search-platform/internal/resource"
)

func main() {
	configPath := flag.String("config", "", "path to the console YAML config")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&listCommand{}, "records")
	subcommands.Register(&viewCommand{}, "records")
	subcommands.Register(&applyCommand{}, "records")
	subcommands.Register(&exportCommand{}, "records")
	subcommands.Register(&sysParamCommand{}, "system")
	subcommands.Register(&processCommand{}, "system")

	flag.Parse()
	ctx := context.Background()

	var release func() error
	e := &env{
		out:    os.Stdout,
		logger: log.New(os.Stderr, "", log.LstdFlags),
		open: func(ctx context.Context) (*resource.Resources, error) {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return nil, err
			}
			res, closeFn, err := app.OpenResources(ctx, cfg)
			if err != nil {
				return nil, err
			}
			release = closeFn
			return res, nil
		},
	}

	status := subcommands.Execute(ctx, e)
	if release != nil {
		if err := release(); err != nil {
			e.logger.Printf("failed to close resources: %s", err)
		}
	}
	os.Exit(int(status))
}
