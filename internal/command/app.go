// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cachergo/internal/config"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Config is optional for cachectl. A missing cachergo.yaml just
	// means defaults everywhere.
	cfg, _ := config.Load()

	app := &cli.Command{
		Name:  "cachectl",
		Usage: "cachergo cache directory maintenance",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cachectl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		CatCommandBuilder(cfg),
		LsCommandBuilder(cfg),
		PurgeCommandBuilder(cfg),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// resolveDir picks the cache directory for a command invocation: the
// --dir flag when given, otherwise env/config/user-cache fallback.
func resolveDir(cmd *cli.Command) (string, error) {
	if d := cmd.String("dir"); d != "" {
		return d, nil
	}
	if d, ok := config.Dir(); ok {
		return d, nil
	}
	return "", fmt.Errorf("no cache directory; pass --dir or set CACHERGO_CACHE_DIR")
}
