// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachergo/internal/config"
)

// catCommandAction prints the payload of one entry file, as listed by
// ls. With --path, a dotted field is extracted from JSON payloads
// instead of dumping the whole document.
func catCommandAction(_ context.Context, cmd *cli.Command) error {
	dir, err := resolveDir(cmd)
	if err != nil {
		return err
	}

	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("usage: cachectl cat <entry-file>")
	}
	// Entry names never carry path separators; refuse anything that
	// would escape the cache directory.
	if name != filepath.Base(name) {
		return fmt.Errorf("not a cache entry name: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read cache entry: %w", err)
	}

	if path := cmd.String("path"); path != "" {
		if !strings.HasSuffix(name, ".json") {
			return fmt.Errorf("--path only works on .json payloads")
		}
		result := gjson.GetBytes(data, path)
		if !result.Exists() {
			return fmt.Errorf("no value at path %s", path)
		}
		fmt.Println(result.String())
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}

// CatCommandBuilder constructs the cli.Command for "cat".
func CatCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "print a cache entry payload",
		ArgsUsage: "<entry-file>",
		Flags: []cli.Flag{
			NewDirFlag(cfg),
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "extract a dotted field from a JSON payload",
			},
		},
		Action: catCommandAction,
	}
}
