// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachergo/internal/config"
)

// NewDirFlag constructs the --dir flag, sourced from the environment and
// the config file when not given explicitly.
func NewDirFlag(cfg config.Type) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "cache directory to operate on",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CACHERGO_CACHE_DIR"),
		),
	}

	if cfg.Source != "" {
		flag.Sources = cli.NewValueSourceChain(
			cli.EnvVar("CACHERGO_CACHE_DIR"),
			yaml.YAML("cache.dir", altsrc.StringSourcer(cfg.Source)),
		)
	}

	return flag
}

// NewNameFlag constructs the --name flag restricting a command to one
// namespace. Entries stored under other names are never touched.
func NewNameFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "only operate on entries in this namespace",
	}
}
