// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachergo/internal/config"
	"github.com/staranto/cachergo/internal/scan"
)

// lsRow pairs a parsed entry with its on-disk size for display.
type lsRow struct {
	detail scan.Detail
	name   string
	size   int64
}

// lsCommandAction lists cache entries, newest first, with humanized age
// and size columns. Names that do not parse as entries are skipped (they
// belong to whoever else shares the directory).
func lsCommandAction(_ context.Context, cmd *cli.Command) error {
	dir, err := resolveDir(cmd)
	if err != nil {
		return err
	}
	name := cmd.String("name")

	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		// Nothing cached yet. An empty listing, not a failure.
		des = nil
	} else if err != nil {
		return fmt.Errorf("failed to list cache directory: %w", err)
	}

	rows := make([]lsRow, 0, len(des))
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		if name != "" && !strings.HasPrefix(de.Name(), name+"_") {
			continue
		}
		detail, err := scan.ParseName(de.Name())
		if err != nil {
			log.Debugf("skipping %s: %v", de.Name(), err)
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		rows = append(rows, lsRow{detail: detail, name: de.Name(), size: info.Size()})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].detail.CreatedAt.After(rows[j].detail.CreatedAt)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFINGERPRINT\tAGE\tSIZE\tFILE")
	for _, r := range rows {
		ns := r.detail.Namespace
		if ns == "" {
			ns = "-"
		}
		fmt.Fprintf(w, "%s\t%.12s\t%s\t%s\t%s\n",
			ns,
			r.detail.Fingerprint,
			humanize.Time(r.detail.CreatedAt),
			humanize.Bytes(uint64(r.size)), //nolint:gosec
			r.name,
		)
	}
	return w.Flush()
}

// LsCommandBuilder constructs the cli.Command for "ls".
func LsCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:   "ls",
		Usage:  "list cache entries",
		Flags:  []cli.Flag{NewDirFlag(cfg), NewNameFlag()},
		Action: lsCommandAction,
	}
}
