// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachergo/internal/config"
	"github.com/staranto/cachergo/internal/scan"
)

// purgeCommandAction removes entries whose embedded timestamp is older
// than --older-than, optionally restricted to one namespace. Age comes
// from the entry name, not file mtime, so a purge agrees with what
// lookups would have expired.
func purgeCommandAction(_ context.Context, cmd *cli.Command) error {
	dir, err := resolveDir(cmd)
	if err != nil {
		return err
	}
	name := cmd.String("name")
	olderThan := cmd.Duration("older-than")
	now := time.Now()

	des, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Println("nothing to purge")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to list cache directory: %w", err)
	}

	var removed int
	var freed uint64
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		if name != "" && !strings.HasPrefix(de.Name(), name+"_") {
			continue
		}
		detail, err := scan.ParseName(de.Name())
		if err != nil {
			// Not ours to judge. Corrupt pruning is the scanner's job.
			log.Debugf("skipping %s: %v", de.Name(), err)
			continue
		}
		if now.Sub(detail.CreatedAt) <= olderThan {
			continue
		}

		path := filepath.Join(dir, de.Name())
		info, _ := de.Info()
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warnf("failed to remove cache file %s", path)
			continue
		}
		log.Debugf("removed cache file %s", path)
		removed++
		if info != nil {
			freed += uint64(info.Size()) //nolint:gosec
		}
	}

	fmt.Printf("removed %d entries, %s freed\n", removed, humanize.Bytes(freed))
	return nil
}

// PurgeCommandBuilder constructs the cli.Command for "purge".
func PurgeCommandBuilder(cfg config.Type) *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "remove cache entries past their time limit",
		Flags: []cli.Flag{
			NewDirFlag(cfg),
			NewNameFlag(),
			&cli.DurationFlag{
				Name:    "older-than",
				Aliases: []string{"o"},
				Usage:   "remove entries older than this",
				Value:   14 * 24 * time.Hour,
			},
		},
		Action: purgeCommandAction,
	}
}
