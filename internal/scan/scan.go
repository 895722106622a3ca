// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/apex/log"
)

// StampLayout is the timestamp token embedded in entry filenames. Second
// resolution, local time, always 14 digits.
const StampLayout = "20060102150405"

// stampRE matches the identifier tail: the 14-digit timestamp and the
// payload suffix. The suffix is compared against the scan's ext
// separately so one compiled pattern serves every codec.
var stampRE = regexp.MustCompile(`(\d{14})\.([A-Za-z0-9]+)$`)

// Entry is an on-disk cache entry discovered by a scan.
type Entry struct {
	Name      string
	Path      string
	CreatedAt time.Time
}

// Filename builds the identifier for an entry written at ts:
// [<namespace>_]<fingerprint>_<YYYYMMDDHHMMSS>.<ext>
func Filename(namespace, fingerprint string, ts time.Time, ext string) string {
	prefix := fingerprint
	if namespace != "" {
		prefix = namespace + "_" + fingerprint
	}
	return fmt.Sprintf("%s_%s.%s", prefix, ts.Format(StampLayout), ext)
}

// Newest scans dir for entries matching (namespace, fingerprint) and
// returns the one with the latest embedded timestamp that is still within
// limit of now. Every visited name that is corrupt (no parseable
// 14-digit timestamp before the suffix) or older than limit is removed on
// the spot. Entries belonging to other namespaces are never touched.
func Newest(dir, namespace, fingerprint, ext string, now time.Time, limit time.Duration) (Entry, bool, error) {
	names, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		// No directory yet means no entries, not a failure.
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to list cache directory: %w", err)
	}

	prefix := fingerprint + "_"
	if namespace != "" {
		prefix = namespace + "_" + prefix
	}

	var best Entry
	var found bool
	for _, de := range names {
		if de.IsDir() {
			continue
		}
		name := de.Name()

		// Names outside the namespace are invisible to this scan.
		if namespace != "" && !strings.HasPrefix(name, namespace+"_") {
			continue
		}
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		path := filepath.Join(dir, name)

		m := stampRE.FindStringSubmatch(name)
		if m == nil || m[2] != ext {
			log.Debugf("removing corrupt cache entry %s", name)
			if err := remove(path); err != nil {
				return Entry{}, false, err
			}
			continue
		}
		ts, err := time.ParseInLocation(StampLayout, m[1], time.Local)
		if err != nil {
			log.Debugf("removing corrupt cache entry %s", name)
			if err := remove(path); err != nil {
				return Entry{}, false, err
			}
			continue
		}

		if now.Sub(ts) > limit {
			log.Debugf("removing expired cache entry %s", name)
			if err := remove(path); err != nil {
				return Entry{}, false, err
			}
			continue
		}

		// Newest wins. Directory order is not chronological, so keep
		// scanning rather than returning the first hit.
		if !found || ts.After(best.CreatedAt) ||
			(ts.Equal(best.CreatedAt) && name > best.Name) {
			best = Entry{Name: name, Path: path, CreatedAt: ts}
			found = true
		}
	}

	return best, found, nil
}

// remove deletes an entry, treating "already gone" as success. A
// concurrent scan may have pruned the same file first.
func remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cache entry: %w", err)
	}
	return nil
}
