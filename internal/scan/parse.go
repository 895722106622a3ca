// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"regexp"
	"time"
)

// Detail is the fully decomposed form of an entry filename, used for
// display. The scanner itself only cares about the timestamp tail;
// fingerprints are recognized here by their fixed 64-hex shape.
type Detail struct {
	Namespace   string
	Fingerprint string
	CreatedAt   time.Time
	Ext         string
}

var nameRE = regexp.MustCompile(`^(?:(.+)_)?([0-9a-f]{64})_(\d{14})\.([A-Za-z0-9]+)$`)

// ParseName decomposes an entry filename into its identity parts.
func ParseName(name string) (Detail, error) {
	m := nameRE.FindStringSubmatch(name)
	if m == nil {
		return Detail{}, fmt.Errorf("not a cache entry name: %s", name)
	}
	ts, err := time.ParseInLocation(StampLayout, m[3], time.Local)
	if err != nil {
		return Detail{}, fmt.Errorf("bad timestamp in %s: %w", name, err)
	}
	return Detail{
		Namespace:   m[1],
		Fingerprint: m[2],
		CreatedAt:   ts,
		Ext:         m[4],
	}, nil
}
