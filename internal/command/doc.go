// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the cachectl subcommands. cachectl is a thin
// maintenance wrapper over a cache directory: it lists, prints, and
// purges entries but never bypasses the entry naming grammar.
package command
