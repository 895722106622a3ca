// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cachergo is a disk-backed memoization cache. It stores the
// result of an expensive computation keyed by a fingerprint of the
// call's arguments, and returns the stored result on a later call with
// matching arguments until a time limit passes.
//
// Entries live as flat files named
// [<namespace>_]<fingerprint>_<YYYYMMDDHHMMSS>.<ext> in a single
// directory; the directory listing is the index. Expired and corrupt
// entries are pruned lazily, as a side effect of the lookups that
// encounter them. There is no locking: writes always create new,
// uniquely named files, and deletes tolerate files already removed by a
// concurrent caller.
package cachergo
