// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/staranto/cachergo/codec"
)

// call is the canonical shape that gets hashed. Args and Kwargs are
// normalized to empty (never nil) so Call{} and Call{Args: []any{}}
// fingerprint identically.
type call struct {
	Args   []any          `json:"args"   yaml:"args"`
	Kwargs map[string]any `json:"kwargs" yaml:"kwargs"`
}

// Derive maps the positional and named arguments of a computation to a
// 64-char hex SHA-256 fingerprint. The codec provides the canonical byte
// encoding; anything it cannot serialize fails derivation.
func Derive(c codec.Codec, args []any, kwargs map[string]any) (string, error) {
	if args == nil {
		args = []any{}
	}
	if kwargs == nil {
		kwargs = map[string]any{}
	}

	data, err := c.Marshal(call{Args: args, Kwargs: kwargs})
	if err != nil {
		return "", fmt.Errorf("failed to serialize call arguments: %w", err)
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
