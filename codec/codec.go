// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package codec holds the pluggable serializers that turn call
// arguments into hashable bytes and result values into payload files.
package codec

import "fmt"

// Codec serializes values on their way into and out of the cache
// directory. The same codec is used both to fingerprint call arguments
// and to persist results, so Marshal must be stable for equal logical
// inputs within a process (map keys in particular).
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Ext is the filename suffix for payload files, without the dot.
	Ext() string
}

// EncodeError reports a value the codec could not serialize.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("codec: encode failed: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a payload the codec could not deserialize.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: decode failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
